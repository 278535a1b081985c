package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("", handler.List)
		wishlists.GET("/contains", handler.Contains)
		wishlists.POST("/toggle", handler.Toggle)
		wishlists.DELETE("", handler.Clear)
	}
}

package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
)

type fakeService struct {
	gotReq    checkout.CheckoutRequest
	placed    checkout.OrderResponse
	placeErr  error
	order     json.RawMessage
	statusErr error
}

func (f *fakeService) Checkout(_ context.Context, req checkout.CheckoutRequest) (checkout.OrderResponse, error) {
	f.gotReq = req
	if f.placeErr != nil {
		return checkout.OrderResponse{}, f.placeErr
	}
	return f.placed, nil
}

func (f *fakeService) OrderStatus(_ context.Context, _ string) (json.RawMessage, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.order, nil
}

func setupRouter(svc checkout.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	checkout.RegisterRoutes(r.Group("/api/v1"), checkout.NewHandler(svc, nil))
	return r
}

func TestCheckoutEndpoint(t *testing.T) {
	svc := &fakeService{placed: checkout.OrderResponse{OrderID: 9001}}
	router := setupRouter(svc)

	body := `{
		"fullName": "Asha Rao",
		"phone": "9000000001",
		"address": "12 Hill Road",
		"city": "Mumbai",
		"pincode": "400050"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Asha Rao", svc.gotReq.FullName)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID catalog.ID `json:"orderId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, catalog.ID(9001), resp.Data.OrderID)
}

func TestCheckoutEndpointMalformedBody(t *testing.T) {
	router := setupRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutEndpointUpstreamFailure(t *testing.T) {
	svc := &fakeService{placeErr: checkout.ErrOrderFailed}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
}

func TestOrderStatusEndpoint(t *testing.T) {
	svc := &fakeService{order: json.RawMessage(`{"orderId":9001,"status":"CONFIRMED"}`)}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/9001", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Data.Status)
}

func TestOrderStatusEndpointNotFound(t *testing.T) {
	svc := &fakeService{statusErr: checkout.ErrOrderNotFound}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

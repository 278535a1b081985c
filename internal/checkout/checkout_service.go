package checkout

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
)

//go:generate mockgen -source=checkout_service.go -destination=../mocks/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (OrderResponse, error)
	OrderStatus(ctx context.Context, orderID string) (json.RawMessage, error)
}

// cartStore is the slice of the cart store the assembler needs: a snapshot to
// build order lines from, and removal of the lines a confirmed order consumed.
type cartStore interface {
	Snapshot() cart.Cart
	Remove(ctx context.Context, key catalog.ID)
}

type service struct {
	cart     cartStore
	orders   OrdersClient
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Cart   cartStore
	Orders OrdersClient
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Cart == nil {
		panic("cart store cannot be nil")
	}
	if deps.Orders == nil {
		panic("orders client cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		cart:     deps.Cart,
		orders:   deps.Orders,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

// Checkout assembles an order from either the cart (default) or the request's
// buy-now item, submits it to the backend, and on confirmation clears the
// consumed cart lines. A failed submission leaves the cart untouched.
func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return OrderResponse{}, mapValidationError(err)
	}

	var (
		lines    []OrderLine
		consumed []catalog.ID
	)
	if req.Item != nil {
		lines = []OrderLine{buyNowLine(*req.Item)}
	} else {
		snap := s.cart.Snapshot()
		if len(snap.Items) == 0 {
			return OrderResponse{}, ErrEmptyCart
		}
		for _, item := range snap.Items {
			lines = append(lines, cartLine(item))
			consumed = append(consumed, item.LineKey)
		}
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	order := OrderRequest{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Landmark:    req.Landmark,
		AddressType: req.AddressType,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TotalAmount: subtotal + DeliveryFee,
		Items:       lines,
	}

	placed, err := s.orders.PlaceOrder(ctx, order)
	if err != nil {
		s.logger.Error("order submission failed", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	for _, key := range consumed {
		s.cart.Remove(ctx, key)
	}

	s.logger.Info("order placed",
		zap.Int64("order_id", int64(placed.OrderID)),
		zap.Int("lines", len(lines)),
		zap.Float64("total", order.TotalAmount),
	)
	return placed, nil
}

func (s *service) OrderStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	return s.orders.GetOrder(ctx, orderID)
}

func cartLine(item cart.LineItem) OrderLine {
	line := OrderLine{
		ProductID:    item.ProductID,
		ProductName:  item.Name,
		Price:        item.UnitPrice(),
		Quantity:     item.Quantity,
		ProductImage: item.Image,
	}
	if v := item.SelectedVariant; v != nil {
		id, label := v.VariantID, v.Label
		line.VariantID = &id
		line.VariantName = &label
	}
	return line
}

func buyNowLine(item BuyNowItem) OrderLine {
	line := OrderLine{
		ProductID:    item.ProductID,
		ProductName:  item.Name,
		Price:        item.Price,
		Quantity:     item.Quantity,
		ProductImage: item.Image,
	}
	if item.VariantID != 0 {
		id, label := item.VariantID, item.VariantName
		line.VariantID = &id
		line.VariantName = &label
	}
	return line
}

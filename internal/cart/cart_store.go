package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/storage"
)

// StorageKey is the durable-storage key holding the serialized cart.
const StorageKey = "storefront:cart"

// Store owns the authoritative in-memory cart for this session. Every
// mutation recomputes the aggregate totals and then persists the whole cart;
// a persistence failure is logged and swallowed so the mutation still takes
// visible effect.
type Store struct {
	mu      sync.Mutex
	cart    Cart
	storage storage.Store
	log     *zap.Logger
}

// NewStore loads the persisted cart, starting empty when none exists or the
// stored value cannot be read.
func NewStore(ctx context.Context, st storage.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{
		storage: st,
		log:     log,
	}

	var cart Cart
	err := st.Load(ctx, StorageKey, &cart)
	switch {
	case err == nil:
		cart.recompute() // never trust persisted totals
		s.cart = cart
	case errors.Is(err, storage.ErrNotFound):
	default:
		log.Warn("loading cart failed, starting empty", zap.Error(err))
	}

	return s
}

// Snapshot returns a copy of the aggregate safe to hand to handlers.
func (s *Store) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Cart {
	out := s.cart
	out.Items = make([]LineItem, len(s.cart.Items))
	for i, item := range s.cart.Items {
		if item.SelectedVariant != nil {
			v := *item.SelectedVariant
			item.SelectedVariant = &v
		}
		out.Items[i] = item
	}
	return out
}

// Add puts one unit of (product, selected variant) in the cart. An existing
// line with the same key is incremented and moved to the front; the
// most-recent-first ordering is part of the UX contract. Returns
// ErrStockExceeded when the selected variant's stock ceiling is hit.
func (s *Store) Add(ctx context.Context, p catalog.Product, selected *catalog.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := catalog.LineKey(p.ID, selected)

	if i := s.indexOf(key); i >= 0 {
		item := s.cart.Items[i]
		if exceedsStock(item, item.Quantity+1) {
			return ErrStockExceeded
		}
		item.Quantity++
		s.cart.Items = append([]LineItem{item}, append(s.cart.Items[:i:i], s.cart.Items[i+1:]...)...)
		s.finishMutation(ctx)
		return nil
	}

	item := LineItem{
		LineKey:   key,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image(),
		Quantity:  1,
	}
	if selected != nil {
		v := *selected
		item.SelectedVariant = &v
		item.Price = v.Price
		if v.VariantImage != "" {
			item.Image = v.VariantImage
		} else if v.ProductImage != "" {
			item.Image = v.ProductImage
		}
	}

	if exceedsStock(item, 1) {
		return ErrStockExceeded
	}

	s.cart.Items = append([]LineItem{item}, s.cart.Items...)
	s.finishMutation(ctx)
	return nil
}

// Increase bumps a line's quantity by one. Unknown keys are a no-op.
func (s *Store) Increase(ctx context.Context, key catalog.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return nil
	}

	item := s.cart.Items[i]
	if exceedsStock(item, item.Quantity+1) {
		return ErrStockExceeded
	}

	s.cart.Items[i].Quantity++
	s.finishMutation(ctx)
	return nil
}

// Decrease lowers a line's quantity by one, removing the line entirely when
// it would drop below one. Unknown keys are a no-op.
func (s *Store) Decrease(ctx context.Context, key catalog.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return
	}

	if s.cart.Items[i].Quantity > 1 {
		s.cart.Items[i].Quantity--
	} else {
		s.cart.Items = append(s.cart.Items[:i:i], s.cart.Items[i+1:]...)
	}
	s.finishMutation(ctx)
}

// Remove deletes a line unconditionally. Unknown keys are a no-op.
func (s *Store) Remove(ctx context.Context, key catalog.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return
	}

	s.cart.Items = append(s.cart.Items[:i:i], s.cart.Items[i+1:]...)
	s.finishMutation(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = Cart{}
	s.finishMutation(ctx)
}

func (s *Store) indexOf(key catalog.ID) int {
	for i := range s.cart.Items {
		if s.cart.Items[i].LineKey == key {
			return i
		}
	}
	return -1
}

// exceedsStock reports whether raising the line to wantQty would pass the
// selected variant's stock ceiling. Lines without variant stock information
// have no ceiling.
func exceedsStock(item LineItem, wantQty int) bool {
	return item.SelectedVariant != nil && wantQty > item.SelectedVariant.Stock
}

func (s *Store) finishMutation(ctx context.Context) {
	s.cart.recompute()
	if err := s.storage.Save(ctx, StorageKey, s.copyLocked()); err != nil {
		// In-memory state stays authoritative; the session carries on.
		s.log.Warn("persisting cart failed", zap.Error(err))
	}
}

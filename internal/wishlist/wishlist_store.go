package wishlist

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/storage"
)

// StorageKey is the durable-storage key holding the serialized wishlist.
const StorageKey = "storefront:wishlist"

// Entry is one wishlist row, identified by its (productId, variantId) pair.
// VariantID 0 means the product was wishlisted without picking a variant.
// The remaining fields are a display snapshot taken at toggle time.
type Entry struct {
	ProductID       catalog.ID       `json:"productId"`
	VariantID       catalog.ID       `json:"variantId,omitempty"`
	Name            string           `json:"name"`
	Price           float64          `json:"price"`
	Image           string           `json:"image,omitempty"`
	SelectedVariant *catalog.Variant `json:"selectedVariant,omitempty"`
}

type Wishlist struct {
	Items []Entry `json:"items"`
}

// Store owns the session's wishlist: a duplicate-free set of
// (product, variant) pairs with toggle semantics.
type Store struct {
	mu       sync.Mutex
	wishlist Wishlist
	storage  storage.Store
	log      *zap.Logger
}

func NewStore(ctx context.Context, st storage.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{storage: st, log: log}

	var w Wishlist
	err := st.Load(ctx, StorageKey, &w)
	switch {
	case err == nil:
		s.wishlist = w
	case errors.Is(err, storage.ErrNotFound):
	default:
		log.Warn("loading wishlist failed, starting empty", zap.Error(err))
	}

	return s
}

// Toggle is the sole mutation primitive: it removes the (product, variant)
// pair when present, adds a snapshot when absent. The returned bool reports
// whether the pair is in the wishlist afterwards.
func (s *Store) Toggle(ctx context.Context, p catalog.Product, selected *catalog.Variant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	variantID := catalog.ID(0)
	if selected != nil {
		variantID = selected.VariantID
	}

	if i := s.indexOf(p.ID, variantID); i >= 0 {
		s.wishlist.Items = append(s.wishlist.Items[:i:i], s.wishlist.Items[i+1:]...)
		s.persistLocked(ctx)
		return false
	}

	entry := Entry{
		ProductID: p.ID,
		VariantID: variantID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image(),
	}
	if selected != nil {
		v := *selected
		entry.SelectedVariant = &v
		entry.Price = v.Price
		if v.VariantImage != "" {
			entry.Image = v.VariantImage
		}
	}

	s.wishlist.Items = append(s.wishlist.Items, entry)
	s.persistLocked(ctx)
	return true
}

// Contains reports membership of the (productId, variantId) pair. It drives
// the heart-icon state, so it takes no lock longer than needed.
func (s *Store) Contains(productID, variantID catalog.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID, variantID) >= 0
}

func (s *Store) Snapshot() Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Wishlist{Items: make([]Entry, len(s.wishlist.Items))}
	for i, e := range s.wishlist.Items {
		if e.SelectedVariant != nil {
			v := *e.SelectedVariant
			e.SelectedVariant = &v
		}
		out.Items[i] = e
	}
	return out
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist = Wishlist{}
	s.persistLocked(ctx)
}

func (s *Store) indexOf(productID, variantID catalog.ID) int {
	for i, e := range s.wishlist.Items {
		if e.ProductID == productID && e.VariantID == variantID {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) {
	if err := s.storage.Save(ctx, StorageKey, s.wishlist); err != nil {
		s.log.Warn("persisting wishlist failed", zap.Error(err))
	}
}

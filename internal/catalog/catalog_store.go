package catalog

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the in-memory catalog for one storefront session. It is seeded by
// a bulk fetch, then patched in place by realtime events for the lifetime of
// the process. It is intentionally not persisted: after a restart the next
// bulk fetch rebuilds it.
//
// Mutations always replace slices rather than editing them in place, so
// snapshots handed out by List/Get stay stable while events keep arriving.
type Store struct {
	mu       sync.RWMutex
	products []Product
	selected *Product
	log      *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// Replace swaps in the result of a bulk catalog fetch. Last write wins; a
// superseded fetch that resolves late simply overwrites.
func (s *Store) Replace(products []Product) {
	normalized := make([]Product, len(products))
	for i, p := range products {
		if len(p.Variants) > 0 {
			p.Price = derivedPrice(p.Variants)
		}
		normalized[i] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = normalized
	s.log.Info("catalog replaced", zap.Int("products", len(normalized)))
}

// List returns a snapshot of the catalog in display order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id ID) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Select marks a product as the currently-viewed detail and returns it.
func (s *Store) Select(id ID) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			sel := p
			s.selected = &sel
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) Selected() (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return Product{}, false
	}
	return *s.selected, true
}

func (s *Store) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Apply folds one realtime event into the catalog. Events referencing ids
// the catalog does not know are silent no-ops: the stream may legitimately
// be ahead of the last bulk fetch, and duplicate delivery from an
// at-least-once transport must be harmless.
func (s *Store) Apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case EventProductCreated:
		s.applyProductCreated(ev.Product)
	case EventProductUpdated:
		s.applyProductUpdated(ev.ProductID, ev.ProductPatch)
	case EventProductDeleted:
		s.applyProductDeleted(ev.ProductID)
	case EventVariantCreated:
		s.applyVariantCreated(ev.ProductID, ev.Variant)
	case EventVariantUpdated:
		s.applyVariantUpdated(ev.ProductID, ev.VariantID, ev.VariantPatch)
	case EventVariantDeleted:
		s.applyVariantDeleted(ev.ProductID, ev.VariantID)
	default:
		s.log.Warn("ignoring catalog event", zap.String("kind", ev.Kind))
	}
}

func (s *Store) indexOf(id ID) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyProductCreated(p Product) {
	if s.indexOf(p.ID) >= 0 {
		return // duplicate delivery
	}
	if len(p.Variants) > 0 {
		p.Price = derivedPrice(p.Variants)
	}
	s.products = append([]Product{p}, s.products...)
}

func (s *Store) applyProductUpdated(id ID, patch ProductPatch) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.products[i] = mergeProduct(s.products[i], patch)
	s.refreshSelected(id)
}

func (s *Store) applyProductDeleted(id ID) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
}

func (s *Store) applyVariantCreated(productID ID, v Variant) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	p := s.products[i]
	if p.Variant(v.VariantID) != nil {
		return // duplicate delivery
	}

	variants := append(append([]Variant(nil), p.Variants...), v)
	p.Variants = variants
	p.Price = derivedPrice(variants)
	p.LastAddedVariantID = v.VariantID

	s.products[i] = p
	s.refreshSelected(productID)
}

func (s *Store) applyVariantUpdated(productID, variantID ID, patch VariantPatch) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	p := s.products[i]
	variants := append([]Variant(nil), p.Variants...)
	found := false
	for j := range variants {
		if variants[j].VariantID == variantID {
			variants[j] = mergeVariant(variants[j], patch)
			found = true
			break
		}
	}
	if !found {
		return
	}

	p.Variants = variants
	p.Price = derivedPrice(variants)

	s.products[i] = p
	s.refreshSelected(productID)
}

func (s *Store) applyVariantDeleted(productID, variantID ID) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	p := s.products[i]
	variants := make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.VariantID != variantID {
			variants = append(variants, v)
		}
	}
	if len(variants) == len(p.Variants) {
		return // duplicate delivery or unknown variant
	}

	p.Variants = variants
	p.Price = derivedPrice(variants)

	s.products[i] = p
	s.refreshSelected(productID)
}

// refreshSelected keeps the selected-product detail in step with the list
// entry it was copied from.
func (s *Store) refreshSelected(id ID) {
	if s.selected == nil || s.selected.ID != id {
		return
	}
	if i := s.indexOf(id); i >= 0 {
		sel := s.products[i]
		s.selected = &sel
	}
}

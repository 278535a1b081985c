package catalog

import (
	"encoding/json"
	"fmt"
)

// Event kinds emitted by the backend on the realtime channel. The kind
// travels in the kafka message's event_type header, the payload in the body.
const (
	EventProductCreated = "product:created"
	EventProductUpdated = "product:updated"
	EventProductDeleted = "product:deleted"
	EventVariantCreated = "variant:created"
	EventVariantUpdated = "variant:updated"
	EventVariantDeleted = "variant:deleted"
)

var ErrUnknownEvent = fmt.Errorf("unknown catalog event kind")

// Event is one decoded realtime event. Exactly the fields for its kind are
// populated; everything else is zero.
type Event struct {
	Kind string

	Product      Product      // product:created
	ProductPatch ProductPatch // product:updated

	ProductID ID // product:deleted, variant:*
	VariantID ID // variant:updated, variant:deleted

	Variant      Variant      // variant:created
	VariantPatch VariantPatch // variant:updated
}

// ProductPatch is a partial product update. Nil fields are left untouched by
// the merge.
type ProductPatch struct {
	ID              ID        `json:"id"`
	Name            *string   `json:"name"`
	CategoryName    *string   `json:"categoryName"`
	SubcategoryName *string   `json:"subcategoryName"`
	Price           *float64  `json:"price"`
	Images          *[]string `json:"images"`
}

// VariantPatch is a partial variant update.
type VariantPatch struct {
	Label        *string
	Price        *float64
	Stock        *int
	ProductImage *string
	VariantImage *string
}

// variantWire covers every shape the backend has been seen emitting for
// variant events: ids under variantId or id, the label under variant or the
// misspelled varient, and the parent product id as productid.
type variantWire struct {
	VariantID    *ID      `json:"variantId"`
	ID           *ID      `json:"id"`
	ProductID    ID       `json:"productid"`
	Label        *string  `json:"variant"`
	Varient      *string  `json:"varient"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	ProductImage *string  `json:"product_image"`
	VariantImage *string  `json:"variant_image"`
}

func (w variantWire) variantID() ID {
	if w.VariantID != nil && *w.VariantID != 0 {
		return *w.VariantID
	}
	if w.ID != nil {
		return *w.ID
	}
	return 0
}

func (w variantWire) label() *string {
	if w.Label != nil {
		return w.Label
	}
	return w.Varient
}

// DecodeEvent turns a raw message into a tagged Event. The transport layer
// calls this once per message; everything after it is pure.
func DecodeEvent(kind string, payload []byte) (Event, error) {
	ev := Event{Kind: kind}

	switch kind {
	case EventProductCreated:
		if err := json.Unmarshal(payload, &ev.Product); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}

	case EventProductUpdated:
		if err := json.Unmarshal(payload, &ev.ProductPatch); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		ev.ProductID = ev.ProductPatch.ID

	case EventProductDeleted:
		// Payload is either a bare id or an object carrying one.
		var obj struct {
			ID ID `json:"id"`
		}
		if err := json.Unmarshal(payload, &obj); err == nil && obj.ID != 0 {
			ev.ProductID = obj.ID
			return ev, nil
		}
		var id ID
		if err := json.Unmarshal(payload, &id); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		ev.ProductID = id

	case EventVariantCreated:
		var w variantWire
		if err := json.Unmarshal(payload, &w); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		ev.ProductID = w.ProductID
		ev.Variant = normalizeVariant(w)
		ev.VariantID = ev.Variant.VariantID

	case EventVariantUpdated:
		var w variantWire
		if err := json.Unmarshal(payload, &w); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		ev.ProductID = w.ProductID
		ev.VariantID = w.variantID()
		ev.VariantPatch = VariantPatch{
			Label:        w.label(),
			Price:        w.Price,
			Stock:        w.Stock,
			ProductImage: w.ProductImage,
			VariantImage: w.VariantImage,
		}

	case EventVariantDeleted:
		var w variantWire
		if err := json.Unmarshal(payload, &w); err != nil {
			return Event{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		ev.ProductID = w.ProductID
		ev.VariantID = w.variantID()

	default:
		return Event{}, ErrUnknownEvent
	}

	return ev, nil
}

// normalizeVariant fills backend gaps with safe defaults so a created variant
// is always renderable.
func normalizeVariant(w variantWire) Variant {
	v := Variant{
		VariantID: w.variantID(),
		Label:     "Default",
	}
	if l := w.label(); l != nil && *l != "" {
		v.Label = *l
	}
	if w.Price != nil {
		v.Price = *w.Price
	}
	if w.Stock != nil {
		v.Stock = *w.Stock
	}
	if w.ProductImage != nil {
		v.ProductImage = *w.ProductImage
	}
	if w.VariantImage != nil {
		v.VariantImage = *w.VariantImage
	}
	return v
}

// mergeProduct applies a shallow patch to a product copy. Variants are never
// patched here; they have their own event kinds.
func mergeProduct(p Product, patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.CategoryName != nil {
		p.CategoryName = *patch.CategoryName
	}
	if patch.SubcategoryName != nil {
		p.SubcategoryName = *patch.SubcategoryName
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	return p
}

func mergeVariant(v Variant, patch VariantPatch) Variant {
	if patch.Label != nil && *patch.Label != "" {
		v.Label = *patch.Label
	}
	if patch.Price != nil {
		v.Price = *patch.Price
	}
	if patch.Stock != nil {
		v.Stock = *patch.Stock
	}
	if patch.ProductImage != nil {
		v.ProductImage = *patch.ProductImage
	}
	if patch.VariantImage != nil {
		v.VariantImage = *patch.VariantImage
	}
	return v
}

// derivedPrice is the displayed product price: the minimum price across
// variants, or 0 once none remain. The wire price on a product is never
// trusted while it has variants; drift between the advertised price and the
// cheapest variant is what this prevents.
func derivedPrice(variants []Variant) float64 {
	if len(variants) == 0 {
		return 0
	}
	min := variants[0].Price
	for _, v := range variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a product or variant identifier. The upstream backend is loose about
// types and delivers ids as JSON numbers or numeric strings depending on the
// code path, so decoding coerces both into one comparable value.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*id = ID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a route parameter into an ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// Variant is a purchasable sub-option of a product. VariantID is unique only
// within its parent product.
type Variant struct {
	VariantID    ID      `json:"variantId"`
	Label        string  `json:"variant"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ProductImage string  `json:"product_image,omitempty"`
	VariantImage string  `json:"variant_image,omitempty"`
}

type Product struct {
	ID              ID        `json:"id"`
	Name            string    `json:"name"`
	CategoryName    string    `json:"categoryName,omitempty"`
	SubcategoryName string    `json:"subcategoryName,omitempty"`
	Price           float64   `json:"price"`
	Images          []string  `json:"images,omitempty"`
	Variants        []Variant `json:"variants,omitempty"`

	// LastAddedVariantID is a transient UI hint set when a variant arrives
	// over the realtime channel. Nothing durable depends on it.
	LastAddedVariantID ID `json:"lastAddedVariantId,omitempty"`
}

// Variant returns the variant with the given id, or nil.
func (p *Product) Variant(variantID ID) *Variant {
	for i := range p.Variants {
		if p.Variants[i].VariantID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// Image returns the product's primary image reference, or "".
func (p *Product) Image() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// LineKey resolves the cart/wishlist line identity for a (product, variant)
// pair: the variant id when a variant is selected, otherwise the product id.
// Using the product id for a variant-bearing selection would merge distinct
// variants into one line item, so every cart and wishlist mutation must go
// through this function.
func LineKey(productID ID, selected *Variant) ID {
	if selected != nil && selected.VariantID != 0 {
		return selected.VariantID
	}
	return productID
}

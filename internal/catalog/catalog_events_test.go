package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent_ProductCreated(t *testing.T) {
	payload := `{"id":"5","name":"Rose Serum","categoryName":"Skincare",
		"images":["rose.jpg"],"variants":[{"variantId":1,"variant":"30ml","price":120,"stock":3}]}`

	ev, err := DecodeEvent(EventProductCreated, []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, EventProductCreated, ev.Kind)
	assert.Equal(t, ID(5), ev.Product.ID)
	assert.Equal(t, "Rose Serum", ev.Product.Name)
	require.Len(t, ev.Product.Variants, 1)
	assert.Equal(t, ID(1), ev.Product.Variants[0].VariantID)
}

func TestDecodeEvent_ProductUpdated(t *testing.T) {
	ev, err := DecodeEvent(EventProductUpdated, []byte(`{"id":5,"name":"Renamed"}`))
	require.NoError(t, err)

	assert.Equal(t, ID(5), ev.ProductID)
	require.NotNil(t, ev.ProductPatch.Name)
	assert.Equal(t, "Renamed", *ev.ProductPatch.Name)
	assert.Nil(t, ev.ProductPatch.Price, "absent fields stay nil so the merge leaves them alone")
}

func TestDecodeEvent_ProductDeleted(t *testing.T) {
	t.Run("bare_id", func(t *testing.T) {
		ev, err := DecodeEvent(EventProductDeleted, []byte(`5`))
		require.NoError(t, err)
		assert.Equal(t, ID(5), ev.ProductID)
	})

	t.Run("bare_string_id", func(t *testing.T) {
		ev, err := DecodeEvent(EventProductDeleted, []byte(`"5"`))
		require.NoError(t, err)
		assert.Equal(t, ID(5), ev.ProductID)
	})

	t.Run("object", func(t *testing.T) {
		ev, err := DecodeEvent(EventProductDeleted, []byte(`{"id":"5"}`))
		require.NoError(t, err)
		assert.Equal(t, ID(5), ev.ProductID)
	})
}

func TestDecodeEvent_VariantCreated(t *testing.T) {
	t.Run("full_payload", func(t *testing.T) {
		payload := `{"variantId":9,"productid":"5","variant":"50ml","price":80,"stock":4,
			"product_image":"p.jpg","variant_image":"v.jpg"}`

		ev, err := DecodeEvent(EventVariantCreated, []byte(payload))
		require.NoError(t, err)

		assert.Equal(t, ID(5), ev.ProductID)
		assert.Equal(t, ID(9), ev.VariantID)
		assert.Equal(t, "50ml", ev.Variant.Label)
		assert.Equal(t, 80.0, ev.Variant.Price)
		assert.Equal(t, 4, ev.Variant.Stock)
		assert.Equal(t, "v.jpg", ev.Variant.VariantImage)
	})

	t.Run("id_fallback_and_varient_typo", func(t *testing.T) {
		// Older backend versions emit id instead of variantId and the
		// misspelled varient for the label.
		payload := `{"id":"9","productid":5,"varient":"Red"}`

		ev, err := DecodeEvent(EventVariantCreated, []byte(payload))
		require.NoError(t, err)

		assert.Equal(t, ID(9), ev.VariantID)
		assert.Equal(t, "Red", ev.Variant.Label)
		assert.Equal(t, 0.0, ev.Variant.Price)
		assert.Equal(t, 0, ev.Variant.Stock)
	})

	t.Run("missing_label_defaults", func(t *testing.T) {
		ev, err := DecodeEvent(EventVariantCreated, []byte(`{"variantId":9,"productid":5}`))
		require.NoError(t, err)
		assert.Equal(t, "Default", ev.Variant.Label)
	})
}

func TestDecodeEvent_VariantUpdated(t *testing.T) {
	ev, err := DecodeEvent(EventVariantUpdated, []byte(`{"variantId":"9","productid":"5","price":60}`))
	require.NoError(t, err)

	assert.Equal(t, ID(5), ev.ProductID)
	assert.Equal(t, ID(9), ev.VariantID)
	require.NotNil(t, ev.VariantPatch.Price)
	assert.Equal(t, 60.0, *ev.VariantPatch.Price)
	assert.Nil(t, ev.VariantPatch.Stock)
}

func TestDecodeEvent_VariantDeleted(t *testing.T) {
	ev, err := DecodeEvent(EventVariantDeleted, []byte(`{"id":9,"productid":"5"}`))
	require.NoError(t, err)

	assert.Equal(t, ID(5), ev.ProductID)
	assert.Equal(t, ID(9), ev.VariantID)
}

func TestDecodeEvent_UnknownKind(t *testing.T) {
	_, err := DecodeEvent("order:created", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestDecodeEvent_BadPayload(t *testing.T) {
	_, err := DecodeEvent(EventVariantCreated, []byte(`{broken`))
	assert.Error(t, err)
}

func TestMergeVariant_EmptyLabelIgnored(t *testing.T) {
	empty := ""
	v := mergeVariant(Variant{VariantID: 1, Label: "50ml"}, VariantPatch{Label: &empty})
	assert.Equal(t, "50ml", v.Label)
}

func TestDerivedPrice(t *testing.T) {
	assert.Equal(t, 0.0, derivedPrice(nil))
	assert.Equal(t, 80.0, derivedPrice([]Variant{{Price: 100}, {Price: 80}, {Price: 95}}))
}

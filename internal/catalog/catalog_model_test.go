package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `42`, 42},
		{"numeric_string", `"42"`, 42},
		{"null", `null`, 0},
		{"empty_string", `""`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.want, id)
		})
	}

	t.Run("non_numeric_string", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
	})
}

func TestID_CoercionMakesWireShapesComparable(t *testing.T) {
	// The same variant id may arrive as 7 in one event and "7" in the next.
	var a, b ID
	require.NoError(t, json.Unmarshal([]byte(`7`), &a))
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &b))
	assert.Equal(t, a, b)
}

func TestLineKey(t *testing.T) {
	variant := &Variant{VariantID: 301, Label: "50ml", Price: 50}

	t.Run("variant_selected_uses_variant_id", func(t *testing.T) {
		assert.Equal(t, ID(301), LineKey(12, variant))
	})

	t.Run("no_variant_uses_product_id", func(t *testing.T) {
		assert.Equal(t, ID(12), LineKey(12, nil))
	})

	t.Run("zero_variant_id_falls_back_to_product_id", func(t *testing.T) {
		assert.Equal(t, ID(12), LineKey(12, &Variant{}))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, LineKey(12, variant), LineKey(12, variant))
		assert.Equal(t, LineKey(12, nil), LineKey(12, nil))
	})

	t.Run("variant_and_no_variant_do_not_collide", func(t *testing.T) {
		assert.NotEqual(t, LineKey(12, variant), LineKey(12, nil))
	})
}

func TestProduct_Variant(t *testing.T) {
	p := Product{
		ID: 1,
		Variants: []Variant{
			{VariantID: 10, Price: 100},
			{VariantID: 20, Price: 80},
		},
	}

	v := p.Variant(20)
	require.NotNil(t, v)
	assert.Equal(t, 80.0, v.Price)

	assert.Nil(t, p.Variant(99))
}

func TestProduct_Image(t *testing.T) {
	assert.Equal(t, "", (&Product{}).Image())
	assert.Equal(t, "a.jpg", (&Product{Images: []string{"a.jpg", "b.jpg"}}).Image())
}

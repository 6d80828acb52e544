package product

import (
	"testing"

	"storefront-gateway/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SimpleProductIgnoresVariant(t *testing.T) {
	p := simple()
	stray := &Variant{ID: 5, Price: 1, StockQuantity: 1000, InStock: true, IsActive: true}

	for _, v := range []*Variant{nil, stray} {
		d := Resolve(p, v)
		assert.Equal(t, p.Price, d.CurrentPrice)
		assert.Equal(t, p.ComparePrice, d.CurrentComparePrice)
		assert.Equal(t, p.StockQuantity, d.CurrentStock)
		assert.Equal(t, p.InStock, d.IsInStock)
		assert.Nil(t, d.PriceRange)
	}
}

func TestResolve_DiscountPercent(t *testing.T) {
	d := Resolve(simple(), nil)
	require.NotNil(t, d.DiscountPercent)
	assert.Equal(t, 17, *d.DiscountPercent)

	cases := map[string]*money.Amount{
		"absent": nil,
		"equal":  money.Ptr(10000),
		"lower":  money.Ptr(9000),
	}
	for name, compare := range cases {
		t.Run(name, func(t *testing.T) {
			p := simple()
			p.ComparePrice = compare
			assert.Nil(t, Resolve(p, nil).DiscountPercent)
		})
	}
}

func TestResolve_VariantTakesPrecedence(t *testing.T) {
	p := shirt()
	v := variantBySKU(p, "X-L-RED")

	d := Resolve(p, v)
	assert.Equal(t, money.Amount(24000), d.CurrentPrice)
	assert.Equal(t, money.Amount(25000), *d.CurrentComparePrice)
	assert.Equal(t, 10, d.CurrentStock)
	assert.True(t, d.IsInStock)
	assert.Nil(t, d.PriceRange)
	require.NotNil(t, d.DiscountPercent)
	assert.Equal(t, 4, *d.DiscountPercent)
	assert.Equal(t, QuantityBounds{Min: 1, Max: 10}, d.Quantity)
}

func TestResolve_UnavailableVariantNotInStock(t *testing.T) {
	p := shirt()

	zero := variantBySKU(p, "X-M-BLUE")
	assert.False(t, Resolve(p, zero).IsInStock)

	inactive := variantBySKU(p, "X-S-RED")
	inactive.IsActive = false
	assert.False(t, Resolve(p, inactive).IsInStock)
}

func TestResolve_PriceRange(t *testing.T) {
	p := shirt()

	d := Resolve(p, nil)
	require.NotNil(t, d.PriceRange)
	assert.Equal(t, PriceRange{Min: 20000, Max: 24000}, *d.PriceRange)
	assert.False(t, d.IsInStock)

	p.MaxPrice = money.Ptr(20000)
	assert.Nil(t, Resolve(p, nil).PriceRange, "equal bounds show a point price")

	p.MinPrice, p.MaxPrice = nil, nil
	assert.Nil(t, Resolve(p, nil).PriceRange)
}

func TestResolve_QuantityBounds(t *testing.T) {
	p := simple()
	assert.Equal(t, QuantityBounds{Min: 1, Max: 5}, Resolve(p, nil).Quantity)

	p.TrackInventory = false
	assert.Equal(t, QuantityBounds{Min: 1, Max: MaxUntrackedQuantity}, Resolve(p, nil).Quantity)
}

func TestQuantityBounds_Clamp(t *testing.T) {
	b := QuantityBounds{Min: 1, Max: 5}
	assert.Equal(t, 1, b.Clamp(0))
	assert.Equal(t, 3, b.Clamp(3))
	assert.Equal(t, 5, b.Clamp(50))

	assert.Equal(t, 1, QuantityBounds{Min: 1, Max: 0}.Clamp(4))
}

package product

import "storefront-gateway/internal/money"

// MaxUntrackedQuantity caps the quantity selector when stock is not tracked.
const MaxUntrackedQuantity = 999

type PriceRange struct {
	Min money.Amount `json:"min"`
	Max money.Amount `json:"max"`
}

type QuantityBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (b QuantityBounds) Clamp(n int) int {
	if n > b.Max {
		n = b.Max
	}
	if n < b.Min {
		n = b.Min
	}
	return n
}

// Display is the price and stock bundle shown for a product and an optional
// resolved variant.
type Display struct {
	CurrentPrice        money.Amount   `json:"current_price"`
	CurrentComparePrice *money.Amount  `json:"current_compare_price,omitempty"`
	CurrentStock        int            `json:"current_stock"`
	IsInStock           bool           `json:"is_in_stock"`
	DiscountPercent     *int           `json:"discount_percent,omitempty"`
	PriceRange          *PriceRange    `json:"price_range,omitempty"`
	Quantity            QuantityBounds `json:"quantity"`
}

// Resolve builds the display bundle. For products without options v is
// ignored and the product's own fields are used.
func Resolve(p *Product, v *Variant) Display {
	var d Display

	switch {
	case !p.HasOptions:
		d.CurrentPrice = p.Price
		d.CurrentComparePrice = p.ComparePrice
		d.CurrentStock = p.StockQuantity
		d.IsInStock = p.InStock
	case v != nil:
		d.CurrentPrice = v.Price
		d.CurrentComparePrice = v.ComparePrice
		d.CurrentStock = v.StockQuantity
		d.IsInStock = v.IsActive && v.InStock
	default:
		d.CurrentPrice = p.Price
		d.CurrentComparePrice = p.ComparePrice
		d.CurrentStock = p.StockQuantity
		d.PriceRange = priceRange(p)
	}

	d.DiscountPercent = money.DiscountPercent(d.CurrentPrice, d.CurrentComparePrice)
	d.Quantity = quantityBounds(p, d.CurrentStock)
	return d
}

func priceRange(p *Product) *PriceRange {
	if p.MinPrice == nil && p.MaxPrice == nil {
		return nil
	}
	r := PriceRange{Min: p.Price, Max: p.Price}
	if p.MinPrice != nil {
		r.Min = *p.MinPrice
	}
	if p.MaxPrice != nil {
		r.Max = *p.MaxPrice
	}
	if r.Min == r.Max {
		return nil
	}
	return &r
}

func quantityBounds(p *Product, stock int) QuantityBounds {
	if p.TrackInventory {
		return QuantityBounds{Min: 1, Max: stock}
	}
	return QuantityBounds{Min: 1, Max: MaxUntrackedQuantity}
}

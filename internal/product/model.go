package product

import "storefront-gateway/internal/money"

// OptionAxis is a named configuration dimension with its ordered values.
type OptionAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (a OptionAxis) Has(value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}

type Variant struct {
	ID            int64             `json:"id"`
	SKU           string            `json:"sku,omitempty"`
	OptionValues  map[string]string `json:"option_values"`
	Label         string            `json:"label,omitempty"`
	Price         money.Amount      `json:"price"`
	ComparePrice  *money.Amount     `json:"compare_price,omitempty"`
	StockQuantity int               `json:"stock_quantity"`
	InStock       bool              `json:"in_stock"`
	IsActive      bool              `json:"is_active"`
}

// Product is the canonical product shape used by matching and pricing.
// Backend documents of either schema version are converted by Decode.
type Product struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Slug           string        `json:"slug"`
	SKU            string        `json:"sku,omitempty"`
	Thumbnail      string        `json:"thumbnail,omitempty"`
	Description    string        `json:"description,omitempty"`
	Price          money.Amount  `json:"price"`
	ComparePrice   *money.Amount `json:"compare_price,omitempty"`
	MinPrice       *money.Amount `json:"min_price,omitempty"`
	MaxPrice       *money.Amount `json:"max_price,omitempty"`
	StockQuantity  int           `json:"stock_quantity"`
	InStock        bool          `json:"in_stock"`
	TrackInventory bool          `json:"track_inventory"`
	HasOptions     bool          `json:"has_options"`
	Options        []OptionAxis  `json:"options"`
	Variants       []Variant     `json:"variants"`
}

func (p *Product) Axis(name string) (OptionAxis, bool) {
	for _, a := range p.Options {
		if a.Name == name {
			return a, true
		}
	}
	return OptionAxis{}, false
}

// Validate checks that every variant assigns exactly one declared value to
// every declared axis.
func (p *Product) Validate() error {
	seen := make(map[string]struct{}, len(p.Options))
	for _, a := range p.Options {
		if _, dup := seen[a.Name]; dup {
			return invalidVariant(p, nil, "duplicate axis %q", a.Name)
		}
		seen[a.Name] = struct{}{}
	}

	for i := range p.Variants {
		v := &p.Variants[i]
		if len(v.OptionValues) != len(p.Options) {
			return invalidVariant(p, v, "assigns %d of %d axes", len(v.OptionValues), len(p.Options))
		}
		for axis, value := range v.OptionValues {
			a, ok := p.Axis(axis)
			if !ok {
				return invalidVariant(p, v, "unknown axis %q", axis)
			}
			if !a.Has(value) {
				return invalidVariant(p, v, "unknown value %q on axis %q", value, axis)
			}
		}
	}
	return nil
}

// Summary is the list-view projection of a product.
type Summary struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	Thumbnail       string        `json:"thumbnail,omitempty"`
	Price           money.Amount  `json:"price"`
	ComparePrice    *money.Amount `json:"compare_price,omitempty"`
	DiscountPercent *int          `json:"discount_percent,omitempty"`
	PriceRange      *PriceRange   `json:"price_range,omitempty"`
	InStock         bool          `json:"in_stock"`
	HasOptions      bool          `json:"has_options"`
}

func (p *Product) Summary() Summary {
	d := Resolve(p, nil)
	return Summary{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Thumbnail:       p.Thumbnail,
		Price:           d.CurrentPrice,
		ComparePrice:    d.CurrentComparePrice,
		DiscountPercent: d.DiscountPercent,
		PriceRange:      d.PriceRange,
		InStock:         p.InStock,
		HasOptions:      p.HasOptions,
	}
}

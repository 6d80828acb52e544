package product

import (
	"encoding/json"
	"fmt"
	"strings"

	"storefront-gateway/internal/money"
)

// The backend has shipped two product document shapes:
//
//	v1: price / compare_price, options: [{name, values: ["S","M"]}]
//	v2: sale_price / regular_price / min_sale_price / max_sale_price,
//	    attributes: [{name, values: [{value}]}], variants with final_price
//
// Both are converted here and nothing past Decode sees the wire shape.

type wireProduct struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	SKU            *string         `json:"sku"`
	Thumbnail      *string         `json:"thumbnail"`
	Description    *string         `json:"description"`
	Price          *money.Amount   `json:"price"`
	ComparePrice   *money.Amount   `json:"compare_price"`
	SalePrice      *money.Amount   `json:"sale_price"`
	RegularPrice   *money.Amount   `json:"regular_price"`
	MinSalePrice   *money.Amount   `json:"min_sale_price"`
	MaxSalePrice   *money.Amount   `json:"max_sale_price"`
	StockQuantity  *int            `json:"stock_quantity"`
	InStock        *bool           `json:"in_stock"`
	TrackInventory bool            `json:"track_inventory"`
	HasOptions     bool            `json:"has_options"`
	Options        []wireOption    `json:"options"`
	Attributes     []wireAttribute `json:"attributes"`
	Variants       []wireVariant   `json:"variants"`
}

type wireOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type wireAttribute struct {
	Name   string `json:"name"`
	Values []struct {
		Value string `json:"value"`
	} `json:"values"`
}

type wireVariant struct {
	ID            int64             `json:"id"`
	SKU           *string           `json:"sku"`
	OptionValues  map[string]string `json:"option_values"`
	OptionString  string            `json:"option_string"`
	Price         *money.Amount     `json:"price"`
	ComparePrice  *money.Amount     `json:"compare_price"`
	FinalPrice    *money.Amount     `json:"final_price"`
	RegularPrice  *money.Amount     `json:"regular_price"`
	StockQuantity int               `json:"stock_quantity"`
	InStock       *bool             `json:"in_stock"`
	IsActive      *bool             `json:"is_active"`
}

func (w *wireProduct) isV2() bool {
	return w.SalePrice != nil
}

// Decode converts a backend product document into the canonical Product and
// validates its variants.
func Decode(raw json.RawMessage) (*Product, error) {
	var w wireProduct
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSchema, err)
	}
	if w.Price == nil && w.SalePrice == nil {
		return nil, fmt.Errorf("%w: product %d has no price", ErrUnsupportedSchema, w.ID)
	}
	if !w.isV2() && len(w.Attributes) > 0 {
		return nil, fmt.Errorf("%w: product %d mixes attributes with a v1 price", ErrUnsupportedSchema, w.ID)
	}

	p := &Product{
		ID:             w.ID,
		Name:           w.Name,
		Slug:           w.Slug,
		SKU:            deref(w.SKU),
		Thumbnail:      deref(w.Thumbnail),
		Description:    deref(w.Description),
		TrackInventory: w.TrackInventory,
		HasOptions:     w.HasOptions,
	}
	if w.StockQuantity != nil {
		p.StockQuantity = *w.StockQuantity
	}

	if w.isV2() {
		p.Price = *w.SalePrice
		p.ComparePrice = w.RegularPrice
		p.MinPrice = w.MinSalePrice
		p.MaxPrice = w.MaxSalePrice
		for _, a := range w.Attributes {
			axis := OptionAxis{Name: a.Name}
			for _, v := range a.Values {
				axis.Values = append(axis.Values, v.Value)
			}
			p.Options = append(p.Options, axis)
		}
	} else {
		p.Price = *w.Price
		p.ComparePrice = w.ComparePrice
		for _, o := range w.Options {
			p.Options = append(p.Options, OptionAxis{Name: o.Name, Values: o.Values})
		}
	}

	p.InStock = stockFlag(w.InStock, p.StockQuantity, p.TrackInventory)

	for _, wv := range w.Variants {
		p.Variants = append(p.Variants, decodeVariant(p, wv))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeVariant(p *Product, wv wireVariant) Variant {
	v := Variant{
		ID:            wv.ID,
		SKU:           deref(wv.SKU),
		OptionValues:  wv.OptionValues,
		Label:         wv.OptionString,
		StockQuantity: wv.StockQuantity,
		IsActive:      wv.IsActive == nil || *wv.IsActive,
		Price:         p.Price,
	}
	if v.OptionValues == nil {
		v.OptionValues = map[string]string{}
	}

	switch {
	case wv.FinalPrice != nil:
		v.Price = *wv.FinalPrice
		v.ComparePrice = wv.RegularPrice
	case wv.Price != nil:
		v.Price = *wv.Price
		v.ComparePrice = wv.ComparePrice
	}

	v.InStock = stockFlag(wv.InStock, wv.StockQuantity, p.TrackInventory)

	if v.Label == "" {
		v.Label = optionLabel(p.Options, v.OptionValues)
	}
	return v
}

// stockFlag prefers the explicit in_stock flag and falls back to the
// quantity. A tracked item with no stock is never in stock.
func stockFlag(flag *bool, quantity int, tracked bool) bool {
	if tracked && quantity <= 0 {
		return false
	}
	if flag != nil {
		return *flag
	}
	return quantity > 0
}

func optionLabel(axes []OptionAxis, values map[string]string) string {
	parts := make([]string, 0, len(axes))
	for _, a := range axes {
		if v, ok := values[a.Name]; ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

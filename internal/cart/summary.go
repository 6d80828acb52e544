package cart

import (
	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/money"
)

const FreeShippingLabel = "무료"

// Summary is the display form of a server cart.
type Summary struct {
	ItemCount       int          `json:"item_count"`
	Subtotal        money.Amount `json:"subtotal"`
	SubtotalLabel   string       `json:"subtotal_label"`
	ShippingFee     money.Amount `json:"shipping_fee"`
	ShippingLabel   string       `json:"shipping_label"`
	FreeShipping    bool         `json:"free_shipping"`
	ShippingMessage string       `json:"shipping_message,omitempty"`
	Total           money.Amount `json:"total"`
	TotalLabel      string       `json:"total_label"`
	IsEmpty         bool         `json:"is_empty"`
}

// Summarize renders the server's numbers as they are. Shipping shows as free
// whenever the server says so, whatever shipping_fee carries.
func Summarize(c *backend.Cart) Summary {
	if c == nil {
		return Summary{
			IsEmpty:       true,
			SubtotalLabel: money.Amount(0).Format(),
			ShippingLabel: FreeShippingLabel,
			TotalLabel:    money.Amount(0).Format(),
		}
	}

	s := Summary{
		ItemCount:   c.ItemCount,
		Subtotal:    c.Subtotal,
		ShippingFee: c.ShippingFee,
		Total:       c.Total,
		IsEmpty:     len(c.Items) == 0,
	}

	if s.ItemCount == 0 {
		for _, it := range c.Items {
			s.ItemCount += it.Quantity
		}
	}
	if s.Total == 0 {
		s.Total = c.Subtotal
	}

	info := c.ShippingInfo
	s.FreeShipping = c.ShippingFee == 0 || (info != nil && (info.IsFree || info.FreeShippingApplied))
	if s.FreeShipping {
		s.ShippingLabel = FreeShippingLabel
	} else {
		s.ShippingLabel = c.ShippingFee.Format()
	}

	if !s.FreeShipping && info != nil {
		switch {
		case info.Message != "":
			s.ShippingMessage = info.Message
		case info.Threshold != nil:
			s.ShippingMessage = info.Threshold.Format() + " 이상 구매 시 무료배송"
		}
	}

	s.SubtotalLabel = s.Subtotal.Format()
	s.TotalLabel = s.Total.Format()
	return s
}

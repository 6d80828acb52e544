package order

import "storefront-gateway/internal/backend"

var statusLabels = map[backend.OrderStatus]string{
	backend.OrderStatusPending:   "결제 대기",
	backend.OrderStatusPaid:      "결제 완료",
	backend.OrderStatusPreparing: "상품 준비중",
	backend.OrderStatusShipping:  "배송중",
	backend.OrderStatusDelivered: "배송 완료",
	backend.OrderStatusCancelled: "주문 취소",
	backend.OrderStatusRefunded:  "환불 완료",
}

// StatusLabel returns the buyer-facing label, or the raw status for values
// the storefront does not know yet.
func StatusLabel(s backend.OrderStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// View is a server order plus the display fields the storefront needs.
type View struct {
	backend.Order
	StatusLabel string `json:"status_label"`
	Cancellable bool   `json:"cancellable"`
	Location    string `json:"location"`
}

type ListResult struct {
	Orders []View            `json:"orders"`
	Meta   *backend.PageMeta `json:"meta,omitempty"`
}

func newView(o *backend.Order) *View {
	return &View{
		Order:       *o,
		StatusLabel: StatusLabel(o.Status),
		Cancellable: o.Status.Cancellable(),
		Location:    "/orders/" + o.OrderNumber,
	}
}

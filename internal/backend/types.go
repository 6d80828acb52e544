package backend

import (
	"storefront-gateway/internal/money"
)

// ----------------- Auth -----------------

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type AuthResult struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	IsNewUser bool   `json:"is_new_user,omitempty"`
}

// ----------------- Cart -----------------

type CartItem struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"product_id"`
	VariantID    *int64       `json:"variant_id,omitempty"`
	ProductName  string       `json:"product_name"`
	OptionString string       `json:"option_string,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	Quantity     int          `json:"quantity"`
	UnitPrice    money.Amount `json:"unit_price"`
	Subtotal     money.Amount `json:"subtotal"`
}

type ShippingInfo struct {
	IsFree              bool          `json:"is_free"`
	FreeShippingApplied bool          `json:"free_shipping_applied"`
	Threshold           *money.Amount `json:"free_shipping_threshold,omitempty"`
	Message             string        `json:"message,omitempty"`
}

type Cart struct {
	Items        []CartItem    `json:"items"`
	ItemCount    int           `json:"item_count"`
	Subtotal     money.Amount  `json:"subtotal"`
	ShippingFee  money.Amount  `json:"shipping_fee"`
	Total        money.Amount  `json:"total"`
	ShippingInfo *ShippingInfo `json:"shipping_info,omitempty"`
}

type AddToCartRequest struct {
	ProductID int64  `json:"product_id"`
	VariantID *int64 `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ----------------- Orders -----------------

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Cancellable reports whether the buyer may still cancel the order.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending || s == OrderStatusPaid
}

type CreateOrderRequest struct {
	OrdererName           string `json:"orderer_name"`
	OrdererEmail          string `json:"orderer_email"`
	OrdererPhone          string `json:"orderer_phone"`
	ShippingName          string `json:"shipping_name"`
	ShippingPhone         string `json:"shipping_phone"`
	ShippingZipcode       string `json:"shipping_zipcode"`
	ShippingAddress       string `json:"shipping_address"`
	ShippingAddressDetail string `json:"shipping_address_detail,omitempty"`
	ShippingMemo          string `json:"shipping_memo,omitempty"`
}

type OrderItem struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"product_id"`
	VariantID    *int64       `json:"variant_id,omitempty"`
	ProductName  string       `json:"product_name"`
	OptionString string       `json:"option_string,omitempty"`
	Quantity     int          `json:"quantity"`
	UnitPrice    money.Amount `json:"unit_price"`
	Subtotal     money.Amount `json:"subtotal"`
}

type ShippingDetail struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Zipcode       string `json:"zipcode"`
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail,omitempty"`
	Memo          string `json:"memo,omitempty"`
}

type PaymentDetail struct {
	Method string       `json:"method,omitempty"`
	Status string       `json:"status,omitempty"`
	Amount money.Amount `json:"amount"`
	PaidAt *string      `json:"paid_at,omitempty"`
}

type Order struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	Subtotal    money.Amount    `json:"subtotal"`
	ShippingFee money.Amount    `json:"shipping_fee"`
	Total       money.Amount    `json:"total"`
	Shipping    *ShippingDetail `json:"shipping,omitempty"`
	Payment     *PaymentDetail  `json:"payment,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type OrderListParams struct {
	Page    int
	PerPage int
	Status  string
}

type OrderList struct {
	Orders []Order   `json:"orders"`
	Meta   *PageMeta `json:"meta,omitempty"`
}

// ----------------- Payments -----------------

type GatewayStatus struct {
	Available bool   `json:"available"`
	ClientKey string `json:"client_key,omitempty"`
}

type PaymentStatus struct {
	Toss   GatewayStatus `json:"toss"`
	Stripe GatewayStatus `json:"stripe"`
}

type TossReadyRequest struct {
	OrderNumber string `json:"order_number"`
	SuccessURL  string `json:"success_url"`
	FailURL     string `json:"fail_url"`
}

// PaymentReady is the short-lived payment intent handed to the provider widget.
type PaymentReady struct {
	ClientKey     string       `json:"client_key"`
	Amount        money.Amount `json:"amount"`
	OrderID       string       `json:"order_id"`
	OrderName     string       `json:"order_name"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	SuccessURL    string       `json:"success_url"`
	FailURL       string       `json:"fail_url"`
}

type TossConfirmRequest struct {
	PaymentKey string `json:"payment_key"`
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
}

type PaymentConfirmation struct {
	OrderNumber string       `json:"order_number"`
	Status      string       `json:"status,omitempty"`
	Amount      money.Amount `json:"amount"`
}

// ----------------- Catalog -----------------

type ProductListParams struct {
	Page     int
	PerPage  int
	Category string
	Search   string
	Featured bool
}

package checkout

import (
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/validation"
)

const (
	msgOrdererIncomplete  = "주문자 정보를 모두 입력해주세요."
	msgShippingIncomplete = "배송지 정보를 모두 입력해주세요."
	msgEmptyCart          = "장바구니가 비어있습니다."
)

type Form struct {
	OrdererName           string `json:"orderer_name" validate:"required"`
	OrdererEmail          string `json:"orderer_email" validate:"required,email"`
	OrdererPhone          string `json:"orderer_phone" validate:"required"`
	SameAsOrderer         bool   `json:"same_as_orderer"`
	ShippingName          string `json:"shipping_name" validate:"required"`
	ShippingPhone         string `json:"shipping_phone" validate:"required"`
	ShippingZipcode       string `json:"shipping_zipcode" validate:"required"`
	ShippingAddress       string `json:"shipping_address" validate:"required"`
	ShippingAddressDetail string `json:"shipping_address_detail,omitempty"`
	ShippingMemo          string `json:"shipping_memo,omitempty" validate:"max=200"`
}

var formMessages = validation.Messages{
	"orderer_name":           "주문자 이름을 입력해주세요.",
	"orderer_email.required": "주문자 이메일을 입력해주세요.",
	"orderer_email.email":    "올바른 이메일 형식이 아닙니다.",
	"orderer_phone":          "주문자 연락처를 입력해주세요.",
	"shipping_name":          "받는 분 이름을 입력해주세요.",
	"shipping_phone":         "받는 분 연락처를 입력해주세요.",
	"shipping_zipcode":       "우편번호를 입력해주세요.",
	"shipping_address":       "주소를 입력해주세요.",
	"shipping_memo":          "배송 메모는 200자 이내로 입력해주세요.",
}

// Normalize trims every field and copies the orderer's name and phone into
// the shipping fields when SameAsOrderer is set.
func (f Form) Normalize() Form {
	for _, s := range []*string{
		&f.OrdererName, &f.OrdererEmail, &f.OrdererPhone,
		&f.ShippingName, &f.ShippingPhone, &f.ShippingZipcode,
		&f.ShippingAddress, &f.ShippingAddressDetail, &f.ShippingMemo,
	} {
		*s = strings.TrimSpace(*s)
	}
	if f.SameAsOrderer {
		f.ShippingName = f.OrdererName
		f.ShippingPhone = f.OrdererPhone
	}
	return f
}

// Validate returns nil for a complete form, or Invalid carrying one message
// per failing field.
func (f Form) Validate() *Invalid {
	fields := validation.Struct(f, formMessages)
	if len(fields) == 0 {
		return nil
	}

	msg := msgShippingIncomplete
	for field := range fields {
		if strings.HasPrefix(field, "orderer_") {
			msg = msgOrdererIncomplete
			break
		}
	}
	return &Invalid{Message: msg, Fields: fields}
}

func (f Form) request() backend.CreateOrderRequest {
	return backend.CreateOrderRequest{
		OrdererName:           f.OrdererName,
		OrdererEmail:          f.OrdererEmail,
		OrdererPhone:          f.OrdererPhone,
		ShippingName:          f.ShippingName,
		ShippingPhone:         f.ShippingPhone,
		ShippingZipcode:       f.ShippingZipcode,
		ShippingAddress:       f.ShippingAddress,
		ShippingAddressDetail: f.ShippingAddressDetail,
		ShippingMemo:          f.ShippingMemo,
	}
}

// Prefill fills empty orderer fields (and shipping when SameAsOrderer) from
// the signed-in member.
func (f Form) Prefill(u *backend.User) Form {
	if u == nil {
		return f
	}
	if f.OrdererName == "" {
		f.OrdererName = u.Name
	}
	if f.OrdererEmail == "" {
		f.OrdererEmail = u.Email
	}
	if f.OrdererPhone == "" {
		f.OrdererPhone = u.Phone
	}
	return f
}

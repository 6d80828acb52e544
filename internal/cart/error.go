package cart

import "errors"

var (
	// -- Guards (checked before any backend call) --
	ErrSelectOptions   = errors.New("상품 옵션을 선택해주세요.")
	ErrOutOfStock      = errors.New("품절된 상품입니다")
	ErrInvalidQuantity = errors.New("수량은 1개 이상이어야 합니다.")
	ErrInvalidItem     = errors.New("invalid cart item")
)

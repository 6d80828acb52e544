package order

import "errors"

var ErrNotCancellable = errors.New("이미 처리된 주문은 취소할 수 없습니다.")

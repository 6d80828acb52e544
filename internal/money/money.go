// Package money holds the won-denominated amount type shared by the backend
// wire types and the pricing logic.
package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an integer amount of won. The backend sends prices either as JSON
// numbers or as decimal strings ("12000.00"); both decode to the rounded won value.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*a = 0
			return nil
		}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", raw, err)
	}
	*a = Amount(d.Round(0).IntPart())
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(a))
}

// Format renders the amount the way the storefront shows prices: "12,000원".
func (a Amount) Format() string {
	n := int64(a)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString("원")
	return b.String()
}

// DiscountPercent returns round((compare-price)/compare*100), or nil when there
// is no compare price above the selling price.
func DiscountPercent(price Amount, compare *Amount) *int {
	if compare == nil || *compare <= price || *compare <= 0 {
		return nil
	}

	diff := decimal.NewFromInt(int64(*compare - price))
	pct := diff.Div(decimal.NewFromInt(int64(*compare))).
		Mul(decimal.NewFromInt(100)).
		Round(0)

	v := int(pct.IntPart())
	return &v
}

// Ptr is a convenience for optional amounts.
func Ptr(v int64) *Amount {
	a := Amount(v)
	return &a
}

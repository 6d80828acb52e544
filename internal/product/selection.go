package product

import (
	"errors"
	"fmt"
)

const (
	LabelAddToCart     = "장바구니 담기"
	LabelSoldOut       = "품절된 상품입니다"
	LabelSelectOptions = "옵션을 선택해주세요"
)

// Selection is the option and quantity state for one product view. It starts
// at the first value of every axis with quantity 1.
type Selection struct {
	product  *Product
	selected Selected
	quantity int
}

func NewSelection(p *Product) *Selection {
	s := &Selection{product: p, selected: Selected{}, quantity: 1}
	for _, a := range p.Options {
		if len(a.Values) > 0 {
			s.selected[a.Name] = a.Values[0]
		}
	}
	return s
}

// SelectionFrom applies the given choices on top of the defaults and then the
// requested quantity.
func SelectionFrom(p *Product, choices Selected, quantity int) (*Selection, error) {
	s := NewSelection(p)
	for axis, value := range choices {
		if err := s.Select(axis, value); err != nil {
			return nil, err
		}
	}
	if quantity > 0 {
		s.SetQuantity(quantity)
	}
	return s, nil
}

func (s *Selection) Product() *Product { return s.product }

func (s *Selection) Selected() Selected { return s.selected.clone() }

func (s *Selection) Quantity() int { return s.quantity }

// Select changes one axis. Quantity always goes back to 1.
func (s *Selection) Select(axis, value string) error {
	a, ok := s.product.Axis(axis)
	if !ok {
		return fmt.Errorf("%w: axis %q", ErrUnknownOption, axis)
	}
	if !a.Has(value) {
		return fmt.Errorf("%w: %q on axis %q", ErrUnknownOption, value, axis)
	}
	s.selected[axis] = value
	s.quantity = 1
	return nil
}

// SetQuantity clamps n to the bounds of the current resolution and returns
// the stored value.
func (s *Selection) SetQuantity(n int) int {
	bounds := Resolve(s.product, s.variant()).Quantity
	s.quantity = bounds.Clamp(n)
	return s.quantity
}

// Variant returns the matched variant, or the match error for option
// products. Simple products resolve to (nil, nil).
func (s *Selection) Variant() (*Variant, error) {
	if !s.product.HasOptions {
		return nil, nil
	}
	return MatchVariant(s.product, s.selected)
}

func (s *Selection) variant() *Variant {
	v, _ := s.Variant()
	return v
}

type View struct {
	Display
	Selected     Selected                   `json:"selected"`
	Variant      *Variant                   `json:"variant,omitempty"`
	MatchError   string                     `json:"match_error,omitempty"`
	Availability map[string]map[string]bool `json:"availability,omitempty"`
	Quantity     int                        `json:"selected_quantity"`
	CanAddToCart bool                       `json:"can_add_to_cart"`
	ButtonLabel  string                     `json:"button_label"`
}

func (s *Selection) Resolve() View {
	v, err := s.Variant()

	view := View{
		Display:      Resolve(s.product, v),
		Selected:     s.Selected(),
		Variant:      v,
		Availability: Availability(s.product),
		Quantity:     s.quantity,
	}
	if err != nil {
		view.MatchError = matchReason(err)
	}

	// A complete selection with no active variant reads as sold out.
	switch {
	case errors.Is(err, ErrIncompleteSelection):
		view.ButtonLabel = LabelSelectOptions
	case !view.IsInStock:
		view.ButtonLabel = LabelSoldOut
	case s.product.HasOptions && v == nil:
		view.ButtonLabel = LabelSelectOptions
	default:
		view.ButtonLabel = LabelAddToCart
		view.CanAddToCart = true
	}
	return view
}

func matchReason(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteSelection):
		return "incomplete"
	case errors.Is(err, ErrAmbiguousVariant):
		return "ambiguous"
	default:
		return "no_match"
	}
}

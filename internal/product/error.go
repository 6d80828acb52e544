package product

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVariant      = errors.New("invalid variant option assignment")
	ErrUnsupportedSchema   = errors.New("unsupported product schema")
	ErrIncompleteSelection = errors.New("selection does not cover every option axis")
	ErrNoVariantMatch      = errors.New("no active variant matches the selection")
	ErrAmbiguousVariant    = errors.New("more than one active variant matches the selection")
	ErrUnknownOption       = errors.New("unknown option")
)

func invalidVariant(p *Product, v *Variant, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	if v == nil {
		return fmt.Errorf("%w: product %d: %s", ErrInvalidVariant, p.ID, detail)
	}
	return fmt.Errorf("%w: product %d variant %d: %s", ErrInvalidVariant, p.ID, v.ID, detail)
}

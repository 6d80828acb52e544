package product

import "fmt"

// Selected maps axis name to the chosen value.
type Selected map[string]string

func (s Selected) clone() Selected {
	out := make(Selected, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// MatchVariant returns the single active variant whose option values equal
// selected on every axis. It never picks among several matches.
func MatchVariant(p *Product, selected Selected) (*Variant, error) {
	for _, a := range p.Options {
		if _, ok := selected[a.Name]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrIncompleteSelection, a.Name)
		}
	}

	var match *Variant
	for i := range p.Variants {
		v := &p.Variants[i]
		if !v.IsActive || !v.matches(selected) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: variants %d and %d", ErrAmbiguousVariant, match.ID, v.ID)
		}
		match = v
	}

	if match == nil {
		return nil, ErrNoVariantMatch
	}
	return match, nil
}

func (v *Variant) matches(selected Selected) bool {
	for axis, value := range selected {
		if v.OptionValues[axis] != value {
			return false
		}
	}
	return true
}

// IsOptionValueAvailable reports whether at least one active, in-stock
// variant carries value on axis. Products without variants have nothing to
// disable.
func IsOptionValueAvailable(p *Product, axis, value string) bool {
	if len(p.Variants) == 0 {
		return true
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.IsActive && v.InStock && v.OptionValues[axis] == value {
			return true
		}
	}
	return false
}

// Availability computes IsOptionValueAvailable for every declared value.
func Availability(p *Product) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(p.Options))
	for _, a := range p.Options {
		values := make(map[string]bool, len(a.Values))
		for _, v := range a.Values {
			values[v] = IsOptionValueAvailable(p, a.Name, v)
		}
		out[a.Name] = values
	}
	return out
}

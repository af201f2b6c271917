package furniture

import (
	"fmt"
	"strings"

	"furniture-lab/errors"
)

// Variant identifies one product family. The set is closed: concrete
// products carry no runtime tag, their variant is the factory that
// built them.
type Variant string

const (
	CLASSICAL Variant = "Classical"
	MODERN    Variant = "Modern"
)

var factories = map[Variant]FurnitureFactory{
	CLASSICAL: ClassicalFurniture{},
	MODERN:    ModernFurniture{},
}

// Variants returns the closed set in presentation order.
func Variants() []Variant {
	return []Variant{CLASSICAL, MODERN}
}

// ParseVariant is case-insensitive so CLI and env inputs like
// "classical" resolve to the canonical name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownVariant, s)
}

// FactoryFor resolves the concrete factory bound to a variant.
func FactoryFor(v Variant) (FurnitureFactory, error) {
	factory, ok := factories[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownVariant, v)
	}
	return factory, nil
}

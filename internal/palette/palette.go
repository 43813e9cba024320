package palette

import (
	"fmt"
	"strings"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

// Color is a single named palette entry. HSL holds hue in degrees and
// saturation/lightness as fractions in [0, 1].
type Color struct {
	Name string
	RGB  [3]uint8
	HSL  [3]float64
	Hex  string
}

// Flavor selects which palette variant a Provider resolves.
type Flavor int

const (
	Latte Flavor = iota
	Frappe
	Macchiato
	Mocha
)

// DefaultFlavor is used when the caller does not select one.
const DefaultFlavor = Macchiato

var flavorNames = [...]string{
	Latte:     "latte",
	Frappe:    "frappe",
	Macchiato: "macchiato",
	Mocha:     "mocha",
}

// Flavors returns every declared flavor in canonical order.
func Flavors() []Flavor {
	return []Flavor{Latte, Frappe, Macchiato, Mocha}
}

// FlavorNames returns the names of every declared flavor in canonical order.
func FlavorNames() []string {
	names := make([]string, len(flavorNames))
	copy(names, flavorNames[:])
	return names
}

func (f Flavor) String() string {
	if f < 0 || int(f) >= len(flavorNames) {
		return fmt.Sprintf("flavor(%d)", int(f))
	}
	return flavorNames[f]
}

// Valid reports whether f is a declared flavor.
func (f Flavor) Valid() bool {
	return f >= 0 && int(f) < len(flavorNames)
}

// ParseFlavor resolves a flavor by name, ignoring case and surrounding whitespace.
func ParseFlavor(name string) (Flavor, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range flavorNames {
		if candidate == normalized {
			return Flavor(i), nil
		}
	}
	return DefaultFlavor, paletteerrors.NewFlavorError(name, nil)
}

// Set implements pflag.Value so a Flavor can be bound directly to a flag.
func (f *Flavor) Set(value string) error {
	parsed, err := ParseFlavor(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Flavor) Type() string {
	return "flavor"
}

// Provider supplies the ordered colors of a flavor.
type Provider interface {
	Colors(flavor Flavor) ([]Color, error)
}

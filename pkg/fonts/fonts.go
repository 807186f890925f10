// Package fonts lists the font families installed on the rendering hosts and
// the naming the renderer expects for each weight.
package fonts

import (
	"fmt"
	"slices"
)

type Variant string

const (
	Regular Variant = "Regular"
	Bold    Variant = "Bold"
)

// Variants returns the full set of weights a font may declare.
func Variants() []Variant {
	return []Variant{Regular, Bold}
}

type Category string

const (
	SansSerif Category = "sans-serif"
	Serif     Category = "serif"
	Display   Category = "display"
	Monospace Category = "monospace"
)

type Font struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Family      string    `json:"family"`
	Variants    []Variant `json:"variants"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
}

var table = []Font{
	{
		ID:          "roboto",
		Name:        "Roboto",
		Family:      "Roboto",
		Variants:    []Variant{Regular, Bold},
		Category:    SansSerif,
		Description: "Neutral sans-serif, the default for captions",
	},
	{
		ID:          "lato",
		Name:        "Lato",
		Family:      "Lato",
		Variants:    []Variant{Regular},
		Category:    SansSerif,
		Description: "Rounded humanist sans-serif",
	},
	{
		ID:          "montserrat",
		Name:        "Montserrat",
		Family:      "Montserrat",
		Variants:    []Variant{Regular, Bold},
		Category:    SansSerif,
		Description: "Geometric sans-serif suited to titles",
	},
	{
		ID:          "open-sans",
		Name:        "Open Sans",
		Family:      "Open Sans",
		Variants:    []Variant{Regular, Bold},
		Category:    SansSerif,
		Description: "Highly legible body text",
	},
	{
		ID:          "bebas-neue",
		Name:        "Bebas Neue",
		Family:      "Bebas Neue",
		Variants:    []Variant{Regular},
		Category:    Display,
		Description: "Condensed all-caps headline face",
	},
	{
		ID:          "merriweather",
		Name:        "Merriweather",
		Family:      "Merriweather",
		Variants:    []Variant{Regular, Bold},
		Category:    Serif,
		Description: "Screen-friendly serif for quotes",
	},
	{
		ID:          "roboto-mono",
		Name:        "Roboto Mono",
		Family:      "Roboto Mono",
		Variants:    []Variant{Regular, Bold},
		Category:    Monospace,
		Description: "Monospace for code and counters",
	},
}

// All returns a copy of the font table.
func All() []Font {
	out := make([]Font, len(table))
	for i, f := range table {
		f.Variants = slices.Clone(f.Variants)
		out[i] = f
	}
	return out
}

// Lookup finds a font by ID.
func Lookup(id string) (Font, bool) {
	for _, f := range table {
		if f.ID == id {
			f.Variants = slices.Clone(f.Variants)
			return f, true
		}
	}
	return Font{}, false
}

// Format returns the font name the renderer expects, e.g. "Roboto Bold".
// Regular is the bare family name.
func Format(family string, variant Variant) string {
	if variant == Regular {
		return family
	}
	return family + " " + string(variant)
}

// IsAvailable reports whether family is installed with the given variant.
func IsAvailable(family string, variant Variant) bool {
	for _, f := range table {
		if f.Family == family {
			return slices.Contains(f.Variants, variant)
		}
	}
	return false
}

// Validate checks table invariants: unique IDs and a non-empty variant set
// drawn from Variants().
func Validate(fonts []Font) error {
	known := Variants()
	seen := make(map[string]bool, len(fonts))
	for _, f := range fonts {
		if seen[f.ID] {
			return fmt.Errorf("duplicate font id %q", f.ID)
		}
		seen[f.ID] = true

		if len(f.Variants) == 0 {
			return fmt.Errorf("font %q declares no variants", f.ID)
		}
		for _, v := range f.Variants {
			if !slices.Contains(known, v) {
				return fmt.Errorf("font %q declares unknown variant %q", f.ID, v)
			}
		}
	}
	return nil
}

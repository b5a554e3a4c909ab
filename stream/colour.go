package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an animatable LED colour.
type Colour struct {
	colorful.Color
}

// ParseColour parses a "#rrggbb" hex colour.
func ParseColour(hex string) (Colour, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return Colour{c}, nil
}

// Hcl creates a Colour from hue, chroma and luminance.
func Hcl(h, c, l float64) Colour {
	return Colour{colorful.Hcl(h, c, l)}
}

// Blend mixes toward another colour in HCL space, so hue travels round the
// colour wheel instead of through grey.
func (c Colour) Blend(to Colour, amount float64) Colour {
	return Colour{c.BlendHcl(to.Color, amount)}
}

package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/ledkey/keyframe"
)

// Pulse is a band of light on the strip, the value the show animates.
type Pulse struct {
	Position   keyframe.Scalar // centre of the band, in pixels
	Width      keyframe.Scalar // width of the band, in pixels
	Brightness keyframe.Scalar // 0 shows only the background, 1 the full band; eased when rendered
	Colour     Colour
}

var (
	PositionField = keyframe.NewField("position",
		func(p Pulse) keyframe.Scalar { return p.Position },
		func(p Pulse, v keyframe.Scalar) Pulse { p.Position = v; return p })
	WidthField = keyframe.NewField("width",
		func(p Pulse) keyframe.Scalar { return p.Width },
		func(p Pulse, v keyframe.Scalar) Pulse { p.Width = v; return p })
	BrightnessField = keyframe.NewField("brightness",
		func(p Pulse) keyframe.Scalar { return p.Brightness },
		func(p Pulse, v keyframe.Scalar) Pulse { p.Brightness = v; return p })
	ColourField = keyframe.NewField("colour",
		func(p Pulse) Colour { return p.Colour },
		func(p Pulse, v Colour) Pulse { p.Colour = v; return p })
)

// Render draws the pulse over a background colour.
func (p Pulse) Render(background Colour) *Frame {
	back := NewSolidFrame(background.Color)
	band := NewSolidFrame(background.Color)

	half := float64(p.Width) / 2
	start := int(math.Ceil(float64(p.Position) - half))
	end := int(math.Floor(float64(p.Position) + half))
	if start < 0 {
		start = 0
	}
	if end > numPixels-1 {
		end = numPixels - 1
	}
	for i := start; i <= end; i++ {
		band.pixels[i] = p.Colour.Color
	}

	// LEDs look much brighter than their duty cycle at the low end, so the
	// mix follows a quadratic curve.
	brightness := math.Max(0, math.Min(1, float64(p.Brightness)))
	return back.InterpolateFrame(band, ease.InQuad(brightness))
}

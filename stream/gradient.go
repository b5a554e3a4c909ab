package stream

import (
	"github.com/matt-g-everett/ledkey/keyframe"
)

// GradientTable stores hue stops at positions between 0 and 1.
type GradientTable []GradientStop

// Keyframes turns the gradient into colour keyframes spread over duration
// seconds. The first stop is snapped to and held until its position, every
// later stop is reached linearly across the gap from the stop before it.
func (g GradientTable) Keyframes(duration, chroma, luminance float64) []keyframe.Keyframe[Colour] {
	keyframes := make([]keyframe.Keyframe[Colour], 0, len(g))
	for i, stop := range g {
		c := Hcl(stop.Hue, chroma, luminance)
		if i == 0 {
			keyframes = append(keyframes, keyframe.Move(c, stop.Pos*duration))
			continue
		}

		// Stops that go backwards just jump.
		span := (stop.Pos - g[i-1].Pos) * duration
		keyframes = append(keyframes, keyframe.Linear(c, span))
	}

	return keyframes
}

package stream

import (
	"github.com/matt-g-everett/ledkey/keyframe"
)

// NewShow builds the shake show for the given trigger count. The band swings
// out one way, across to the other side and back to the centre, fading in at
// the start and out at the end while its colour runs through the gradient.
// Each trigger swaps the direction of the first swing.
func NewShow(cfg ShowConfig, shakes int) keyframe.Timeline[Pulse] {
	direction := 1.0
	if shakes%2 == 0 {
		direction = -1.0
	}

	centre := keyframe.Scalar(cfg.Centre)
	out := keyframe.Scalar(cfg.Centre + direction*cfg.Amplitude)
	back := keyframe.Scalar(cfg.Centre - direction*cfg.Amplitude)
	total := 4 * cfg.Swing

	gradient := GradientTable(cfg.Gradient)
	initial := Pulse{
		Position:   centre,
		Width:      keyframe.Scalar(cfg.Width),
		Brightness: 0,
		Colour:     Hcl(0, cfg.Chroma, cfg.Luminance),
	}
	if len(gradient) > 0 {
		initial.Colour = Hcl(gradient[0].Hue, cfg.Chroma, cfg.Luminance)
	}

	return keyframe.New[Pulse](initial,
		keyframe.NewTrack(PositionField,
			keyframe.Linear(out, cfg.Swing),
			keyframe.Linear(back, 2*cfg.Swing),
			keyframe.Linear(centre, cfg.Swing),
		),
		keyframe.NewTrack(WidthField,
			keyframe.Linear(keyframe.Scalar(cfg.Width*1.5), total/2),
			keyframe.Linear(keyframe.Scalar(cfg.Width), total/2),
		),
		keyframe.NewTrack(BrightnessField,
			keyframe.Linear(keyframe.Scalar(1), cfg.Fade),
			keyframe.Move(keyframe.Scalar(1), total-2*cfg.Fade),
			keyframe.Linear(keyframe.Scalar(0), cfg.Fade),
		),
		keyframe.NewTrack(ColourField, gradient.Keyframes(total, cfg.Chroma, cfg.Luminance)...),
	)
}

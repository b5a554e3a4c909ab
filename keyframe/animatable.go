package keyframe

import "math"

// Animatable is implemented by any value a Track can drive. Blend moves the
// receiver toward to by amount: 0 gives the receiver, 1 gives to, and values
// outside that range extrapolate.
type Animatable[V any] interface {
	Blend(to V, amount float64) V
}

// Scalar is a plain animatable number.
type Scalar float64

// Blend linearly interpolates between two scalars.
func (s Scalar) Blend(to Scalar, amount float64) Scalar {
	return s + (to-s)*Scalar(amount)
}

// Angle is a rotation in degrees.
type Angle float64

// Degrees creates an Angle from degrees.
func Degrees(d float64) Angle {
	return Angle(d)
}

// Radians creates an Angle from radians.
func Radians(r float64) Angle {
	return Angle(r * 180.0 / math.Pi)
}

func (a Angle) Degrees() float64 {
	return float64(a)
}

func (a Angle) Radians() float64 {
	return float64(a) * math.Pi / 180.0
}

// Blend interpolates the raw degree value, so 350 to 10 travels the long way round.
func (a Angle) Blend(to Angle, amount float64) Angle {
	return a + (to-a)*Angle(amount)
}

// Vector is a flat list of components blended pairwise. A component missing
// from the shorter side counts as zero.
type Vector []float64

// Blend interpolates each component and returns a new Vector.
func (v Vector) Blend(to Vector, amount float64) Vector {
	n := len(v)
	if len(to) > n {
		n = len(to)
	}

	out := make(Vector, n)
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(v) {
			a = v[i]
		}
		if i < len(to) {
			b = to[i]
		}
		out[i] = a + (b-a)*amount
	}

	return out
}

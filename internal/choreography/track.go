package choreography

import "github.com/golang/geo/r1"

// Keyframe pins a parameter value at a progress breakpoint.
type Keyframe struct {
	At    float64
	Value float64
}

// Track is a piecewise-linear parameter curve over ordered keyframes.
type Track []Keyframe

// Eval returns the track value at progress p. Between two keyframes the local
// fraction is passed through ease before interpolating; outside the keyframe
// range the nearest endpoint value is returned.
func (t Track) Eval(p float64, ease Easing) float64 {
	n := len(t)
	if n == 0 {
		return 0
	}
	if p <= t[0].At {
		return t[0].Value
	}
	if p >= t[n-1].At {
		return t[n-1].Value
	}

	for k := 0; k < n-1; k++ {
		a, b := t[k], t[k+1]
		if p >= b.At {
			continue
		}
		span := r1.Interval{Lo: a.At, Hi: b.At}
		if span.Length() <= 0 {
			return b.Value
		}
		f := (span.ClampPoint(p) - span.Lo) / span.Length()
		if ease != nil {
			f = ease(f)
		}
		return lerp(a.Value, b.Value, f)
	}
	return t[n-1].Value
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

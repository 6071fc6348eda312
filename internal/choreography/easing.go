package choreography

import (
	"fmt"
	"math"
	"sort"
)

// Easing maps a local fraction in [0,1] onto [0,1] with Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float64) float64

// Easing names accepted in configuration.
const (
	EaseLinear         = "linear"
	EaseInOutCubic     = "ease-in-out-cubic"
	EasePower2InOut    = "power2-in-out"
	EaseSmoothstep     = "smoothstep"
	EaseSpring         = "spring"
	defaultSpringOmega = 8.0
)

var easings = map[string]Easing{
	EaseLinear:      Linear,
	EaseInOutCubic:  InOutCubic,
	EasePower2InOut: Power2InOut,
	EaseSmoothstep:  Smoothstep,
	EaseSpring:      Spring(defaultSpringOmega),
}

// LookupEasing resolves a configured easing name.
func LookupEasing(name string) (Easing, error) {
	if name == "" {
		return Linear, nil
	}
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q (valid: %v)", ErrInvalidConfig, name, EasingNames())
	}
	return e, nil
}

// EasingNames lists the accepted easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// InOutCubic accelerates through the first half and decelerates through the second.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Power2InOut is the quadratic in-out curve.
func Power2InOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Smoothstep is the cubic Hermite 3t²-2t³.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Spring returns the step response of a critically damped spring with angular
// frequency omega, rescaled so the curve lands exactly on 1 at t = 1.
func Spring(omega float64) Easing {
	response := func(t float64) float64 {
		return 1 - (1+omega*t)*math.Exp(-omega*t)
	}
	end := response(1)
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return response(t) / end
	}
}

package choreography

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidConfig is returned for configurations the choreographer cannot honour.
var ErrInvalidConfig = errors.New("invalid choreography config")

// Pulse curve names for the navigation indicator.
const (
	PulseSine     = "sine"
	PulseParabola = "parabola"
)

// DefaultFocalEpsilon is the distance from a focal point inside which a
// section is reported exactly at rest.
const DefaultFocalEpsilon = 1e-9

// ParameterVector is the set of visual attributes applied to one section.
type ParameterVector struct {
	Opacity    float64 `json:"opacity" yaml:"opacity"`
	Scale      float64 `json:"scale" yaml:"scale"`
	BlurPx     float64 `json:"blurPx" yaml:"blur_px"`
	DepthZ     float64 `json:"depthZ" yaml:"depth_z"`
	TranslateY float64 `json:"translateY" yaml:"translate_y"`
}

// Rest is the vector of a section sitting on its focal point.
var Rest = ParameterVector{Opacity: 1, Scale: 1}

func (v ParameterVector) finite() bool {
	for _, f := range []float64{v.Opacity, v.Scale, v.BlurPx, v.DepthZ, v.TranslateY} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Config parametrizes the choreographer. The rest pose is fixed to Rest;
// Entering is the pose before a section's enter window, Exited the pose after
// its exit window.
type Config struct {
	Name           string          `json:"name" yaml:"name"`
	StableFraction float64         `json:"stableFraction" yaml:"stable_fraction"` // [0,1)
	Easing         string          `json:"easing" yaml:"easing"`
	Entering       ParameterVector `json:"entering" yaml:"entering"`
	Exited         ParameterVector `json:"exited" yaml:"exited"`

	// Navigation indicator
	UnitSpacing  float64 `json:"unitSpacing" yaml:"unit_spacing"`   // Distance between nav entries
	MaxThickness float64 `json:"maxThickness" yaml:"max_thickness"` // Peak emphasis between focal points
	Pulse        string  `json:"pulse" yaml:"pulse"`

	FocalEpsilon float64 `json:"focalEpsilon" yaml:"focal_epsilon"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if math.IsNaN(c.StableFraction) || c.StableFraction < 0 || c.StableFraction >= 1 {
		return fmt.Errorf("%w: stable fraction %v outside [0,1)", ErrInvalidConfig, c.StableFraction)
	}
	if _, err := LookupEasing(c.Easing); err != nil {
		return err
	}
	if _, err := lookupPulse(c.Pulse); err != nil {
		return err
	}
	if !c.Entering.finite() || !c.Exited.finite() {
		return fmt.Errorf("%w: poses must be finite", ErrInvalidConfig)
	}
	for _, o := range []float64{c.Entering.Opacity, c.Exited.Opacity} {
		if o < 0 || o > 1 {
			return fmt.Errorf("%w: opacity %v outside [0,1]", ErrInvalidConfig, o)
		}
	}
	if c.Entering.BlurPx < 0 || c.Exited.BlurPx < 0 {
		return fmt.Errorf("%w: blur must not be negative", ErrInvalidConfig)
	}
	if math.IsNaN(c.UnitSpacing) || math.IsInf(c.UnitSpacing, 0) || c.UnitSpacing < 0 {
		return fmt.Errorf("%w: unit spacing %v", ErrInvalidConfig, c.UnitSpacing)
	}
	if math.IsNaN(c.MaxThickness) || math.IsInf(c.MaxThickness, 0) || c.MaxThickness < 1 {
		return fmt.Errorf("%w: max thickness %v below 1", ErrInvalidConfig, c.MaxThickness)
	}
	if math.IsNaN(c.FocalEpsilon) || c.FocalEpsilon < 0 {
		return fmt.Errorf("%w: focal epsilon %v", ErrInvalidConfig, c.FocalEpsilon)
	}
	return nil
}

// Preset names
const (
	PresetHero      = "hero"
	PresetSoftFade  = "soft-fade"
	PresetDepthBlur = "depth-blur"
)

var presets = map[string]Config{
	// Crossfade through depth: outgoing plane shrinks and recedes, incoming
	// plane settles from slightly oversized and in front.
	PresetHero: {
		Name:           PresetHero,
		StableFraction: 0.6,
		Easing:         EasePower2InOut,
		Entering:       ParameterVector{Opacity: 0, Scale: 1.12, DepthZ: 0.3, TranslateY: 30},
		Exited:         ParameterVector{Opacity: 0, Scale: 0.92, DepthZ: -0.3, TranslateY: -30},
		UnitSpacing:    4,
		MaxThickness:   1.6,
		Pulse:          PulseSine,
		FocalEpsilon:   DefaultFocalEpsilon,
	},
	PresetSoftFade: {
		Name:           PresetSoftFade,
		StableFraction: 0.6,
		Easing:         EaseInOutCubic,
		Entering:       ParameterVector{Opacity: 0, Scale: 1, TranslateY: 30},
		Exited:         ParameterVector{Opacity: 0, Scale: 1, TranslateY: -30},
		UnitSpacing:    4,
		MaxThickness:   1.6,
		Pulse:          PulseSine,
		FocalEpsilon:   DefaultFocalEpsilon,
	},
	PresetDepthBlur: {
		Name:           PresetDepthBlur,
		StableFraction: 0.4,
		Easing:         EaseSmoothstep,
		Entering:       ParameterVector{Opacity: 0, Scale: 1.2, BlurPx: 16, DepthZ: 0.5},
		Exited:         ParameterVector{Opacity: 0, Scale: 0.85, BlurPx: 16, DepthZ: -0.5},
		UnitSpacing:    4,
		MaxThickness:   1.4,
		Pulse:          PulseParabola,
		FocalEpsilon:   DefaultFocalEpsilon,
	},
}

// Preset returns a named preset.
func Preset(name string) (Config, bool) {
	c, ok := presets[name]
	return c, ok
}

// DefaultConfig returns the hero preset.
func DefaultConfig() Config {
	return presets[PresetHero]
}

// PresetNames lists preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type pulseFunc func(f float64) float64

func lookupPulse(name string) (pulseFunc, error) {
	switch name {
	case "", PulseSine:
		return func(f float64) float64 { return math.Sin(f * math.Pi) }, nil
	case PulseParabola:
		return func(f float64) float64 { return 4 * f * (1 - f) }, nil
	}
	return nil, fmt.Errorf("%w: unknown pulse %q", ErrInvalidConfig, name)
}

// Package choreography maps a scroll progress signal onto per-section visual
// parameters and a navigation indicator.
//
// Everything here is a pure function of (progress, count, section index) and
// an immutable Config. Callers own the progress value; recomputing on every
// scroll tick is cheap and stale ticks may be dropped.
package choreography

import (
	"fmt"
	"math"

	"github.com/powerfrill/showcase-backend-go/internal/models"
)

// Choreographer evaluates a Config. It is immutable and safe for concurrent use.
type Choreographer struct {
	cfg   Config
	ease  Easing
	pulse pulseFunc
}

// IndicatorState positions the navigation indicator.
type IndicatorState struct {
	Position  float64 `json:"position"`  // Offset along the nav line, 0..Travel
	Travel    float64 `json:"travel"`    // (count-1) * UnitSpacing
	Thickness float64 `json:"thickness"` // 1 on a focal point, MaxThickness halfway between two
}

// SectionFrame is one section's output for a frame.
type SectionFrame struct {
	ID     string          `json:"id"`
	Order  int             `json:"order"`
	Params ParameterVector `json:"params"`
}

// Frame is the full output for one progress sample.
type Frame struct {
	Progress    float64        `json:"progress"`
	ActiveIndex int            `json:"activeIndex"`
	ActiveID    string         `json:"activeId"`
	Indicator   IndicatorState `json:"indicator"`
	Sections    []SectionFrame `json:"sections"`
}

// New validates cfg and returns a choreographer for it.
func New(cfg Config) (*Choreographer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ease, err := LookupEasing(cfg.Easing)
	if err != nil {
		return nil, err
	}
	pulse, err := lookupPulse(cfg.Pulse)
	if err != nil {
		return nil, err
	}
	return &Choreographer{cfg: cfg, ease: ease, pulse: pulse}, nil
}

// MustNew is New for configurations known to be valid, such as presets.
func MustNew(cfg Config) *Choreographer {
	c, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("choreography: %v", err))
	}
	return c
}

// Config returns the configuration the choreographer was built with.
func (c *Choreographer) Config() Config {
	return c.cfg
}

// Parameters returns the visual parameters of section i at progress among
// count sections. Progress is clamped to [0,1] and i to [0,count).
func (c *Choreographer) Parameters(i int, progress float64, count int) ParameterVector {
	if count <= 1 {
		return Rest
	}
	if i < 0 {
		i = 0
	}
	if i > count-1 {
		i = count - 1
	}

	p := ClampProgress(progress)
	win := SectionWindows(i, count, c.cfg.StableFraction)
	if math.Abs(p-win.Focal) <= c.cfg.FocalEpsilon {
		return Rest
	}

	var keys [4]struct {
		at   float64
		pose ParameterVector
	}
	n := 0
	if win.HasEnter {
		keys[n].at, keys[n].pose = win.Enter.Lo, c.cfg.Entering
		n++
		keys[n].at, keys[n].pose = win.Enter.Hi, Rest
		n++
	}
	if win.HasExit {
		keys[n].at, keys[n].pose = win.Exit.Lo, Rest
		n++
		keys[n].at, keys[n].pose = win.Exit.Hi, c.cfg.Exited
		n++
	}

	track := func(field func(ParameterVector) float64) float64 {
		t := make(Track, n)
		for k := 0; k < n; k++ {
			t[k] = Keyframe{At: keys[k].at, Value: field(keys[k].pose)}
		}
		return t.Eval(p, c.ease)
	}

	return ParameterVector{
		Opacity:    track(func(v ParameterVector) float64 { return v.Opacity }),
		Scale:      track(func(v ParameterVector) float64 { return v.Scale }),
		BlurPx:     track(func(v ParameterVector) float64 { return v.BlurPx }),
		DepthZ:     track(func(v ParameterVector) float64 { return v.DepthZ }),
		TranslateY: track(func(v ParameterVector) float64 { return v.TranslateY }),
	}
}

// Indicator returns the navigation indicator state at progress.
func (c *Choreographer) Indicator(progress float64, count int) IndicatorState {
	if count <= 1 {
		return IndicatorState{Thickness: 1}
	}

	p := ClampProgress(progress)
	steps := float64(count - 1)
	travel := steps * c.cfg.UnitSpacing

	x := p * steps
	frac := x - math.Floor(x)
	// Land exactly on a focal point despite rounding in p*steps
	if r := math.Round(x); math.Abs(x-r) <= c.cfg.FocalEpsilon*steps {
		frac = 0
	}

	return IndicatorState{
		Position:  p * travel,
		Travel:    travel,
		Thickness: 1 + (c.cfg.MaxThickness-1)*c.pulse(frac),
	}
}

// ActiveIndex returns the discrete active section index.
func (c *Choreographer) ActiveIndex(progress float64, count int) int {
	return ActiveIndex(progress, count)
}

// Frame evaluates every section of a sequence at progress.
func (c *Choreographer) Frame(sections []models.Section, progress float64) Frame {
	count := len(sections)
	p := ClampProgress(progress)

	f := Frame{
		Progress:  p,
		Indicator: c.Indicator(p, count),
		Sections:  make([]SectionFrame, count),
	}
	if count == 0 {
		return f
	}

	f.ActiveIndex = ActiveIndex(p, count)
	f.ActiveID = sections[f.ActiveIndex].ID
	for i, s := range sections {
		f.Sections[i] = SectionFrame{
			ID:     s.ID,
			Order:  s.Order,
			Params: c.Parameters(i, p, count),
		}
	}
	return f
}

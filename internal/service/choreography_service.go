package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/choreography"
	"github.com/powerfrill/showcase-backend-go/internal/models"
)

// Lookup failures reported to the HTTP layer
var (
	ErrUnknownSequence = errors.New("unknown sequence")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrInvalidRange    = errors.New("invalid scroll range")
)

// ChoreographyService evaluates frames for catalog sequences.
// Choreographers are built once at startup; the service is read-only afterwards.
type ChoreographyService struct {
	index    *catalog.Index
	def      *choreography.Choreographer
	byPreset map[string]*choreography.Choreographer
}

// NewChoreographyService creates a service whose default choreographer uses cfg
func NewChoreographyService(index *catalog.Index, cfg choreography.Config) (*ChoreographyService, error) {
	def, err := choreography.New(cfg)
	if err != nil {
		return nil, err
	}

	byPreset := make(map[string]*choreography.Choreographer)
	for _, name := range choreography.PresetNames() {
		p, _ := choreography.Preset(name)
		c, err := choreography.New(p)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		byPreset[name] = c
	}

	return &ChoreographyService{index: index, def: def, byPreset: byPreset}, nil
}

// Presets lists the built-in presets
func (s *ChoreographyService) Presets() []choreography.Config {
	out := make([]choreography.Config, 0, len(s.byPreset))
	for _, name := range choreography.PresetNames() {
		out = append(out, s.byPreset[name].Config())
	}
	return out
}

// Default returns the configured choreography
func (s *ChoreographyService) Default() choreography.Config {
	return s.def.Config()
}

func (s *ChoreographyService) choreographer(preset string) (*choreography.Choreographer, error) {
	if preset == "" {
		return s.def, nil
	}
	c, ok := s.byPreset[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, preset)
	}
	return c, nil
}

func (s *ChoreographyService) sequence(name string) (models.Sequence, error) {
	if name == "" {
		name = catalog.HeroSequence
	}
	seq, ok := s.index.Sequence(name)
	if !ok {
		return models.Sequence{}, fmt.Errorf("%w: %s", ErrUnknownSequence, name)
	}
	return seq, nil
}

// GetFrame evaluates a frame for the filter's sequence and progress
func (s *ChoreographyService) GetFrame(filter models.FrameFilter) (choreography.Frame, error) {
	seq, err := s.sequence(filter.Sequence)
	if err != nil {
		return choreography.Frame{}, err
	}
	c, err := s.choreographer(filter.Preset)
	if err != nil {
		return choreography.Frame{}, err
	}

	var progress float64
	switch {
	case filter.HasScroll():
		progress = choreography.ProgressFromScroll(*filter.ScrollTop, *filter.ScrollHeight, *filter.ClientHeight)
	case filter.Progress != nil:
		progress = *filter.Progress
	}
	if filter.Snap {
		progress = choreography.SnapProgress(progress, len(seq.Sections))
	}

	return c.Frame(seq.Sections, progress), nil
}

// ScrollTarget is the scroll destination of a nav click
type ScrollTarget struct {
	Sequence  string  `json:"sequence"`
	Index     int     `json:"index"`
	SectionID string  `json:"sectionId"`
	Offset    float64 `json:"offset"`
	Progress  float64 `json:"progress"`
}

// GetScrollTarget computes where to scroll so a section comes to rest
func (s *ChoreographyService) GetScrollTarget(filter models.ScrollTargetFilter) (ScrollTarget, error) {
	seq, err := s.sequence(filter.Sequence)
	if err != nil {
		return ScrollTarget{}, err
	}
	if !finite(filter.Start) || !finite(filter.End) {
		return ScrollTarget{}, fmt.Errorf("%w: start=%v end=%v", ErrInvalidRange, filter.Start, filter.End)
	}

	count := len(seq.Sections)
	idx := filter.Index
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}

	return ScrollTarget{
		Sequence:  seq.Name,
		Index:     idx,
		SectionID: seq.Sections[idx].ID,
		Offset:    choreography.ScrollTarget(filter.Start, filter.End, idx, count),
		Progress:  choreography.Focal(idx, count),
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

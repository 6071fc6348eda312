package choreography

import (
	"math"

	"github.com/golang/geo/r1"
)

// unit is the closed progress range every input is clamped into.
var unit = r1.Interval{Lo: 0, Hi: 1}

// ClampProgress clamps p into [0,1]. NaN maps to 0.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return unit.ClampPoint(p)
}

// ProgressFromScroll derives progress from a raw pixel scroll offset and the
// container extent: scrollTop / (scrollHeight - clientHeight), clamped.
// A container that cannot scroll reports 0.
func ProgressFromScroll(scrollTop, scrollHeight, clientHeight float64) float64 {
	extent := scrollHeight - clientHeight
	if !(extent > 0) || math.IsInf(extent, 0) {
		return 0
	}
	return ClampProgress(scrollTop / extent)
}

// Focal returns the progress at which section i is fully at rest.
func Focal(i, count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64(i) / float64(count-1)
}

// SegmentWidth is the progress distance between adjacent focal points.
func SegmentWidth(count int) float64 {
	if count <= 1 {
		return 0
	}
	return 1 / float64(count-1)
}

// ActiveIndex discretizes progress to the nearest section, rounding half up.
func ActiveIndex(progress float64, count int) int {
	if count <= 1 {
		return 0
	}
	steps := count - 1
	idx := int(math.Floor(ClampProgress(progress)*float64(steps) + 0.5))
	if idx > steps {
		idx = steps
	}
	return idx
}

// SnapProgress snaps progress to the focal point of the active section.
// This is the stepped, one-section-per-gesture scroll model.
func SnapProgress(progress float64, count int) float64 {
	return Focal(ActiveIndex(progress, count), count)
}

// ScrollTarget returns the scroll offset that brings section index to rest
// inside a pinned region spanning [start, end]. The result always lies
// between start and end; non-finite bounds yield 0.
func ScrollTarget(start, end float64, index, count int) float64 {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return 0
	}
	if count <= 1 {
		return start
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	// Weighted form so end-start cannot overflow
	f := Focal(index, count)
	return r1.IntervalFromPoint(start).AddPoint(end).ClampPoint(start*(1-f) + end*f)
}

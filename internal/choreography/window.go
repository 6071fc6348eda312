package choreography

import "github.com/golang/geo/r1"

// Windows holds the transition sub-ranges of one section.
//
//	enterStart < enterEnd <= focal <= exitStart < exitEnd
//
// Enter is where the section fades in from its neighbour, Exit where it hands
// over to the next one. The first section has no Enter, the last no Exit.
type Windows struct {
	Focal    float64
	Enter    r1.Interval
	Exit     r1.Interval
	HasEnter bool
	HasExit  bool
}

// Stable returns the range in which the section is fully at rest.
func (w Windows) Stable() r1.Interval {
	stable := unit
	if w.HasEnter {
		stable.Lo = w.Enter.Hi
	}
	if w.HasExit {
		stable.Hi = w.Exit.Lo
	}
	return stable
}

// SectionWindows computes the transition windows of section i among count
// sections. stable is the fraction of each segment during which a section
// stays at rest; the remainder is split evenly across the two neighbouring
// transitions.
func SectionWindows(i, count int, stable float64) Windows {
	w := Windows{Focal: Focal(i, count)}
	if count <= 1 {
		return w
	}

	seg := SegmentWidth(count)
	near := seg * stable / 2
	far := seg * (1 - stable/2)

	if i > 0 {
		w.HasEnter = true
		w.Enter = r1.Interval{Lo: w.Focal - far, Hi: w.Focal - near}
	}
	if i < count-1 {
		w.HasExit = true
		w.Exit = r1.Interval{Lo: w.Focal + near, Hi: w.Focal + far}
	}
	return w
}

package models

// FrameFilter represents query parameters for a choreography frame.
// Either Progress or the raw scroll triple (ScrollTop, ScrollHeight, ClientHeight) is used;
// the scroll triple wins when all three are present.
type FrameFilter struct {
	Sequence     string   `form:"sequence"` // hero, solution-<id>
	Progress     *float64 `form:"progress"` // 0-1, clamped
	ScrollTop    *float64 `form:"scrollTop"`
	ScrollHeight *float64 `form:"scrollHeight"`
	ClientHeight *float64 `form:"clientHeight"`
	Preset       string   `form:"preset"` // hero, soft-fade, depth-blur
	Snap         bool     `form:"snap"`   // Snap to the nearest focal point
}

// HasScroll reports whether the full scroll triple was supplied
func (f FrameFilter) HasScroll() bool {
	return f.ScrollTop != nil && f.ScrollHeight != nil && f.ClientHeight != nil
}

// ScrollTargetFilter represents query parameters for a nav-click scroll destination
type ScrollTargetFilter struct {
	Sequence string  `form:"sequence"`
	Index    int     `form:"index"`
	Start    float64 `form:"start"` // Scroll offset where the pinned sequence starts
	End      float64 `form:"end"`   // Scroll offset where it ends
}

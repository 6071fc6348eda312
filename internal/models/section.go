package models

// Section is one screen of content in a scrollable sequence.
// Sections of a sequence are order-dense: Order runs 0..n-1 without gaps.
type Section struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	MediaRef string `json:"mediaRef"`
}

// Sequence is a named, ordered list of sections fed to the choreographer
type Sequence struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

package models

// Feature is a headline figure shown on a product card (e.g. "Up to 22%" / "EFFICIENCY")
type Feature struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product represents a single catalog entry with its detail-page content
type Product struct {
	ID string `json:"id" db:"id"`

	// Placement
	Category     string   `json:"category" db:"category"`           // Badge label, e.g. SOLAR PANEL
	CategoryPath []string `json:"categoryPath" db:"category_path_json"` // [0] joins Category.Name
	SolutionID   string   `json:"solutionId" db:"solution_id"`

	// Presentation
	Title       string    `json:"title" db:"title"`
	Subtitle    string    `json:"subtitle" db:"subtitle"`
	ImageRef    string    `json:"imageRef" db:"image_ref"`
	Features    []Feature `json:"features" db:"features_json"`
	Description string    `json:"description" db:"description"`

	// Optional detail blocks
	Advantages   []string `json:"advantages,omitempty" db:"advantages_json"`
	Applications string   `json:"applications,omitempty" db:"applications"`
	ProTip       string   `json:"proTip,omitempty" db:"pro_tip"`
}

// CategoryName returns the first categoryPath element, the key used to join categories.
func (p Product) CategoryName() string {
	if len(p.CategoryPath) == 0 {
		return ""
	}
	return p.CategoryPath[0]
}

// Crumb is one breadcrumb entry of a product page
type Crumb struct {
	Label   string `json:"label"`
	Path    string `json:"path,omitempty"` // Empty for non-navigable crumbs
	Current bool   `json:"current"`
}

// ProductDetail is the product page payload
type ProductDetail struct {
	Product     Product `json:"product"`
	Breadcrumbs []Crumb `json:"breadcrumbs"`
}

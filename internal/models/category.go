package models

// Category groups products under a solution hub
type Category struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"` // Matched against Product.CategoryPath[0]
	ImageRef    string `json:"imageRef" db:"image_ref"`
	Description string `json:"description" db:"description"`
	SolutionID  string `json:"solutionId" db:"solution_id"`
}

// Solution is a top-level solution hub (solar, storage, batteries)
type Solution struct {
	ID           string `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	HeroImageRef string `json:"heroImageRef" db:"hero_image_ref"`
	Path         string `json:"path" db:"path"`
}

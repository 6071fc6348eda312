package catalog

import "github.com/powerfrill/showcase-backend-go/internal/models"

// Table is the static catalog as loaded at startup.
// Slices are kept in declaration order; queries preserve that order.
type Table struct {
	Products   []models.Product
	Categories []models.Category
	Solutions  []models.Solution
}

// Clone returns a deep copy so callers cannot mutate a table held by an Index.
func (t Table) Clone() Table {
	out := Table{
		Products:   make([]models.Product, len(t.Products)),
		Categories: append([]models.Category(nil), t.Categories...),
		Solutions:  append([]models.Solution(nil), t.Solutions...),
	}
	for i, p := range t.Products {
		out.Products[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p models.Product) models.Product {
	p.CategoryPath = append([]string(nil), p.CategoryPath...)
	p.Features = append([]models.Feature(nil), p.Features...)
	if p.Advantages != nil {
		p.Advantages = append([]string(nil), p.Advantages...)
	}
	return p
}

package catalog

import "github.com/powerfrill/showcase-backend-go/internal/models"

// Index answers lookup and filter queries over an immutable catalog table.
// Misses are reported as empty slices or ok == false, never as errors.
// An Index is safe for concurrent use.
type Index struct {
	table    Table
	products map[string]int
}

// NewIndex builds an index over a private copy of t.
// When ids repeat, the first declaration wins, matching a linear search.
func NewIndex(t Table) *Index {
	idx := &Index{
		table:    t.Clone(),
		products: make(map[string]int, len(t.Products)),
	}
	for i, p := range idx.table.Products {
		if _, dup := idx.products[p.ID]; !dup {
			idx.products[p.ID] = i
		}
	}
	return idx
}

// ProductByID returns the product with the given id.
func (x *Index) ProductByID(id string) (models.Product, bool) {
	i, ok := x.products[id]
	if !ok {
		return models.Product{}, false
	}
	return cloneProduct(x.table.Products[i]), true
}

// ProductsByCategoryID returns the products of a category in declaration order.
// Membership is decided by CategoryPath[0] == Category.Name.
func (x *Index) ProductsByCategoryID(categoryID string) []models.Product {
	out := []models.Product{}
	cat, ok := x.CategoryByID(categoryID)
	if !ok {
		return out
	}
	for _, p := range x.table.Products {
		if p.CategoryName() == cat.Name {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// CategoriesBySolutionID returns the categories of a solution hub in declaration order.
func (x *Index) CategoriesBySolutionID(solutionID string) []models.Category {
	out := []models.Category{}
	for _, c := range x.table.Categories {
		if c.SolutionID == solutionID {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByID returns the category with the given id.
func (x *Index) CategoryByID(id string) (models.Category, bool) {
	for _, c := range x.table.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// SolutionByID returns the solution hub with the given id.
func (x *Index) SolutionByID(id string) (models.Solution, bool) {
	for _, s := range x.table.Solutions {
		if s.ID == id {
			return s, true
		}
	}
	return models.Solution{}, false
}

// Products returns every product in declaration order.
func (x *Index) Products() []models.Product {
	out := make([]models.Product, len(x.table.Products))
	for i, p := range x.table.Products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Categories returns every category in declaration order.
func (x *Index) Categories() []models.Category {
	return append([]models.Category{}, x.table.Categories...)
}

// Solutions returns every solution hub in declaration order.
func (x *Index) Solutions() []models.Solution {
	return append([]models.Solution{}, x.table.Solutions...)
}

// Breadcrumbs returns Home › Products › categoryPath... for a product page.
// The last crumb is marked current.
func (x *Index) Breadcrumbs(productID string) ([]models.Crumb, bool) {
	p, ok := x.ProductByID(productID)
	if !ok {
		return nil, false
	}

	crumbs := []models.Crumb{
		{Label: "Home", Path: "/"},
		{Label: "Products", Path: "/products"},
	}
	for i, label := range p.CategoryPath {
		crumb := models.Crumb{Label: label}
		// The category segment links back to its listing when the join resolves
		if i == 0 {
			if cat, ok := x.categoryByName(label); ok {
				crumb.Path = "/category/" + cat.ID
			}
		}
		crumbs = append(crumbs, crumb)
	}
	crumbs[len(crumbs)-1].Current = true
	return crumbs, true
}

// OrphanProducts lists products whose CategoryPath[0] matches no category name.
func (x *Index) OrphanProducts() []models.Product {
	out := []models.Product{}
	for _, p := range x.table.Products {
		if _, ok := x.categoryByName(p.CategoryName()); !ok {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (x *Index) categoryByName(name string) (models.Category, bool) {
	for _, c := range x.table.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

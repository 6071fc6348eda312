package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/models"
	"github.com/powerfrill/showcase-backend-go/internal/repository"
)

// CatalogStore is the persistence the catalog can be loaded from
type CatalogStore interface {
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, t catalog.Table) error
	Load(ctx context.Context) (catalog.Table, error)
}

var _ CatalogStore = (*repository.CatalogRepository)(nil)

// LoadTable reads the catalog from store, seeding it with seed first when the store is empty
func LoadTable(ctx context.Context, store CatalogStore, seed catalog.Table, logger *zap.Logger) (catalog.Table, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return catalog.Table{}, err
	}
	if n == 0 {
		logger.Info("seeding empty catalog store", zap.Int("products", len(seed.Products)))
		if err := store.Seed(ctx, seed); err != nil {
			return catalog.Table{}, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	t, err := store.Load(ctx)
	if err != nil {
		return catalog.Table{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return t, nil
}

// CatalogService handles catalog queries for the HTTP layer
type CatalogService struct {
	index *catalog.Index
}

// NewCatalogService creates a new catalog service
func NewCatalogService(index *catalog.Index) *CatalogService {
	return &CatalogService{index: index}
}

// Index exposes the underlying catalog index
func (s *CatalogService) Index() *catalog.Index {
	return s.index
}

// GetSolutions lists solution hubs
func (s *CatalogService) GetSolutions() []models.Solution {
	return s.index.Solutions()
}

// GetSolution returns a solution hub
func (s *CatalogService) GetSolution(id string) (models.Solution, bool) {
	return s.index.SolutionByID(id)
}

// GetSolutionCategories lists a solution's categories, false when the solution is unknown
func (s *CatalogService) GetSolutionCategories(id string) ([]models.Category, bool) {
	if _, ok := s.index.SolutionByID(id); !ok {
		return nil, false
	}
	return s.index.CategoriesBySolutionID(id), true
}

// GetCategories lists categories
func (s *CatalogService) GetCategories() []models.Category {
	return s.index.Categories()
}

// GetCategory returns a category
func (s *CatalogService) GetCategory(id string) (models.Category, bool) {
	return s.index.CategoryByID(id)
}

// GetCategoryProducts lists a category's products, false when the category is unknown
func (s *CatalogService) GetCategoryProducts(id string) ([]models.Product, bool) {
	if _, ok := s.index.CategoryByID(id); !ok {
		return nil, false
	}
	return s.index.ProductsByCategoryID(id), true
}

// GetProducts lists every product
func (s *CatalogService) GetProducts() []models.Product {
	return s.index.Products()
}

// GetProductDetail returns the product page payload
func (s *CatalogService) GetProductDetail(id string) (models.ProductDetail, bool) {
	p, ok := s.index.ProductByID(id)
	if !ok {
		return models.ProductDetail{}, false
	}
	crumbs, _ := s.index.Breadcrumbs(id)
	return models.ProductDetail{Product: p, Breadcrumbs: crumbs}, true
}

// GetSequence resolves a named section sequence
func (s *CatalogService) GetSequence(name string) (models.Sequence, bool) {
	return s.index.Sequence(name)
}

// GetSequenceNames lists resolvable sequences
func (s *CatalogService) GetSequenceNames() []string {
	return s.index.SequenceNames()
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/powerfrill/showcase-backend-go/internal/service"
	"github.com/powerfrill/showcase-backend-go/pkg/response"
)

// CatalogHandler handles HTTP requests for solutions, categories and products
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetSolutions handles GET /api/v1/solutions
func (h *CatalogHandler) GetSolutions(c *gin.Context) {
	response.Success(c, h.service.GetSolutions())
}

// GetSolution handles GET /api/v1/solutions/:id
func (h *CatalogHandler) GetSolution(c *gin.Context) {
	solution, ok := h.service.GetSolution(c.Param("id"))
	if !ok {
		response.NotFound(c, "Solution hub not found")
		return
	}
	response.Success(c, solution)
}

// GetSolutionCategories handles GET /api/v1/solutions/:id/categories
func (h *CatalogHandler) GetSolutionCategories(c *gin.Context) {
	categories, ok := h.service.GetSolutionCategories(c.Param("id"))
	if !ok {
		response.NotFound(c, "Solution hub not found")
		return
	}
	response.Success(c, categories)
}

// GetCategories handles GET /api/v1/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	response.Success(c, h.service.GetCategories())
}

// GetCategory handles GET /api/v1/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, ok := h.service.GetCategory(c.Param("id"))
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}
	response.Success(c, category)
}

// GetCategoryProducts handles GET /api/v1/categories/:id/products
func (h *CatalogHandler) GetCategoryProducts(c *gin.Context) {
	products, ok := h.service.GetCategoryProducts(c.Param("id"))
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}
	response.Success(c, products)
}

// GetProducts handles GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	response.Success(c, h.service.GetProducts())
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, ok := h.service.GetProductDetail(c.Param("id"))
	if !ok {
		response.NotFound(c, "Product not found")
		return
	}
	response.Success(c, detail)
}

// GetSequences handles GET /api/v1/sequences
func (h *CatalogHandler) GetSequences(c *gin.Context) {
	response.Success(c, h.service.GetSequenceNames())
}

// GetSequence handles GET /api/v1/sequences/:name
func (h *CatalogHandler) GetSequence(c *gin.Context) {
	seq, ok := h.service.GetSequence(c.Param("name"))
	if !ok {
		response.NotFound(c, "Sequence not found")
		return
	}
	response.Success(c, seq)
}

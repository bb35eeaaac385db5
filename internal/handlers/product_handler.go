package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Replace(ctx context.Context, id uint, fn func(p *models.Product)) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type ProductHandler struct {
	products ProductStore
}

func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// ======================================================
// REQUESTS
// ======================================================

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    *string `json:"category"`
	Duration    *int    `json:"duration" binding:"omitempty,gt=0"`
}

func (r ProductRequest) apply(p *models.Product) {
	p.Name = r.Name
	p.Price = r.Price
	p.Image = r.Image
	p.Description = r.Description
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Duration != nil {
		p.DurationMin = *r.Duration
	}
}

func productError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeProductNotFound))
		return
	}
	httperr.Respond(c, err)
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, httperr.CodeProductNotFound)
	if !ok {
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		productError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req, false) {
		return
	}

	var p models.Product
	req.apply(&p)

	if err := h.products.Create(c.Request.Context(), &p); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update replaces the product; category and duration survive when omitted.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, httperr.CodeProductNotFound)
	if !ok {
		return
	}

	var req ProductRequest
	if !bindJSON(c, &req, false) {
		return
	}

	p, err := h.products.Replace(c.Request.Context(), id, req.apply)
	if err != nil {
		productError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, httperr.CodeProductNotFound)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		productError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

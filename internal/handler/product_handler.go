package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/service"
)

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	productService service.ProductServiceInterface
	maxUploadSize  int64
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductServiceInterface, maxUploadSize int64) *ProductHandler {
	return &ProductHandler{productService: productService, maxUploadSize: maxUploadSize}
}

type productRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func bindProduct(c *gin.Context) (*domain.Product, error) {
	var req productRequest
	if isJSONRequest(c) {
		if err := bindJSON(c, &req); err != nil {
			return nil, err
		}
	} else {
		req = productRequest{
			Name:        c.PostForm("name"),
			Category:    c.PostForm("category"),
			Description: c.PostForm("description"),
		}
	}
	return &domain.Product{Name: req.Name, Category: req.Category, Description: req.Description}, nil
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	h.save(c, http.StatusCreated, func(product *domain.Product, image *domain.MediaFile) error {
		return h.productService.Create(c.Request.Context(), product, image)
	})
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	h.save(c, http.StatusOK, func(product *domain.Product, image *domain.MediaFile) error {
		product.ID = c.Param("id")
		return h.productService.Update(c.Request.Context(), product, image)
	})
}

func (h *ProductHandler) save(c *gin.Context, status int, persist func(*domain.Product, *domain.MediaFile) error) {
	if err := limitMultipart(c, h.maxUploadSize); err != nil {
		respondError(c, err, "Product")
		return
	}

	product, err := bindProduct(c)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	image, file, err := readImage(c, h.maxUploadSize)
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	defer closeUpload(file)

	if err := persist(product, image); err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(status, product)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const productNotFound = "Product not found"

type createProductReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,ne=0"`
	Stock       *int64   `json:"stock" binding:"required"`
	Category    string   `json:"category"`
}

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Name contains"
// @Param category query string false "Category"
// @Param min_price query number false "Min price"
// @Param max_price query number false "Max price"
// @Success 200 {object} envelope{data=[]domain.Product}
// @Router /api/products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := repository.ProductFilter{
		NameSubstring: c.Query("q"),
		Category:      c.Query("category"),
	}
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.products.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respondList(c, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} envelope{data=domain.Product}
// @Failure 404 {object} envelope
// @Router /api/products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusOK, p)
}

// @Summary Create product
// @Description price must be non-zero; stock only has to be present, so 0 is allowed.
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} envelope{data=domain.Product}
// @Failure 400 {object} envelope
// @Router /api/products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if !bindRequired(c, &req, "Missing required fields: name, price, stock") {
		return
	}
	p, err := s.products.Create(c.Request.Context(), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusCreated, p)
}

// @Summary Update product
// @Description Only name, description, price, stock and category are updatable.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body domain.ProductPatch true "Fields to change"
// @Success 200 {object} envelope{data=domain.Product}
// @Failure 404 {object} envelope
// @Router /api/products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var patch domain.ProductPatch
	if !bindPatch(c, &patch) {
		return
	}
	p, err := s.products.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} envelope{data=domain.Product}
// @Failure 404 {object} envelope
// @Router /api/products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	p, err := s.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respondMessage(c, http.StatusOK, p, "Product deleted")
}

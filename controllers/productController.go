package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/services"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// handleServiceError maps service errors onto HTTP status codes.
func handleServiceError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	}
	sendErrorResponse(ctx, status, err.Error())
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid ID", err)
		return 0, false
	}
	return uint(id), true
}

// Product handlers
type ProductController struct {
	Store *store.Store
}

func NewProductController(st *store.Store) *ProductController {
	return &ProductController{Store: st}
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if product.Reference == "" || product.Name == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: reference, name", nil)
		return
	}
	if product.Price < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Price must be non-negative", nil)
		return
	}
	if product.Stock < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Stock must be non-negative", nil)
		return
	}

	// The reference is a business key, reject duplicates before the
	// unique index does it with a less helpful message.
	if _, err := c.Store.ProductByRef(product.Reference); err == nil {
		respondWithError(ctx, http.StatusBadRequest, "A product with this reference already exists", nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product reference", err)
		return
	}

	if err := c.Store.CreateProduct(&product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.Store.Products(ctx.Request.URL.Query())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, err := c.Store.ProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		Category    *string  `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := c.Store.ProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			respondWithError(ctx, http.StatusBadRequest, "Price must be non-negative", nil)
			return
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			respondWithError(ctx, http.StatusBadRequest, "Stock must be non-negative", nil)
			return
		}
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := c.Store.SaveProduct(product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, err := c.Store.ProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	if err := c.Store.DeleteProduct(id); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully", "product": product})
}

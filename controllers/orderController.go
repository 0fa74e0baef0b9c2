package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/services"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/gorm"
)

type OrderController struct {
	Store  *store.Store
	Orders *services.OrderService
}

func NewOrderController(st *store.Store, orders *services.OrderService) *OrderController {
	return &OrderController{Store: st, Orders: orders}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.Orders.Create(&order); err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.Store.Orders(ctx.Request.URL.Query())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	order, err := c.Store.OrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var update services.OrderUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := c.Orders.Update(id, update)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to parse request body", err)
		return
	}
	if orderStatusData.Status == "" {
		respondWithError(ctx, http.StatusBadRequest, "Status is required", nil)
		return
	}

	order, err := c.Orders.UpdateStatus(id, orderStatusData.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	order, err := c.Store.OrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", err)
		}
		return
	}

	// Deliveries and reclamations keep their order reference, deleting
	// an order does not cascade into them.
	if err := c.Store.DeleteOrder(id); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully", "order": order})
}

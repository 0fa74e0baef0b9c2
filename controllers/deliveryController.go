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

type DeliveryController struct {
	Store      *store.Store
	Deliveries *services.DeliveryService
}

func NewDeliveryController(st *store.Store, deliveries *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Store: st, Deliveries: deliveries}
}

func (c *DeliveryController) CreateDelivery(ctx *gin.Context) {
	var delivery models.Delivery
	if err := ctx.ShouldBindJSON(&delivery); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.Deliveries.Create(&delivery); err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, delivery)
}

func (c *DeliveryController) GetDeliveries(ctx *gin.Context) {
	deliveries, err := c.Store.Deliveries(ctx.Request.URL.Query())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch deliveries", err)
		return
	}
	ctx.JSON(http.StatusOK, deliveries)
}

func (c *DeliveryController) GetDelivery(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	delivery, err := c.Store.DeliveryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Delivery not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve delivery", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, delivery)
}

// TrackDelivery looks a delivery up by tracking number and falls back
// to an identifier lookup when the code is numeric and unknown as a
// tracking number.
func (c *DeliveryController) TrackDelivery(ctx *gin.Context) {
	code := ctx.Param("code")

	delivery, err := c.Store.DeliveryByTracking(code)
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		if id, convErr := strconv.Atoi(code); convErr == nil && id > 0 {
			delivery, err = c.Store.DeliveryByID(uint(id))
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Delivery not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve delivery", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, delivery)
}

// GetDeliveriesByPhone resolves deliveries through the owning orders'
// phone number.
func (c *DeliveryController) GetDeliveriesByPhone(ctx *gin.Context) {
	orders, err := c.Store.OrdersByPhone(ctx.Param("number"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	deliveries, err := c.Store.DeliveriesByOrderIDs(orderIDs)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch deliveries", err)
		return
	}
	if deliveries == nil {
		deliveries = []models.Delivery{}
	}

	ctx.JSON(http.StatusOK, deliveries)
}

func (c *DeliveryController) UpdateDelivery(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var update services.DeliveryUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	delivery, err := c.Deliveries.Update(id, update)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, delivery)
}

func (c *DeliveryController) DeleteDelivery(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	delivery, err := c.Store.DeliveryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Delivery not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve delivery", err)
		}
		return
	}

	if err := c.Store.DeleteDelivery(id); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete delivery", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Delivery deleted successfully", "delivery": delivery})
}

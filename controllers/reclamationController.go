package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/models"
	"github.com/ytayachi/magasin-api/store"
	"gorm.io/gorm"
)

type ReclamationController struct {
	Store *store.Store
}

func NewReclamationController(st *store.Store) *ReclamationController {
	return &ReclamationController{Store: st}
}

func (c *ReclamationController) CreateReclamation(ctx *gin.Context) {
	var reclamation models.Reclamation
	if err := ctx.ShouldBindJSON(&reclamation); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if reclamation.CustomerFbID == "" || reclamation.OrderID == 0 || reclamation.IssueDescription == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: customer_fb_id, order_id, issue_description", nil)
		return
	}

	// Verify order exists
	if _, err := c.Store.OrderByID(reclamation.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate order", err)
		}
		return
	}

	if reclamation.Status == "" {
		reclamation.Status = "Open"
	}
	if err := models.ValidateReclamationStatus(reclamation.Status); err != nil {
		respondWithError(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if reclamation.ReclamationDate.IsZero() {
		reclamation.ReclamationDate = time.Now()
	}

	if err := c.Store.CreateReclamation(&reclamation); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create reclamation", err)
		return
	}

	ctx.JSON(http.StatusCreated, reclamation)
}

func (c *ReclamationController) GetReclamations(ctx *gin.Context) {
	reclamations, err := c.Store.Reclamations(ctx.Request.URL.Query())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch reclamations", err)
		return
	}
	ctx.JSON(http.StatusOK, reclamations)
}

func (c *ReclamationController) GetReclamation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reclamation, err := c.Store.ReclamationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Reclamation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve reclamation", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, reclamation)
}

func (c *ReclamationController) UpdateReclamation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var input struct {
		CustomerFbID     *string `json:"customer_fb_id"`
		OrderID          *uint   `json:"order_id"`
		IssueDescription *string `json:"issue_description"`
		Status           *string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	reclamation, err := c.Store.ReclamationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Reclamation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve reclamation", err)
		}
		return
	}

	if input.CustomerFbID != nil {
		reclamation.CustomerFbID = *input.CustomerFbID
	}
	if input.IssueDescription != nil {
		reclamation.IssueDescription = *input.IssueDescription
	}
	if input.Status != nil {
		if err := models.ValidateReclamationStatus(*input.Status); err != nil {
			respondWithError(ctx, http.StatusBadRequest, err.Error(), nil)
			return
		}
		reclamation.Status = *input.Status
	}
	if input.OrderID != nil {
		// Verify the new owning order exists before repointing.
		if _, err := c.Store.OrderByID(*input.OrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate order", err)
			}
			return
		}
		reclamation.OrderID = *input.OrderID
	}

	if err := c.Store.SaveReclamation(reclamation); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update reclamation", err)
		return
	}

	ctx.JSON(http.StatusOK, reclamation)
}

func (c *ReclamationController) UpdateReclamationStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var statusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to parse request body", err)
		return
	}
	if statusData.Status == "" {
		respondWithError(ctx, http.StatusBadRequest, "Status is required", nil)
		return
	}
	if err := models.ValidateReclamationStatus(statusData.Status); err != nil {
		respondWithError(ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}

	reclamation, err := c.Store.ReclamationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Reclamation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve reclamation", err)
		}
		return
	}

	reclamation.Status = statusData.Status
	if err := c.Store.SaveReclamation(reclamation); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update reclamation status", err)
		return
	}

	ctx.JSON(http.StatusOK, reclamation)
}

func (c *ReclamationController) DeleteReclamation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reclamation, err := c.Store.ReclamationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Reclamation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve reclamation", err)
		}
		return
	}

	if err := c.Store.DeleteReclamation(id); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete reclamation", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Reclamation deleted successfully", "reclamation": reclamation})
}

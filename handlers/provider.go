package handlers

import (
	"errors"
	"net/http"

	"servehub/middleware"
	"servehub/models"
	"servehub/services/provider"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the weekly availability surface.
type ProviderHandler struct {
	Svc    provider.AvailabilityService
	Logger *zap.Logger
}

func NewProviderHandler(svc provider.AvailabilityService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Svc: svc, Logger: logger}
}

// UpdateAvailabilityRequest is the JSON body for PUT /api/providers/:id/availability.
type UpdateAvailabilityRequest struct {
	Availability []models.DayAvailability `json:"availability" binding:"required"`
}

// GetAvailabilityHandler returns a provider's declared weekly open hours.
func (h *ProviderHandler) GetAvailabilityHandler(c *gin.Context) {
	availability, err := h.Svc.GetWeeklyAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
			return
		}
		h.Logger.Error("availability fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "")
		return
	}
	if availability == nil {
		availability = []models.DayAvailability{}
	}
	c.JSON(http.StatusOK, gin.H{"availability": availability})
}

// UpdateAvailabilityHandler replaces a provider's weekly availability. The
// service checks that the authenticated account owns the provider record.
func (h *ProviderHandler) UpdateAvailabilityHandler(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	err := h.Svc.UpdateWeeklyAvailability(c.Request.Context(), c.Param("id"), middleware.CallerID(c), req.Availability)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
		case errors.Is(err, provider.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "providers may only edit their own availability")
		default:
			// Validation failures from the schedule shape check.
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

package handlers

import (
	"errors"
	"net/http"

	"servehub/middleware"
	"servehub/models"
	"servehub/services/review"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review submission and listing over HTTP.
type ReviewHandler struct {
	Svc    review.Service
	Logger *zap.Logger
}

func NewReviewHandler(svc review.Service, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// SubmitReviewRequest is the JSON body for POST /api/reviews.
type SubmitReviewRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

// SubmitReviewHandler creates or updates the caller's review of a provider
// and recomputes the provider's aggregate rating.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	rv, err := h.Svc.SubmitReview(c.Request.Context(), middleware.CallerID(c), req.ProviderID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotAllowed):
			utils.JSONError(c, http.StatusForbidden, "You can only review providers you've booked", "")
		case errors.Is(err, review.ErrInvalidRating):
			utils.JSONError(c, http.StatusBadRequest, "Invalid rating", err.Error())
		case errors.Is(err, review.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
		default:
			h.Logger.Error("review submission failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server Error", "")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": rv})
}

// ListProviderReviewsHandler returns a provider's reviews, newest first.
func (h *ReviewHandler) ListProviderReviewsHandler(c *gin.Context) {
	views, err := h.Svc.ListProviderReviews(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		h.Logger.Error("review listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "")
		return
	}
	if views == nil {
		views = []models.ReviewView{}
	}
	c.JSON(http.StatusOK, views)
}

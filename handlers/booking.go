package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"servehub/middleware"
	"servehub/models"
	"servehub/services/booking"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking core over HTTP.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingRequest is the JSON body for POST /api/bookings. The customer
// is the authenticated caller; price is never client-supplied.
type CreateBookingRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Service    string `json:"service" binding:"required"`
	Date       string `json:"date" binding:"required,datekey"`
	Time       string `json:"time" binding:"required"`
}

// UpdateStatusRequest is the JSON body for PATCH /api/bookings/:bookingId/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAvailableSlotsHandler returns the slot catalog for a provider/date.
func (h *BookingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date is required", "pass ?date=YYYY-MM-DD")
		return
	}

	catalog, err := h.Svc.GetAvailableSlots(c.Request.Context(), providerID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// GetTakenSlotsHandler returns the raw taken set for a provider/date.
func (h *BookingHandler) GetTakenSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date is required", "pass ?date=YYYY-MM-DD")
		return
	}

	taken, err := h.Svc.GetTakenSlots(c.Request.Context(), providerID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if taken == nil {
		taken = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"bookedSlots": taken})
}

// CreateBookingHandler admits a new booking for the authenticated customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		CustomerID: middleware.CallerID(c),
		ProviderID: req.ProviderID,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking successful", "booking": created})
}

// ListCustomerBookingsHandler returns a customer's bookings, newest first.
func (h *BookingHandler) ListCustomerBookingsHandler(c *gin.Context) {
	page, limit := paginationParams(c)
	views, err := h.Svc.ListForCustomer(c.Request.Context(), c.Param("userId"), page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

// ListProviderBookingsHandler returns a provider's bookings, newest first.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	page, limit := paginationParams(c)
	views, err := h.Svc.ListForProvider(c.Request.Context(), c.Param("providerId"), page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if views == nil {
		views = []models.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

// UpdateBookingStatusHandler drives the booking lifecycle. Transitions into
// confirmed or completed are provider actions; cancellation is open to either
// party.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status value", err.Error())
		return
	}
	if status == models.StatusPending {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status value", "bookings cannot return to pending")
		return
	}

	if status == models.StatusConfirmed || status == models.StatusCompleted {
		if c.GetString(middleware.CtxCallerRole) != "provider" {
			utils.JSONError(c, http.StatusForbidden, "Insufficient role", "only the provider may confirm or complete a booking")
			return
		}
	}

	updated, err := h.Svc.SetStatus(c.Request.Context(), c.Param("bookingId"), status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking marked as " + req.Status, "booking": updated})
}

// respondError maps booking-core errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "Time slot already booked", "")
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status transition", err.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", "")
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", vErr.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "")
	}
}

// paginationParams reads ?page= and ?limit=. Limit 0 returns everything.
func paginationParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	return page, limit
}

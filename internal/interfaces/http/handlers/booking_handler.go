package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
	"havenly.backend/pkg/utils"
)

// BookingHandler handles quoting, booking and booking decisions
type BookingHandler struct {
	bookingUsecase *usecases.BookingUsecase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase *usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
	}
}

// Quote prices a candidate stay without side effects
// GET /api/v1/bookings/quote
func (h *BookingHandler) Quote(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.Error(c, domainerrors.Validation("invalid propertyId"))
		return
	}

	quote, err := h.bookingUsecase.Quote(c.Request.Context(), propertyID, c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, quote)
}

// Create charges the quoted total and creates a pending booking
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input entities.RequestBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	booking, err := h.bookingUsecase.RequestBooking(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}

// Get returns one booking the actor may see
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetByID(c.Request.Context(), actor, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

// List lists the bookings visible to the actor
// GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	bookings, meta, err := h.bookingUsecase.List(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": meta,
	})
}

// Decide applies a host/admin ruling on a booking
// PATCH /api/v1/bookings/:id
func (h *BookingHandler) Decide(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.DecideBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation("decision is required"))
		return
	}

	booking, err := h.bookingUsecase.DecideBooking(c.Request.Context(), actor, bookingID, input.Decision)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

// Stats returns the dashboard aggregates for hosts and admins
// GET /api/v1/bookings/stats
func (h *BookingHandler) Stats(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.bookingUsecase.Stats(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

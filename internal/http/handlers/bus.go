package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dzbooking/internal/http/middleware"
	"dzbooking/internal/models"
	"dzbooking/internal/utils"
)

// POST /api/bus/search
func (h *Handler) SearchTrips(c *gin.Context) {
	var req models.BusSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !models.IsCity(req.OriginCity) || !models.IsCity(req.DestinationCity) {
		RespondError(c, http.StatusBadRequest, "Unknown city")
		return
	}
	if _, err := utils.ParseDate(req.DepartureDate); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid departure date")
		return
	}

	c.JSON(http.StatusOK, h.Store.SearchTrips(req))
}

// GET /api/bus/trips/:id
func (h *Handler) TripDetail(c *gin.Context) {
	detail, err := h.Store.TripDetail(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/bus/bookings
func (h *Handler) CreateBusBooking(c *gin.Context) {
	var req models.BusBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Store.BookSeat(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bus", "book", "trip "+req.TripID)
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bus/bookings/me
func (h *Handler) MyBusBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.UserBusBookings(middleware.GetUserID(c)))
}

// PUT /api/bus/bookings/:id/cancel
func (h *Handler) CancelBusBooking(c *gin.Context) {
	booking, err := h.Store.CancelBusBooking(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bus", "cancel", "booking "+booking.ID)
	c.JSON(http.StatusOK, booking)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dzbooking/internal/http/middleware"
	"dzbooking/internal/models"
	"dzbooking/internal/utils"
)

// GET /api/hotels?city=
func (h *Handler) Hotels(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Hotels(c.Query("city")))
}

// GET /api/hotels/:id
func (h *Handler) HotelByID(c *gin.Context) {
	hotel, err := h.Store.Hotel(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// GET /api/rooms/hotel/:id
func (h *Handler) HotelRooms(c *gin.Context) {
	if _, err := h.Store.Hotel(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Store.RoomsByHotel(c.Param("id")))
}

// POST /api/search/hotels
func (h *Handler) SearchHotels(c *gin.Context) {
	var req models.HotelSearchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.Store.Hotels(req.City))
}

// POST /api/bookings
func (h *Handler) CreateHotelBooking(c *gin.Context) {
	var req models.HotelBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Store.BookRoom(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "hotel", "book", "hotel "+req.HotelID)
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/me
func (h *Handler) MyHotelBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.UserHotelBookings(middleware.GetUserID(c)))
}

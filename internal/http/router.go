package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "dzbooking/internal/config"
	h "dzbooking/internal/http/handlers"
	"dzbooking/internal/http/middleware"
	"dzbooking/internal/store"
)

func NewRouter(env intconfig.Env, st *store.Store) *gin.Engine {
	handler := h.NewHandler(st, []byte(env.JWTSecret))
	requireAuth := middleware.RequireAuth([]byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)

		auth := api.Group("/auth")
		auth.POST("/login", handler.Login)
		auth.POST("/register", handler.Register)

		bus := api.Group("/bus")
		bus.POST("/search", handler.SearchTrips)
		bus.GET("/trips/:id", handler.TripDetail)
		busBookings := bus.Group("/bookings", requireAuth)
		busBookings.POST("", handler.CreateBusBooking)
		busBookings.GET("/me", handler.MyBusBookings)
		busBookings.PUT("/:id/cancel", handler.CancelBusBooking)

		api.GET("/hotels", handler.Hotels)
		api.GET("/hotels/:id", handler.HotelByID)
		api.GET("/rooms/hotel/:id", handler.HotelRooms)
		api.POST("/search/hotels", handler.SearchHotels)

		hotelBookings := api.Group("/bookings", requireAuth)
		hotelBookings.POST("", handler.CreateHotelBooking)
		hotelBookings.GET("/me", handler.MyHotelBookings)
	}

	return r
}

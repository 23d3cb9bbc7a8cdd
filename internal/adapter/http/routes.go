package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	// Airports group
	airports := api.Group("/airports")
	airports.GET("", h.ListAirports)
	airports.GET("/:code", h.GetAirport)

	// Bookings group
	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("/reference/:reference", h.GetBookingByReference)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.POST("/:id/confirm", h.ConfirmBooking)
	bookings.GET("/:id/ticket", h.DownloadTicket)

	// Static site content
	api.GET("/offers", h.ListOffers)
	api.GET("/offers/:code", h.GetOffer)
	api.GET("/faqs", h.ListFAQs)
}

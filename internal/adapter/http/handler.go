// Package http provides the HTTP handler layer for the flight booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyroutes/flight-booking-service/internal/adapter/http/response"
	"github.com/skyroutes/flight-booking-service/internal/adapter/pdf"
	"github.com/skyroutes/flight-booking-service/internal/catalog"
	"github.com/skyroutes/flight-booking-service/internal/content"
	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/usecase"
)

// Handler handles HTTP requests for the booking API endpoints.
type Handler struct {
	search   usecase.SearchUseCase
	bookings usecase.BookingUseCase
}

// NewHandler creates a new Handler with the given use cases.
func NewHandler(search usecase.SearchUseCase, bookings usecase.BookingUseCase) *Handler {
	return &Handler{
		search:   search,
		bookings: bookings,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for available flights on a route for a given date
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), ToDomainCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List airports
// @Description List all airports in the catalog, optionally filtered by type
// @Tags airports
// @Produce json
// @Param type query string false "Airport type filter" Enums(international, domestic)
// @Success 200 {object} AirportListResponse
// @Failure 400 {object} response.ErrorDetail "Unknown type filter"
// @Router /api/v1/airports [get]
func (h *Handler) ListAirports(c echo.Context) error {
	var airports []domain.Airport

	switch strings.ToLower(c.QueryParam("type")) {
	case "":
		airports = catalog.All()
	case "international":
		airports = catalog.ListByType(domain.AirportInternational)
	case "domestic":
		airports = catalog.ListByType(domain.AirportDomestic)
	default:
		return response.BadRequest(c, "type must be one of: international, domestic")
	}

	return response.OK(c, &AirportListResponse{
		Total:    len(airports),
		Airports: airports,
	})
}

// GetAirport handles GET /api/v1/airports/:code
//
// @Summary Get airport by IATA code
// @Description Get a single airport with its destination guide
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code"
// @Success 200 {object} domain.Airport
// @Failure 404 {object} response.ErrorDetail "Airport not found"
// @Router /api/v1/airports/{code} [get]
func (h *Handler) GetAirport(c echo.Context) error {
	airport, ok := catalog.Lookup(c.Param("code"))
	if !ok {
		return response.NotFound(c, response.MsgAirportNotFound)
	}
	return response.OK(c, airport)
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Create a draft booking
// @Description Create a draft booking for a selected flight
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Selected flight and route"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	booking, err := h.bookings.Create(c.Request().Context(), ToCreateBookingInput(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, booking)
}

// UpdateBooking handles PUT /api/v1/bookings/:id
//
// @Summary Update a draft booking
// @Description Update passenger or payment details on a draft booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body UpdateBookingRequest true "Passenger and payment forms"
// @Success 200 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Failure 409 {object} response.ErrorDetail "Booking already confirmed"
// @Router /api/v1/bookings/{id} [put]
func (h *Handler) UpdateBooking(c echo.Context) error {
	var req UpdateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	booking, err := h.bookings.Update(c.Request().Context(), c.Param("id"), ToUpdateBookingInput(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, booking)
}

// ConfirmBooking handles POST /api/v1/bookings/:id/confirm
//
// @Summary Confirm a booking
// @Description Price the booking, assign a reference, and lock it
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail "Incomplete passenger details"
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Failure 409 {object} response.ErrorDetail "Booking already confirmed"
// @Router /api/v1/bookings/{id}/confirm [post]
func (h *Handler) ConfirmBooking(c echo.Context) error {
	booking, err := h.bookings.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, booking)
}

// GetBooking handles GET /api/v1/bookings/:id
//
// @Summary Get a booking
// @Description Get a booking by its ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Router /api/v1/bookings/{id} [get]
func (h *Handler) GetBooking(c echo.Context) error {
	booking, err := h.bookings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, booking)
}

// GetBookingByReference handles GET /api/v1/bookings/reference/:reference
//
// @Summary Get a booking by reference
// @Description Look up a confirmed booking by its public reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Router /api/v1/bookings/reference/{reference} [get]
func (h *Handler) GetBookingByReference(c echo.Context) error {
	booking, err := h.bookings.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, booking)
}

// DownloadTicket handles GET /api/v1/bookings/:id/ticket
//
// @Summary Download the e-ticket
// @Description Download the PDF itinerary for a confirmed booking
// @Tags bookings
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Failure 409 {object} response.ErrorDetail "Booking not confirmed"
// @Router /api/v1/bookings/{id}/ticket [get]
func (h *Handler) DownloadTicket(c echo.Context) error {
	booking, err := h.bookings.Ticket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	originCity, destinationCity := "", ""
	if airport, ok := catalog.Lookup(booking.Origin); ok {
		originCity = airport.City
	}
	if airport, ok := catalog.Lookup(booking.Destination); ok {
		destinationCity = airport.City
	}

	data, err := pdf.RenderTicket(booking, originCity, destinationCity)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PDF(c, fmt.Sprintf("ticket-%s.pdf", booking.Reference), data)
}

// ListOffers handles GET /api/v1/offers
//
// @Summary List promotional offers
// @Description List active promotional offers and seasonal deals
// @Tags content
// @Produce json
// @Success 200 {object} OfferListResponse
// @Router /api/v1/offers [get]
func (h *Handler) ListOffers(c echo.Context) error {
	return response.OK(c, &OfferListResponse{
		Offers:        content.Offers(),
		SeasonalDeals: content.SeasonalDeals(),
	})
}

// GetOffer handles GET /api/v1/offers/:code
//
// @Summary Get an offer by promo code
// @Description Look up a promotional offer by its promo code
// @Tags content
// @Produce json
// @Param code path string true "Promo code"
// @Success 200 {object} content.Offer
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Router /api/v1/offers/{code} [get]
func (h *Handler) GetOffer(c echo.Context) error {
	offer, ok := content.OfferByCode(c.Param("code"))
	if !ok {
		return response.NotFound(c, response.MsgOfferNotFound)
	}
	return response.OK(c, offer)
}

// ListFAQs handles GET /api/v1/faqs
//
// @Summary List FAQs
// @Description List frequently asked questions
// @Tags content
// @Produce json
// @Success 200 {object} FAQListResponse
// @Router /api/v1/faqs [get]
func (h *Handler) ListFAQs(c echo.Context) error {
	faqs := content.FAQs()
	return response.OK(c, &FAQListResponse{
		Total: len(faqs),
		FAQs:  faqs,
	})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		return response.NotFound(c, response.MsgBookingNotFound)
	case errors.Is(err, domain.ErrBookingConfirmed):
		return response.Conflict(c, response.MsgBookingConfirmed)
	case errors.Is(err, domain.ErrBookingNotConfirmed):
		return response.Conflict(c, response.MsgTicketUnavailable)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

package http

import (
	"strings"

	"github.com/skyroutes/flight-booking-service/internal/content"
	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/usecase"
)

// AirportListResponse is the response body for the airport listing endpoint.
type AirportListResponse struct {
	Total    int              `json:"total"`
	Airports []domain.Airport `json:"airports"`
}

// OfferListResponse is the response body for the offers endpoint.
type OfferListResponse struct {
	Offers        []content.Offer        `json:"offers"`
	SeasonalDeals []content.SeasonalDeal `json:"seasonalDeals"`
}

// FAQListResponse is the response body for the FAQ endpoint.
type FAQListResponse struct {
	Total int                `json:"total"`
	FAQs  []content.FAQEntry `json:"faqs"`
}

// ToDomainCriteria converts a search request to domain search criteria.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
	}
}

// ToCreateBookingInput converts a create booking request to use case input.
func ToCreateBookingInput(req *CreateBookingRequest) usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		Flight: domain.Flight{
			ID:           req.Flight.ID,
			Airline:      req.Flight.Airline,
			FlightNumber: req.Flight.FlightNumber,
			Departure:    req.Flight.Departure,
			Arrival:      req.Flight.Arrival,
			Duration:     req.Flight.Duration,
			Price:        req.Flight.Price,
			Class:        normalizeClass(req.Flight.Class),
			Stops:        req.Flight.Stops,
		},
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
	}
}

// ToUpdateBookingInput converts an update booking request to use case input.
func ToUpdateBookingInput(req *UpdateBookingRequest) usecase.UpdateBookingInput {
	input := usecase.UpdateBookingInput{}

	if req.Passenger != nil {
		input.Passenger = &domain.PassengerDetails{
			FirstName: req.Passenger.FirstName,
			LastName:  req.Passenger.LastName,
			Email:     req.Passenger.Email,
			Phone:     req.Passenger.Phone,
		}
	}

	if req.Payment != nil {
		input.Payment = &domain.PaymentDetails{
			CardNumber: req.Payment.CardNumber,
			ExpiryDate: req.Payment.ExpiryDate,
			CVV:        req.Payment.CVV,
		}
	}

	return input
}

// normalizeClass maps a case-insensitive class label to the canonical
// domain value, defaulting to economy.
func normalizeClass(class string) domain.FlightClass {
	if strings.EqualFold(class, string(domain.ClassBusiness)) {
		return domain.ClassBusiness
	}
	return domain.ClassEconomy
}

package http

import (
	"regexp"
	"strings"
	"time"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "DEL")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "GOI")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of passengers (1-9, defaults to 1)
	Passengers int `json:"passengers"`
}

// FlightRequest is the flight selection carried in a booking request.
// It echoes a flight previously returned by the search endpoint.
type FlightRequest struct {
	ID           string `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Price        int    `json:"price"`
	Class        string `json:"class"`
	Stops        int    `json:"stops"`
}

// CreateBookingRequest represents the request body for creating a draft booking.
type CreateBookingRequest struct {
	// Flight is the selected flight
	Flight FlightRequest `json:"flight"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of passengers (1-9)
	Passengers int `json:"passengers"`
}

// PassengerRequest carries the passenger contact form.
type PassengerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// PaymentRequest carries the payment form. The demo never charges the
// card; values are stored on the draft as-is.
type PaymentRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// UpdateBookingRequest represents the request body for updating a draft booking.
// Both sections are optional; omitted sections are left untouched.
type UpdateBookingRequest struct {
	Passenger *PassengerRequest `json:"passenger,omitempty"`
	Payment   *PaymentRequest   `json:"payment,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid travel classes.
var validClasses = map[string]bool{
	"economy":  true,
	"business": true,
	"":         true, // Empty is valid (defaults to economy)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	validateAirportCode(errs, "destination", &r.Destination)
	validateDepartureDate(errs, r.DepartureDate)
	validatePassengers(errs, r.Passengers)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the create booking request and returns any validation errors.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin)
	validateAirportCode(errs, "destination", &r.Destination)
	validateDepartureDate(errs, r.DepartureDate)
	validatePassengers(errs, r.Passengers)
	r.validateFlight(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *CreateBookingRequest) validateFlight(errs *ValidationErrors) {
	if r.Flight.ID == "" {
		errs.Add("flight.id", "flight id is required")
	}
	if r.Flight.Airline == "" {
		errs.Add("flight.airline", "flight airline is required")
	}
	if r.Flight.Price <= 0 {
		errs.Add("flight.price", "flight price must be a positive number")
	}
	if !validClasses[strings.ToLower(r.Flight.Class)] {
		errs.Add("flight.class", "class must be one of: Economy, Business")
	}
	if r.Flight.Stops < 0 || r.Flight.Stops > 1 {
		errs.Add("flight.stops", "stops must be 0 or 1")
	}
}

// Validate validates the update booking request and returns any validation errors.
func (r *UpdateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Passenger == nil && r.Payment == nil {
		errs.Add("body", "at least one of passenger or payment must be provided")
	}

	if r.Passenger != nil {
		if strings.TrimSpace(r.Passenger.FirstName) == "" {
			errs.Add("passenger.firstName", "firstName is required")
		}
		if strings.TrimSpace(r.Passenger.Email) == "" {
			errs.Add("passenger.email", "email is required")
		}
		if strings.TrimSpace(r.Passenger.Phone) == "" {
			errs.Add("passenger.phone", "phone is required")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateAirportCode(errs *ValidationErrors, field string, code *string) {
	if *code == "" {
		errs.Add(field, field+" is required")
		return
	}

	normalized := strings.ToUpper(strings.TrimSpace(*code))
	if !airportCodePattern.MatchString(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*code = normalized // Normalize to uppercase
}

func validateDepartureDate(errs *ValidationErrors, date string) {
	if date == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}

	if !datePattern.MatchString(date) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}
}

func validatePassengers(errs *ValidationErrors, passengers int) {
	// Zero is allowed and defaults to a single passenger downstream.
	if passengers < 0 {
		errs.Add("passengers", "passengers must be at least 1")
		return
	}
	if passengers > 9 {
		errs.Add("passengers", "passengers cannot exceed 9")
	}
}

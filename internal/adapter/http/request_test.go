package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSearchRequest() SearchFlightsRequest {
	return SearchFlightsRequest{
		Origin:        "DEL",
		Destination:   "GOI",
		DepartureDate: "2025-06-15",
		Passengers:    2,
	}
}

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *SearchFlightsRequest)
		wantField string
	}{
		{"valid request", func(r *SearchFlightsRequest) {}, ""},
		{"missing origin", func(r *SearchFlightsRequest) { r.Origin = "" }, "origin"},
		{"origin too long", func(r *SearchFlightsRequest) { r.Origin = "DELHI" }, "origin"},
		{"origin with digits", func(r *SearchFlightsRequest) { r.Origin = "D3L" }, "origin"},
		{"missing destination", func(r *SearchFlightsRequest) { r.Destination = "" }, "destination"},
		{"missing date", func(r *SearchFlightsRequest) { r.DepartureDate = "" }, "departureDate"},
		{"wrong date format", func(r *SearchFlightsRequest) { r.DepartureDate = "15-06-2025" }, "departureDate"},
		{"impossible date", func(r *SearchFlightsRequest) { r.DepartureDate = "2025-02-30" }, "departureDate"},
		{"negative passengers", func(r *SearchFlightsRequest) { r.Passengers = -1 }, "passengers"},
		{"too many passengers", func(r *SearchFlightsRequest) { r.Passengers = 10 }, "passengers"},
		{"zero passengers defaults downstream", func(r *SearchFlightsRequest) { r.Passengers = 0 }, ""},
		{"same origin and destination", func(r *SearchFlightsRequest) { r.Destination = r.Origin }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchFlightsRequest_NormalizesCodes(t *testing.T) {
	req := SearchFlightsRequest{
		Origin:        "del",
		Destination:   " goi ",
		DepartureDate: "2025-06-15",
		Passengers:    1,
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "DEL", req.Origin)
	assert.Equal(t, "GOI", req.Destination)
}

func validCreateBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		Flight: FlightRequest{
			ID:           "FL1000",
			Airline:      "Air India",
			FlightNumber: "AI100",
			Departure:    "06:30",
			Arrival:      "10:45",
			Duration:     "4h 15m",
			Price:        9100,
			Class:        "Economy",
			Stops:        0,
		},
		Origin:        "BOM",
		Destination:   "DXB",
		DepartureDate: "2025-07-01",
		Passengers:    1,
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *CreateBookingRequest)
		wantField string
	}{
		{"valid request", func(r *CreateBookingRequest) {}, ""},
		{"business class", func(r *CreateBookingRequest) { r.Flight.Class = "Business" }, ""},
		{"empty class defaults", func(r *CreateBookingRequest) { r.Flight.Class = "" }, ""},
		{"missing flight id", func(r *CreateBookingRequest) { r.Flight.ID = "" }, "flight.id"},
		{"missing airline", func(r *CreateBookingRequest) { r.Flight.Airline = "" }, "flight.airline"},
		{"zero price", func(r *CreateBookingRequest) { r.Flight.Price = 0 }, "flight.price"},
		{"negative price", func(r *CreateBookingRequest) { r.Flight.Price = -500 }, "flight.price"},
		{"unknown class", func(r *CreateBookingRequest) { r.Flight.Class = "first" }, "flight.class"},
		{"too many stops", func(r *CreateBookingRequest) { r.Flight.Stops = 2 }, "flight.stops"},
		{"bad origin", func(r *CreateBookingRequest) { r.Origin = "BOMBAY" }, "origin"},
		{"missing date", func(r *CreateBookingRequest) { r.DepartureDate = "" }, "departureDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateBookingRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestUpdateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       UpdateBookingRequest
		wantField string
	}{
		{
			name: "passenger only",
			req: UpdateBookingRequest{
				Passenger: &PassengerRequest{FirstName: "Asha", Email: "asha@example.com", Phone: "+91 9876543210"},
			},
		},
		{
			name: "payment only",
			req: UpdateBookingRequest{
				Payment: &PaymentRequest{CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123"},
			},
		},
		{
			name:      "empty body",
			req:       UpdateBookingRequest{},
			wantField: "body",
		},
		{
			name: "passenger missing email",
			req: UpdateBookingRequest{
				Passenger: &PassengerRequest{FirstName: "Asha", Phone: "+91 9876543210"},
			},
			wantField: "passenger.email",
		},
		{
			name: "passenger blank phone",
			req: UpdateBookingRequest{
				Passenger: &PassengerRequest{FirstName: "Asha", Email: "asha@example.com", Phone: "   "},
			},
			wantField: "passenger.phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	verrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", verrs.Error())
	assert.False(t, verrs.HasErrors())

	verrs.Add("origin", "origin is required")
	assert.True(t, verrs.HasErrors())
	assert.Equal(t, "origin is required", verrs.Error())
}

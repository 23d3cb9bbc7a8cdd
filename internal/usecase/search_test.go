package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
)

// sampleFlights returns a small, already price-sorted inventory.
func sampleFlights() []domain.Flight {
	return []domain.Flight{
		{ID: "FL1002", Airline: "SpiceJet", FlightNumber: "SP102", Departure: "10:10", Arrival: "14:35", Duration: "4h 25m", Price: 6200, Class: domain.ClassEconomy, Stops: 0},
		{ID: "FL1000", Airline: "Air India", FlightNumber: "AI100", Departure: "06:30", Arrival: "10:05", Duration: "3h 35m", Price: 8100, Class: domain.ClassBusiness, Stops: 1},
	}
}

func TestSearchUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("valid criteria dispatches to inventory", func(t *testing.T) {
		inventory := domain.NewMockInventorySource(ctrl)
		inventory.EXPECT().Generate("DEL", "GOI").Return(sampleFlights())

		uc := NewSearchUseCase(inventory, clock)
		resp, err := uc.Search(context.Background(), domain.SearchCriteria{
			Origin:        "DEL",
			Destination:   "GOI",
			DepartureDate: "2025-06-15",
			Passengers:    2,
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Len(t, resp.Flights, 2)
		assert.Equal(t, 2, resp.Metadata.TotalResults)
		assert.Equal(t, "DEL", resp.SearchCriteria.Origin)

		require.NotNil(t, resp.OriginAirport)
		assert.Equal(t, "New Delhi", resp.OriginAirport.City)
		require.NotNil(t, resp.DestinationAirport)
		assert.Equal(t, "Goa", resp.DestinationAirport.City)
	})

	t.Run("passengers defaulted to one", func(t *testing.T) {
		inventory := domain.NewMockInventorySource(ctrl)
		inventory.EXPECT().Generate("DEL", "GOI").Return(sampleFlights())

		uc := NewSearchUseCase(inventory, clock)
		resp, err := uc.Search(context.Background(), domain.SearchCriteria{
			Origin:        "DEL",
			Destination:   "GOI",
			DepartureDate: "2025-06-15",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.SearchCriteria.Passengers)
	})

	t.Run("unknown airport codes still search", func(t *testing.T) {
		inventory := domain.NewMockInventorySource(ctrl)
		inventory.EXPECT().Generate("ZZZ", "GOI").Return(sampleFlights())

		uc := NewSearchUseCase(inventory, clock)
		resp, err := uc.Search(context.Background(), domain.SearchCriteria{
			Origin:        "ZZZ",
			Destination:   "GOI",
			DepartureDate: "2025-06-15",
			Passengers:    1,
		})

		require.NoError(t, err)
		assert.Nil(t, resp.OriginAirport, "unknown origin renders as a fallback, not an error")
		require.NotNil(t, resp.DestinationAirport)
	})

	t.Run("invalid criteria rejected without dispatch", func(t *testing.T) {
		// No Generate expectation: validation failure must not reach the
		// inventory source.
		inventory := domain.NewMockInventorySource(ctrl)

		uc := NewSearchUseCase(inventory, clock)
		resp, err := uc.Search(context.Background(), domain.SearchCriteria{
			Origin:        "",
			Destination:   "JFK",
			DepartureDate: "2025-01-01",
			Passengers:    1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.Nil(t, resp)
	})

	t.Run("nil flights become empty list", func(t *testing.T) {
		inventory := domain.NewMockInventorySource(ctrl)
		inventory.EXPECT().Generate("DEL", "GOI").Return(nil)

		uc := NewSearchUseCase(inventory, clock)
		resp, err := uc.Search(context.Background(), domain.SearchCriteria{
			Origin:        "DEL",
			Destination:   "GOI",
			DepartureDate: "2025-06-15",
			Passengers:    1,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Flights)
		assert.Empty(t, resp.Flights)
		assert.Equal(t, 0, resp.Metadata.TotalResults)
	})
}

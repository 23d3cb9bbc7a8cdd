package generator

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
)

// newSeeded returns a generator with a fixed seed for reproducible output.
func newSeeded(seed int64) *Generator {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return New(clock, &Config{Seed: seed})
}

func TestGenerate_EmptyRoute(t *testing.T) {
	g := newSeeded(1)

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{"empty origin", "", "GOI"},
		{"empty destination", "DEL", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flights := g.Generate(tt.origin, tt.destination)
			require.NotNil(t, flights, "empty result must be a slice, not nil")
			assert.Empty(t, flights)
		})
	}
}

func TestGenerate_ResultShape(t *testing.T) {
	// Properties below hold for every seed; sample a few.
	for _, seed := range []int64{1, 42, 987654321} {
		g := newSeeded(seed)
		flights := g.Generate("DEL", "GOI")

		require.Len(t, flights, FlightCount)

		assert.True(t, sort.SliceIsSorted(flights, func(a, b int) bool {
			return flights[a].Price < flights[b].Price
		}), "results must be sorted ascending by price")

		for _, f := range flights {
			assert.GreaterOrEqual(t, f.Price, BasePrice)
			assert.Less(t, f.Price, BasePrice+PriceSpread)
			assert.Contains(t, []int{0, 1}, f.Stops)
			assert.Contains(t, []domain.FlightClass{domain.ClassEconomy, domain.ClassBusiness}, f.Class)
			assert.Regexp(t, `^FL\d{4}$`, f.ID)
			assert.Regexp(t, `^[A-Z]{2}\d{3}$`, f.FlightNumber)
			assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, f.Departure)
			assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, f.Arrival)
			assert.Regexp(t, `^[3-7]h [0-5]?\dm$`, f.Duration)
		}
	}
}

func TestGenerate_AirlineRotationAndPatterns(t *testing.T) {
	g := newSeeded(7)
	flights := g.Generate("DEL", "GOI")
	require.Len(t, flights, FlightCount)

	// Recover generation order by candidate ID (FL1000..FL1007) to verify
	// the index-based patterns.
	byID := make(map[string]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}

	for i := 0; i < FlightCount; i++ {
		f, ok := byID[flightID(i)]
		require.True(t, ok, "candidate %d missing", i)

		assert.Equal(t, airlines[i%len(airlines)], f.Airline)
		assert.Equal(t, flightNumber(f.Airline, i), f.FlightNumber)

		wantClass := domain.ClassEconomy
		if i%3 == 0 {
			wantClass = domain.ClassBusiness
		}
		assert.Equal(t, wantClass, f.Class, "class pattern at index %d", i)

		wantStops := 0
		if i%4 == 0 {
			wantStops = 1
		}
		assert.Equal(t, wantStops, f.Stops, "stops pattern at index %d", i)
	}
}

func TestGenerate_FixedSeedIsReproducible(t *testing.T) {
	first := newSeeded(42).Generate("DEL", "GOI")
	second := newSeeded(42).Generate("DEL", "GOI")

	assert.Equal(t, first, second, "same seed must produce identical inventory")
}

func TestGenerate_ClockSeedVaries(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	g := New(clock, nil)

	first := g.Generate("DEL", "GOI")
	clock.Advance(time.Second)
	second := g.Generate("DEL", "GOI")

	// Prices are drawn fresh per invocation; with different seeds the two
	// result sets should not be identical.
	assert.NotEqual(t, first, second)
}

func TestFlightNumber(t *testing.T) {
	assert.Equal(t, "AI100", flightNumber("Air India", 0))
	assert.Equal(t, "IN101", flightNumber("IndiGo", 1))
	assert.Equal(t, "BR107", flightNumber("British Airways", 7))
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroutes/flight-booking-service/internal/domain"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantCity string
		wantOK   bool
	}{
		{"uppercase code", "DEL", "New Delhi", true},
		{"lowercase code", "del", "New Delhi", true},
		{"mixed case code", "Goi", "Goa", true},
		{"surrounding whitespace", " JFK ", "New York", true},
		{"unknown code", "XXX", "", false},
		{"empty code", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			airport, ok := Lookup(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCity, airport.City)
			} else {
				assert.Empty(t, airport.Code)
			}
		})
	}
}

func TestLookup_CaseInsensitiveIdempotent(t *testing.T) {
	lower, okLower := Lookup("del")
	upper, okUpper := Lookup("DEL")

	require.True(t, okLower)
	require.True(t, okUpper)
	assert.Equal(t, upper, lower)
}

func TestListByType(t *testing.T) {
	international := ListByType(domain.AirportInternational)
	domestic := ListByType(domain.AirportDomestic)

	assert.Len(t, international, 21)
	assert.Len(t, domestic, 10)
	assert.Len(t, All(), len(international)+len(domestic))

	// Insertion order is stable: JFK leads the table, GOI leads the
	// domestic block.
	require.NotEmpty(t, international)
	assert.Equal(t, "JFK", international[0].Code)
	require.NotEmpty(t, domestic)
	assert.Equal(t, "GOI", domestic[0].Code)

	for _, a := range international {
		assert.Equal(t, domain.AirportInternational, a.Type)
	}
	for _, a := range domestic {
		assert.Equal(t, domain.AirportDomestic, a.Type)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].City = "mutated"

	fresh := All()
	assert.NotEqual(t, "mutated", fresh[0].City, "callers must not be able to mutate the table")
}

// Package generator produces mock flight inventory for a route.
// It stands in for a real inventory query: results have a deterministic
// shape (count, airline rotation, class and stop pattern) with randomized
// prices and times. The random source is seedable so tests can pin output.
package generator

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
)

// airlines is the fixed rotation of carrier names. Candidate i is assigned
// airlines[i % len(airlines)].
var airlines = [...]string{
	"Air India",
	"IndiGo",
	"SpiceJet",
	"Vistara",
	"Emirates",
	"Singapore Airlines",
	"Lufthansa",
	"British Airways",
}

// Inventory shape constants.
const (
	// FlightCount is the number of candidates produced per search.
	FlightCount = 8

	// BasePrice is the minimum fare; fares fall in [BasePrice, BasePrice+PriceSpread).
	BasePrice   = 5000
	PriceSpread = 15000

	// firstDepartureHour is the departure hour of candidate 0; each
	// subsequent candidate departs two hours later.
	firstDepartureHour = 6

	// flightSpanHours separates a candidate's scheduled arrival hour from
	// its departure hour.
	flightSpanHours = 4

	// minDurationHours bounds the randomized advertised duration (3-7h
	// plus minutes).
	minDurationHours    = 3
	durationHoursSpread = 5
)

// Config holds the generator configuration.
type Config struct {
	// Seed fixes the random source for reproducible output.
	// Zero means seed from the clock on every invocation.
	Seed int64
}

// Generator implements domain.InventorySource with randomized mock data.
type Generator struct {
	clock timeutil.Clock
	seed  int64
}

// New creates a Generator that seeds its random source from the given
// clock. If cfg is nil, defaults are used.
func New(clock timeutil.Clock, cfg *Config) *Generator {
	g := &Generator{clock: clock}
	if cfg != nil {
		g.seed = cfg.Seed
	}
	if g.clock == nil {
		g.clock = timeutil.NewRealClock()
	}
	return g
}

// Generate returns the candidate flights for the route, sorted ascending
// by price with a stable tie-break. An empty origin or destination yields
// an empty result: the search pipeline proceeds with "no results" rather
// than treating it as an error.
//
// Each invocation gets a private rand.Rand, so concurrent searches do not
// contend on a shared source.
func (g *Generator) Generate(origin, destination string) []domain.Flight {
	if origin == "" || destination == "" {
		return []domain.Flight{}
	}

	seed := g.seed
	if seed == 0 {
		seed = g.clock.Now().UnixNano()
	}
	return g.generate(rand.New(rand.NewSource(seed)))
}

// generate builds the candidate list from the given random source.
func (g *Generator) generate(rng *rand.Rand) []domain.Flight {
	flights := make([]domain.Flight, 0, FlightCount)

	for i := 0; i < FlightCount; i++ {
		airline := airlines[i%len(airlines)]
		price := BasePrice + int(rng.Float64()*PriceSpread)

		class := domain.ClassEconomy
		if i%3 == 0 {
			class = domain.ClassBusiness
		}

		stops := 0
		if i%4 == 0 {
			stops = 1
		}

		departureHour := firstDepartureHour + i*2
		arrivalHour := departureHour + flightSpanHours

		flights = append(flights, domain.Flight{
			ID:           flightID(i),
			Airline:      airline,
			FlightNumber: flightNumber(airline, i),
			Departure:    domain.FormatTimeOfDay(departureHour, rng.Intn(60)),
			Arrival:      domain.FormatTimeOfDay(arrivalHour, rng.Intn(60)),
			Duration:     domain.FormatSpan(minDurationHours+rng.Intn(durationHoursSpread), rng.Intn(60)),
			Price:        price,
			Class:        class,
			Stops:        stops,
		})
	}

	// Cheapest first; ties keep generation order.
	sort.SliceStable(flights, func(a, b int) bool {
		return flights[a].Price < flights[b].Price
	})

	return flights
}

// flightID numbers candidates FL1000..FL1007 within one result set.
func flightID(i int) string {
	return "FL" + strconv.Itoa(1000+i)
}

// flightNumber derives a carrier-style number from the airline name:
// the first two letters uppercased plus 100+i (e.g., "IN103").
func flightNumber(airline string, i int) string {
	prefix := strings.ToUpper(airline[:2])
	return prefix + strconv.Itoa(100+i)
}

// Ensure Generator implements InventorySource at compile time.
var _ domain.InventorySource = (*Generator)(nil)

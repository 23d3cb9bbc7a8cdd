// Package usecase contains the business logic for the search and booking
// pipelines. It orchestrates the catalog, the inventory source and the
// booking store behind transport-agnostic interfaces.
package usecase

import (
	"context"

	"github.com/skyroutes/flight-booking-service/internal/catalog"
	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
)

// SearchUseCase defines the interface for flight search operations.
type SearchUseCase interface {
	// Search validates the criteria, resolves the route's airports from
	// the catalog and asks the inventory source for candidate flights.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
}

// searchUseCase implements SearchUseCase.
type searchUseCase struct {
	inventory domain.InventorySource
	clock     timeutil.Clock
}

// NewSearchUseCase creates a SearchUseCase backed by the given inventory
// source. A nil clock falls back to the system clock.
func NewSearchUseCase(inventory domain.InventorySource, clock timeutil.Clock) SearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &searchUseCase{
		inventory: inventory,
		clock:     clock,
	}
}

// Search implements SearchUseCase.Search.
// Validation failure rejects the search without touching the inventory;
// a route with an unknown airport code still searches, and the response
// simply omits the metadata for the unknown end.
func (uc *searchUseCase) Search(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	flights := uc.inventory.Generate(criteria.Origin, criteria.Destination)

	response := domain.NewSearchResponse(criteria, flights, domain.SearchMetadata{
		SearchTimeMs: uc.clock.Now().Sub(start).Milliseconds(),
	})

	// Absent catalog entries are not an error; the caller renders a
	// fallback for the missing end of the route.
	if origin, ok := catalog.Lookup(criteria.Origin); ok {
		response.OriginAirport = &origin
	}
	if destination, ok := catalog.Lookup(criteria.Destination); ok {
		response.DestinationAirport = &destination
	}

	return &response, nil
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)

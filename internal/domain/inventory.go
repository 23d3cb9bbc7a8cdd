package domain

//go:generate mockgen -source=inventory.go -destination=mock_inventory.go -package=domain

// InventorySource produces candidate flights for a route.
// The production implementation is a randomized mock generator standing in
// for a real inventory query; tests substitute a deterministic source.
type InventorySource interface {
	// Generate returns the candidate flights for the given route, sorted
	// ascending by price. An empty origin or destination yields an empty
	// result rather than an error: the pipeline is allowed to proceed
	// with "no results".
	Generate(origin, destination string) []Flight
}

// Package testutil provides test helper functions for unit and integration tests.
package testutil

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

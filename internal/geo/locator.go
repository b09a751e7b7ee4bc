// Package geo supplies best-effort location strings for click events.
//
// Location is descriptive and non-authoritative: the click event shape does
// not change whether the locator is a real geo-IP lookup or a stub.
package geo

import (
	"context"

	"github.com/serroba/shortspan/internal/shortcode"
)

// Locator resolves a client IP to a human-readable location string.
type Locator interface {
	Locate(ctx context.Context, clientIP string) string
}

// UnknownLocation is reported when no location can be determined.
const UnknownLocation = "Unknown"

// mockLocations is the fixed pool the mock locator draws from.
var mockLocations = []string{
	"New York, NY, USA",
	"Los Angeles, CA, USA",
	"Chicago, IL, USA",
	"Houston, TX, USA",
	"Phoenix, AZ, USA",
	"Philadelphia, PA, USA",
	"San Antonio, TX, USA",
	"San Diego, CA, USA",
	"Dallas, TX, USA",
	"San Jose, CA, USA",
}

// MockLocator returns a random plausible location. It stands in for a real
// geo-IP backend and ignores the client IP entirely.
type MockLocator struct {
	rand shortcode.RandomSource
}

// NewMockLocator creates a mock locator drawing from the given source.
func NewMockLocator(rand shortcode.RandomSource) *MockLocator {
	return &MockLocator{rand: rand}
}

func (m *MockLocator) Locate(_ context.Context, _ string) string {
	return mockLocations[m.rand.IntN(len(mockLocations))]
}

// NoopLocator always reports an unknown location.
type NoopLocator struct{}

func (NoopLocator) Locate(_ context.Context, _ string) string {
	return UnknownLocation
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Reference Types
// -----------------------------------------------------------------------------

// Brand represents a fuel retailer brand (e.g., "Caltex").
type Brand struct {
	ID   int    // Primary key (API brand id)
	Name string // Display name
}

// FuelType represents a fuel product (e.g., "Unleaded", "Diesel").
type FuelType struct {
	ID   int    // Primary key (API fuel id)
	Name string // Display name
}

// Station represents a fuel station (an API "site") in the tracked region.
type Station struct {
	ID        int64   // Primary key (API site id)
	BrandID   int     // Foreign key to Brand, 0 if unknown
	Name      string  // Display name
	Address   string  // Street address
	Postcode  string  // Postcode
	Latitude  float64 // WGS84 latitude
	Longitude float64 // WGS84 longitude
}

// -----------------------------------------------------------------------------
// Time-Series Types
// -----------------------------------------------------------------------------

// PriceObservation is a single fuel-price data point at a point in time.
// Rows are append-only: created by the collector, read by the renderer,
// never mutated or deleted.
type PriceObservation struct {
	StationID  int64     // Station the price was observed at
	FuelID     int       // Fuel type observed
	ObservedAt time.Time // Upstream transaction time (UTC)
	Price      int       // Price in tenths of a cent per litre
}

// PricePoint is an observation joined with display names, as returned by
// window queries for rendering.
type PricePoint struct {
	PriceObservation
	FuelName    string
	StationName string
	BrandName   string
}

// CollectionRun records one collector invocation and what it did.
type CollectionRun struct {
	ID           uuid.UUID // Run identifier
	StartedAt    time.Time
	FinishedAt   time.Time
	Stations     int // Stations upserted
	Observations int // Observations submitted after in-run dedup
	Inserted     int // New rows appended
	Conflicts    int // Rows skipped as already present
}

// PriceDivisor converts API price units (tenths of a cent per litre)
// to dollars per litre.
const PriceDivisor = 1000.0

// Dollars returns the observation price in $/L.
func (o PriceObservation) Dollars() float64 {
	return float64(o.Price) / PriceDivisor
}

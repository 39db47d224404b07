package api

import (
	"math"
	"time"

	"fueltrack/internal/model"
)

// ParseTimestamp parses an ISO 8601 timestamp as UTC.
// Returns false for empty or invalid input.
func ParseTimestamp(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// The API sometimes omits the timezone suffix; those are UTC.
		t, err = time.ParseInLocation("2006-01-02T15:04:05", iso, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
	}

	return t.UTC(), true
}

// ToModel converts an APIBrand to model.Brand.
func (b APIBrand) ToModel() model.Brand {
	return model.Brand{
		ID:   b.BrandID,
		Name: b.Name,
	}
}

// ToModel converts an APIFuel to model.FuelType.
func (f APIFuel) ToModel() model.FuelType {
	return model.FuelType{
		ID:   f.FuelID,
		Name: f.Name,
	}
}

// ToModel converts an APISite to model.Station.
func (s APISite) ToModel() model.Station {
	return model.Station{
		ID:        s.SiteID,
		BrandID:   s.BrandID,
		Name:      s.Name,
		Address:   s.Address,
		Postcode:  s.Postcode,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

// ToObservation converts an APISitePrice to a model.PriceObservation.
// Returns false for readings with a missing/invalid timestamp or a
// non-positive price; the collector drops those.
func (p APISitePrice) ToObservation() (model.PriceObservation, bool) {
	ts, ok := ParseTimestamp(p.TransactionDateUTC)
	if !ok {
		return model.PriceObservation{}, false
	}

	price := int(math.Round(p.Price))
	if price <= 0 || p.SiteID == 0 || p.FuelID == 0 {
		return model.PriceObservation{}, false
	}

	return model.PriceObservation{
		StationID:  p.SiteID,
		FuelID:     p.FuelID,
		ObservedAt: ts,
		Price:      price,
	}, true
}

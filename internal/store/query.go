package store

import (
	"context"
	"fmt"
	"time"

	"fueltrack/internal/model"
)

// QueryWindow returns all observations with observed_at in [from, to),
// ordered by observed_at ascending and joined with display names.
func (s *Store) QueryWindow(ctx context.Context, from, to time.Time) ([]model.PricePoint, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.station_id, p.fuel_id, p.observed_at, p.price,
		       f.name, st.name, COALESCE(b.name, '')
		FROM price_observations p
		JOIN fuel_types f ON f.fuel_id = p.fuel_id
		JOIN stations st  ON st.station_id = p.station_id
		LEFT JOIN brands b ON b.brand_id = st.brand_id
		WHERE p.observed_at >= $1 AND p.observed_at < $2
		ORDER BY p.observed_at
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query window: %w", err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var pt model.PricePoint
		if err := rows.Scan(
			&pt.StationID, &pt.FuelID, &pt.ObservedAt, &pt.Price,
			&pt.FuelName, &pt.StationName, &pt.BrandName,
		); err != nil {
			return nil, fmt.Errorf("scan price point: %w", err)
		}
		points = append(points, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price points: %w", err)
	}

	return points, nil
}

// Package store persists fuel price data in PostgreSQL.
//
// Reference data (brands, fuel types, stations) is upserted on every
// collector run. Price observations are append-only: duplicate readings
// conflict on (station_id, fuel_id, observed_at) and are skipped.
package store

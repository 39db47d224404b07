package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fueltrack/internal/model"
)

// Store persists reference data and the append-only price time series.
type Store struct {
	db        *pgxpool.Pool
	logger    *slog.Logger
	batchSize int
}

// New creates a Store. batchSize bounds the rows queued per database batch.
func New(db *pgxpool.Pool, batchSize int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if batchSize < 1 {
		batchSize = 1
	}
	return &Store{
		db:        db,
		logger:    logger,
		batchSize: batchSize,
	}
}

// UpsertBrands inserts or updates retailer brands.
func (s *Store) UpsertBrands(ctx context.Context, brands []model.Brand) error {
	if len(brands) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, b := range brands {
		batch.Queue(`
			INSERT INTO brands (brand_id, name)
			VALUES ($1, $2)
			ON CONFLICT (brand_id) DO UPDATE SET name = EXCLUDED.name
		`, b.ID, b.Name)
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("upsert brands: %w", err)
	}
	return nil
}

// UpsertFuelTypes inserts or updates fuel types.
func (s *Store) UpsertFuelTypes(ctx context.Context, fuels []model.FuelType) error {
	if len(fuels) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, f := range fuels {
		batch.Queue(`
			INSERT INTO fuel_types (fuel_id, name)
			VALUES ($1, $2)
			ON CONFLICT (fuel_id) DO UPDATE SET name = EXCLUDED.name
		`, f.ID, f.Name)
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("upsert fuel types: %w", err)
	}
	return nil
}

// UpsertStations inserts or updates stations. A zero brand id is stored
// as NULL, and an existing brand is kept when the API stops sending one.
func (s *Store) UpsertStations(ctx context.Context, stations []model.Station) error {
	if len(stations) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, st := range stations {
		batch.Queue(`
			INSERT INTO stations (station_id, brand_id, name, address, postcode, latitude, longitude)
			VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7)
			ON CONFLICT (station_id) DO UPDATE SET
				brand_id  = COALESCE(EXCLUDED.brand_id, stations.brand_id),
				name      = EXCLUDED.name,
				address   = EXCLUDED.address,
				postcode  = EXCLUDED.postcode,
				latitude  = EXCLUDED.latitude,
				longitude = EXCLUDED.longitude
		`, st.ID, st.BrandID, st.Name, st.Address, st.Postcode, st.Latitude, st.Longitude)
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("upsert stations: %w", err)
	}
	return nil
}

// InsertObservations appends price observations. Rows already present
// (same station, fuel and transaction time) are skipped and counted as
// conflicts, so re-running with no new upstream data appends nothing.
func (s *Store) InsertObservations(ctx context.Context, obs []model.PriceObservation) (inserted, conflicts int, err error) {
	for start := 0; start < len(obs); start += s.batchSize {
		end := min(start+s.batchSize, len(obs))
		chunk := obs[start:end]

		chunkStart := time.Now()
		ins, conf, err := s.insertChunk(ctx, chunk)
		if err != nil {
			return inserted, conflicts, fmt.Errorf("insert observations: %w", err)
		}
		inserted += ins
		conflicts += conf

		s.logger.Debug("flushed observations",
			"count", len(chunk),
			"conflicts", conf,
			"duration", time.Since(chunkStart),
		)
	}

	return inserted, conflicts, nil
}

func (s *Store) insertChunk(ctx context.Context, obs []model.PriceObservation) (inserted, conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, o := range obs {
		batch.Queue(`
			INSERT INTO price_observations (station_id, fuel_id, observed_at, price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (station_id, fuel_id, observed_at) DO NOTHING
		`, o.StationID, o.FuelID, o.ObservedAt, o.Price)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range obs {
		ct, err := results.Exec()
		if err != nil {
			return 0, 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		} else {
			inserted++
		}
	}

	return inserted, conflicts, nil
}

// RecordRun persists the audit row for one collector invocation.
func (s *Store) RecordRun(ctx context.Context, run model.CollectionRun) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO collection_runs (run_id, started_at, finished_at, stations, observations, inserted, conflicts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.StartedAt, run.FinishedAt, run.Stations, run.Observations, run.Inserted, run.Conflicts)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// sendBatch executes a batch and drains all results.
func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

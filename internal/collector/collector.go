package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fueltrack/internal/api"
	"fueltrack/internal/model"
)

// PriceAPI is the slice of the fuel prices API the collector needs.
type PriceAPI interface {
	GetCountryBrands(ctx context.Context, countryID int) ([]api.APIBrand, error)
	GetCountryFuelTypes(ctx context.Context, countryID int) ([]api.APIFuel, error)
	GetFullSiteDetails(ctx context.Context, region api.Region) ([]api.APISite, error)
	GetSitesPrices(ctx context.Context, region api.Region) ([]api.APISitePrice, error)
}

// Storage receives the fetched data.
type Storage interface {
	UpsertBrands(ctx context.Context, brands []model.Brand) error
	UpsertFuelTypes(ctx context.Context, fuels []model.FuelType) error
	UpsertStations(ctx context.Context, stations []model.Station) error
	InsertObservations(ctx context.Context, obs []model.PriceObservation) (inserted, conflicts int, err error)
	RecordRun(ctx context.Context, run model.CollectionRun) error
}

// Collector runs one fetch-and-store cycle per invocation.
type Collector struct {
	client PriceAPI
	store  Storage
	region api.Region
	logger *slog.Logger
}

// New creates a Collector for the given region.
func New(client PriceAPI, store Storage, region api.Region, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		client: client,
		store:  store,
		region: region,
		logger: logger,
	}
}

// Run fetches reference data and current prices, stores them, and records
// the run. Any fetch or store failure aborts the run.
func (c *Collector) Run(ctx context.Context) (model.CollectionRun, error) {
	run := model.CollectionRun{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}

	c.logger.Info("collection run starting",
		"run_id", run.ID,
		"region_id", c.region.ID,
	)

	var (
		brands []api.APIBrand
		fuels  []api.APIFuel
		sites  []api.APISite
		prices []api.APISitePrice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		brands, err = c.client.GetCountryBrands(gctx, c.region.CountryID)
		return err
	})
	g.Go(func() (err error) {
		fuels, err = c.client.GetCountryFuelTypes(gctx, c.region.CountryID)
		return err
	})
	g.Go(func() (err error) {
		sites, err = c.client.GetFullSiteDetails(gctx, c.region)
		return err
	})
	g.Go(func() (err error) {
		prices, err = c.client.GetSitesPrices(gctx, c.region)
		return err
	})
	if err := g.Wait(); err != nil {
		return run, fmt.Errorf("fetch: %w", err)
	}

	obs, dropped := convertPrices(prices)
	obs = dedupObservations(obs)

	c.logger.Info("fetched",
		"brands", len(brands),
		"fuels", len(fuels),
		"stations", len(sites),
		"readings", len(prices),
		"observations", len(obs),
		"dropped", dropped,
	)

	// Reference data first: observations carry foreign keys into it.
	if err := c.store.UpsertBrands(ctx, convertBrands(brands)); err != nil {
		return run, err
	}
	if err := c.store.UpsertFuelTypes(ctx, convertFuels(fuels)); err != nil {
		return run, err
	}
	if err := c.store.UpsertStations(ctx, convertSites(sites)); err != nil {
		return run, err
	}

	inserted, conflicts, err := c.store.InsertObservations(ctx, obs)
	if err != nil {
		return run, err
	}

	run.FinishedAt = time.Now().UTC()
	run.Stations = len(sites)
	run.Observations = len(obs)
	run.Inserted = inserted
	run.Conflicts = conflicts

	if err := c.store.RecordRun(ctx, run); err != nil {
		return run, err
	}

	c.logger.Info("collection run complete",
		"run_id", run.ID,
		"observations", run.Observations,
		"inserted", run.Inserted,
		"conflicts", run.Conflicts,
		"duration", run.FinishedAt.Sub(run.StartedAt),
	)

	return run, nil
}

func convertBrands(in []api.APIBrand) []model.Brand {
	out := make([]model.Brand, 0, len(in))
	for _, b := range in {
		out = append(out, b.ToModel())
	}
	return out
}

func convertFuels(in []api.APIFuel) []model.FuelType {
	out := make([]model.FuelType, 0, len(in))
	for _, f := range in {
		out = append(out, f.ToModel())
	}
	return out
}

func convertSites(in []api.APISite) []model.Station {
	out := make([]model.Station, 0, len(in))
	for _, s := range in {
		out = append(out, s.ToModel())
	}
	return out
}

// convertPrices converts API readings, dropping invalid ones.
func convertPrices(in []api.APISitePrice) (obs []model.PriceObservation, dropped int) {
	obs = make([]model.PriceObservation, 0, len(in))
	for _, p := range in {
		o, ok := p.ToObservation()
		if !ok {
			dropped++
			continue
		}
		obs = append(obs, o)
	}
	return obs, dropped
}

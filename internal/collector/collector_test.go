package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fueltrack/internal/api"
	"fueltrack/internal/model"
)

// fakeStorage emulates the append-only store, including the conflict
// behavior of the observations table.
type fakeStorage struct {
	brands   []model.Brand
	fuels    []model.FuelType
	stations []model.Station
	rows     map[obsKey]model.PriceObservation
	runs     []model.CollectionRun

	upsertCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{rows: make(map[obsKey]model.PriceObservation)}
}

func (f *fakeStorage) UpsertBrands(_ context.Context, brands []model.Brand) error {
	f.upsertCalls++
	f.brands = brands
	return nil
}

func (f *fakeStorage) UpsertFuelTypes(_ context.Context, fuels []model.FuelType) error {
	f.upsertCalls++
	f.fuels = fuels
	return nil
}

func (f *fakeStorage) UpsertStations(_ context.Context, stations []model.Station) error {
	f.upsertCalls++
	f.stations = stations
	return nil
}

func (f *fakeStorage) InsertObservations(_ context.Context, obs []model.PriceObservation) (int, int, error) {
	var inserted, conflicts int
	for _, o := range obs {
		k := obsKey{station: o.StationID, fuel: o.FuelID, unix: o.ObservedAt.UnixMicro()}
		if _, exists := f.rows[k]; exists {
			conflicts++
			continue
		}
		f.rows[k] = o
		inserted++
	}
	return inserted, conflicts, nil
}

func (f *fakeStorage) RecordRun(_ context.Context, run model.CollectionRun) error {
	f.runs = append(f.runs, run)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/Subscriber/GetCountryBrands", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Brands":[{"BrandId":2,"Name":"Caltex"}]}`))
	})
	mux.HandleFunc("/Subscriber/GetCountryFuelTypes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Fuels":[{"FuelId":2,"Name":"Unleaded"},{"FuelId":3,"Name":"Diesel"}]}`))
	})
	mux.HandleFunc("/Subscriber/GetFullSiteDetails", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"S":[
			{"S":100,"B":2,"N":"Servo A","A":"1 A St","P":"4870","Lat":-16.9,"Lng":145.7},
			{"S":200,"B":2,"N":"Servo B","A":"2 B St","P":"4870","Lat":-16.95,"Lng":145.75}
		]}`))
	})
	mux.HandleFunc("/Price/GetSitesPrices", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"SitePrices":[
			{"SiteId":100,"FuelId":2,"TransactionDateUtc":"2025-06-01T03:30:00Z","Price":1859.0},
			{"SiteId":100,"FuelId":3,"TransactionDateUtc":"2025-06-01T03:30:00Z","Price":1799.0},
			{"SiteId":200,"FuelId":2,"TransactionDateUtc":"2025-06-01T02:00:00Z","Price":1849.0},
			{"SiteId":200,"FuelId":2,"TransactionDateUtc":"2025-06-01T02:00:00Z","Price":1851.0},
			{"SiteId":0,"FuelId":2,"TransactionDateUtc":"2025-06-01T02:00:00Z","Price":1849.0}
		]}`))
	})

	return httptest.NewServer(mux)
}

func TestCollectorRun(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "test-token", api.WithTimeout(5*time.Second))
	storage := newFakeStorage()
	region := api.Region{CountryID: 21, Level: 2, ID: 16}

	c := New(client, storage, region, nil)

	run, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 5 readings: one invalid (site 0), one in-run duplicate. 3 survive.
	if run.Observations != 3 {
		t.Errorf("Observations = %d, want 3", run.Observations)
	}
	if run.Inserted != 3 {
		t.Errorf("Inserted = %d, want 3", run.Inserted)
	}
	if run.Conflicts != 0 {
		t.Errorf("Conflicts = %d, want 0", run.Conflicts)
	}
	if len(storage.rows) != 3 {
		t.Errorf("stored rows = %d, want exactly one per observation (3)", len(storage.rows))
	}

	// The in-run duplicate keeps the last reading.
	k := obsKey{station: 200, fuel: 2, unix: time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC).UnixMicro()}
	if got := storage.rows[k].Price; got != 1851 {
		t.Errorf("duplicate reading price = %d, want last occurrence 1851", got)
	}

	if len(storage.brands) != 1 || len(storage.fuels) != 2 || len(storage.stations) != 2 {
		t.Errorf("reference counts = (%d brands, %d fuels, %d stations), want (1, 2, 2)",
			len(storage.brands), len(storage.fuels), len(storage.stations))
	}

	if len(storage.runs) != 1 {
		t.Fatalf("recorded runs = %d, want 1", len(storage.runs))
	}
	if storage.runs[0].ID != run.ID {
		t.Error("recorded run id does not match returned run")
	}
}

// TestCollectorRerun pins the duplicate policy: a second run over the same
// upstream data appends nothing.
func TestCollectorRerun(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "test-token")
	storage := newFakeStorage()
	region := api.Region{CountryID: 21, Level: 2, ID: 16}

	c := New(client, storage, region, nil)
	ctx := context.Background()

	if _, err := c.Run(ctx); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	run2, err := c.Run(ctx)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if run2.Inserted != 0 {
		t.Errorf("second run Inserted = %d, want 0", run2.Inserted)
	}
	if run2.Conflicts != 3 {
		t.Errorf("second run Conflicts = %d, want 3", run2.Conflicts)
	}
	if len(storage.rows) != 3 {
		t.Errorf("stored rows after rerun = %d, want 3", len(storage.rows))
	}
}

func TestCollectorFetchFailureAborts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewClient(server.URL, "test-token", api.WithRetries(0, time.Millisecond))
	storage := newFakeStorage()

	c := New(client, storage, api.Region{CountryID: 21, Level: 2, ID: 16}, nil)

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatal("expected error when the source is unreachable")
	}
	if storage.upsertCalls != 0 {
		t.Errorf("upsertCalls = %d, want 0 (aborted run must not write)", storage.upsertCalls)
	}
	if len(storage.rows) != 0 {
		t.Errorf("stored rows = %d, want 0", len(storage.rows))
	}
	if len(storage.runs) != 0 {
		t.Errorf("recorded runs = %d, want 0", len(storage.runs))
	}
}

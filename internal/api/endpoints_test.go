package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestEndpoints exercises each API endpoint against recorded response shapes.
func TestEndpoints(t *testing.T) {
	region := Region{CountryID: 21, Level: 2, ID: 16}

	mux := http.NewServeMux()
	mux.HandleFunc("/Subscriber/GetCountryBrands", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("countryId"); got != "21" {
			t.Errorf("countryId = %q, want %q", got, "21")
		}
		w.Write([]byte(`{"Brands":[{"BrandId":2,"Name":"Caltex"},{"BrandId":5,"Name":"BP"}]}`))
	})
	mux.HandleFunc("/Subscriber/GetCountryFuelTypes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Fuels":[{"FuelId":2,"Name":"Unleaded"},{"FuelId":3,"Name":"Diesel"}]}`))
	})
	mux.HandleFunc("/Subscriber/GetFullSiteDetails", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("geoRegionLevel") != "2" || q.Get("geoRegionId") != "16" {
			t.Errorf("region query = %v, want level 2 id 16", q)
		}
		w.Write([]byte(`{"S":[{"S":61401234,"B":2,"N":"Test Servo","A":"1 Sheridan St","P":"4870","Lat":-16.92,"Lng":145.77}]}`))
	})
	mux.HandleFunc("/Price/GetSitesPrices", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"SitePrices":[{"SiteId":61401234,"FuelId":2,"TransactionDateUtc":"2025-06-01T03:30:00Z","Price":1859.0}]}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, "test-token")
	ctx := context.Background()

	t.Run("GetCountryBrands", func(t *testing.T) {
		brands, err := c.GetCountryBrands(ctx, region.CountryID)
		if err != nil {
			t.Fatalf("GetCountryBrands failed: %v", err)
		}
		if len(brands) != 2 {
			t.Fatalf("len(brands) = %d, want 2", len(brands))
		}
		if brands[0].BrandID != 2 || brands[0].Name != "Caltex" {
			t.Errorf("brands[0] = %+v, want {2 Caltex}", brands[0])
		}
	})

	t.Run("GetCountryFuelTypes", func(t *testing.T) {
		fuels, err := c.GetCountryFuelTypes(ctx, region.CountryID)
		if err != nil {
			t.Fatalf("GetCountryFuelTypes failed: %v", err)
		}
		if len(fuels) != 2 {
			t.Fatalf("len(fuels) = %d, want 2", len(fuels))
		}
	})

	t.Run("GetFullSiteDetails", func(t *testing.T) {
		sites, err := c.GetFullSiteDetails(ctx, region)
		if err != nil {
			t.Fatalf("GetFullSiteDetails failed: %v", err)
		}
		if len(sites) != 1 {
			t.Fatalf("len(sites) = %d, want 1", len(sites))
		}
		s := sites[0]
		if s.SiteID != 61401234 || s.Name != "Test Servo" || s.Postcode != "4870" {
			t.Errorf("site = %+v, want id 61401234 name Test Servo postcode 4870", s)
		}
	})

	t.Run("GetSitesPrices", func(t *testing.T) {
		prices, err := c.GetSitesPrices(ctx, region)
		if err != nil {
			t.Fatalf("GetSitesPrices failed: %v", err)
		}
		if len(prices) != 1 {
			t.Fatalf("len(prices) = %d, want 1", len(prices))
		}
		p := prices[0]
		if p.SiteID != 61401234 || p.FuelID != 2 || p.Price != 1859.0 {
			t.Errorf("price = %+v, want site 61401234 fuel 2 price 1859", p)
		}
	})
}

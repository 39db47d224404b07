package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetCountryBrands fetches all retailer brands for a country.
func (c *Client) GetCountryBrands(ctx context.Context, countryID int) ([]APIBrand, error) {
	query := url.Values{}
	query.Set("countryId", strconv.Itoa(countryID))

	var resp BrandsResponse
	if err := c.get(ctx, "/Subscriber/GetCountryBrands", query, &resp); err != nil {
		return nil, fmt.Errorf("get country brands: %w", err)
	}

	return resp.Brands, nil
}

// GetCountryFuelTypes fetches all fuel types for a country.
func (c *Client) GetCountryFuelTypes(ctx context.Context, countryID int) ([]APIFuel, error) {
	query := url.Values{}
	query.Set("countryId", strconv.Itoa(countryID))

	var resp FuelTypesResponse
	if err := c.get(ctx, "/Subscriber/GetCountryFuelTypes", query, &resp); err != nil {
		return nil, fmt.Errorf("get country fuel types: %w", err)
	}

	return resp.Fuels, nil
}

// GetFullSiteDetails fetches details for every site in a region.
func (c *Client) GetFullSiteDetails(ctx context.Context, region Region) ([]APISite, error) {
	var resp SiteDetailsResponse
	if err := c.get(ctx, "/Subscriber/GetFullSiteDetails", regionQuery(region), &resp); err != nil {
		return nil, fmt.Errorf("get full site details: %w", err)
	}

	return resp.Sites, nil
}

func regionQuery(region Region) url.Values {
	query := url.Values{}
	query.Set("countryId", strconv.Itoa(region.CountryID))
	query.Set("geoRegionLevel", strconv.Itoa(region.Level))
	query.Set("geoRegionId", strconv.Itoa(region.ID))
	return query
}

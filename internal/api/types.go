package api

// Region identifies the geographic region prices are collected for.
type Region struct {
	CountryID int // Country (21 = Australia)
	Level     int // geoRegionLevel (2 = city)
	ID        int // geoRegionId within the level
}

// BrandsResponse from GET /Subscriber/GetCountryBrands
type BrandsResponse struct {
	Brands []APIBrand `json:"Brands"`
}

// APIBrand represents a retailer brand from the API.
type APIBrand struct {
	BrandID int    `json:"BrandId"`
	Name    string `json:"Name"`
}

// FuelTypesResponse from GET /Subscriber/GetCountryFuelTypes
type FuelTypesResponse struct {
	Fuels []APIFuel `json:"Fuels"`
}

// APIFuel represents a fuel type from the API.
type APIFuel struct {
	FuelID int    `json:"FuelId"`
	Name   string `json:"Name"`
}

// SiteDetailsResponse from GET /Subscriber/GetFullSiteDetails.
// The API uses single-letter keys on this endpoint.
type SiteDetailsResponse struct {
	Sites []APISite `json:"S"`
}

// APISite represents a fuel station from the API.
type APISite struct {
	SiteID    int64   `json:"S"`
	BrandID   int     `json:"B"`
	Name      string  `json:"N"`
	Address   string  `json:"A"`
	Postcode  string  `json:"P"`
	Latitude  float64 `json:"Lat"`
	Longitude float64 `json:"Lng"`
}

// SitePricesResponse from GET /Price/GetSitesPrices
type SitePricesResponse struct {
	SitePrices []APISitePrice `json:"SitePrices"`
}

// APISitePrice represents a current price reading at a site.
type APISitePrice struct {
	SiteID int64 `json:"SiteId"`
	FuelID int   `json:"FuelId"`

	// ISO 8601 UTC timestamp of the upstream transaction
	TransactionDateUTC string `json:"TransactionDateUtc"`

	// Price in tenths of a cent per litre
	Price float64 `json:"Price"`
}

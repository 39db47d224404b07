package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL     = "https://fppdirectapi-prod.fuelpricesqld.com.au"
	DefaultCountryID   = 21 // Australia
	DefaultRegionLevel = 2
	DefaultAPITimeout  = 30 * time.Second
	DefaultMaxRetries  = 3

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2

	DefaultBatchSize = 2000

	DefaultWindowDays = 30
	DefaultMaxPrice   = 5000 // $5.00/L, anything above is a bad upstream reading
	DefaultOutputPath = "plots/fuel_price_trend.png"
	DefaultPlotWidth  = 1280
	DefaultPlotHeight = 720
	DefaultTimezone   = "Australia/Brisbane"

	DefaultLogLevel = "info"
)

// DefaultExcludeFuels lists premium blends with too few observations to chart.
var DefaultExcludeFuels = []string{
	"Premium Diesel",
	"Premium Unleaded 95",
	"Premium Unleaded 98",
	"LPG",
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.CountryID == 0 {
		c.API.CountryID = DefaultCountryID
	}
	if c.API.RegionLevel == 0 {
		c.API.RegionLevel = DefaultRegionLevel
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Collector defaults
	if c.Collector.BatchSize == 0 {
		c.Collector.BatchSize = DefaultBatchSize
	}

	// Plot defaults
	if c.Plot.WindowDays == 0 {
		c.Plot.WindowDays = DefaultWindowDays
	}
	if c.Plot.MaxPrice == 0 {
		c.Plot.MaxPrice = DefaultMaxPrice
	}
	if c.Plot.ExcludeFuels == nil {
		c.Plot.ExcludeFuels = DefaultExcludeFuels
	}
	if c.Plot.OutputPath == "" {
		c.Plot.OutputPath = DefaultOutputPath
	}
	if c.Plot.Width == 0 {
		c.Plot.Width = DefaultPlotWidth
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = DefaultPlotHeight
	}
	if c.Plot.Timezone == "" {
		c.Plot.Timezone = DefaultTimezone
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

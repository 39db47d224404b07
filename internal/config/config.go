package config

import "time"

// Config is the root configuration shared by the collector and plotter.
type Config struct {
	Instance  InstanceConfig  `yaml:"instance"`
	API       APIConfig       `yaml:"api"`
	Database  DBConfig        `yaml:"database"`
	Collector CollectorConfig `yaml:"collector"`
	Plot      PlotConfig      `yaml:"plot"`
	Log       LogConfig       `yaml:"log"`
}

// InstanceConfig identifies this pipeline instance.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds fuel prices API settings.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Token       string        `yaml:"token"`      // Subscriber token (usually via ${FUEL_API_TOKEN})
	TokenFile   string        `yaml:"token_file"` // Fallback file read when token is empty
	CountryID   int           `yaml:"country_id"`
	RegionLevel int           `yaml:"region_level"` // Geographic region level (2 = city)
	RegionID    int           `yaml:"region_id"`    // Region to collect prices for
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// CollectorConfig holds collector run settings.
type CollectorConfig struct {
	BatchSize int `yaml:"batch_size"` // Rows per insert batch
}

// PlotConfig holds trend chart settings.
type PlotConfig struct {
	WindowDays   int      `yaml:"window_days"`   // Trailing window queried for the chart
	MaxPrice     int      `yaml:"max_price"`     // Outlier cutoff, tenths of a cent per litre
	ExcludeFuels []string `yaml:"exclude_fuels"` // Fuel names dropped from the chart
	OutputPath   string   `yaml:"output_path"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Timezone     string   `yaml:"timezone"` // IANA name used for day bucketing
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Token == "" && c.API.TokenFile == "" {
		return errors.New("api.token or api.token_file is required")
	}
	if c.API.CountryID < 1 {
		return errors.New("api.country_id must be >= 1")
	}
	if c.API.RegionID < 1 {
		return errors.New("api.region_id is required")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Collector.BatchSize < 1 {
		return errors.New("collector.batch_size must be >= 1")
	}

	if c.Plot.WindowDays < 1 {
		return errors.New("plot.window_days must be >= 1")
	}
	if c.Plot.MaxPrice < 1 {
		return errors.New("plot.max_price must be >= 1")
	}
	if c.Plot.Width < 1 || c.Plot.Height < 1 {
		return errors.New("plot.width and plot.height must be >= 1")
	}
	if _, err := time.LoadLocation(c.Plot.Timezone); err != nil {
		return fmt.Errorf("plot.timezone %q is not a valid IANA name: %w", c.Plot.Timezone, err)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}

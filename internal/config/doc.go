// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Secrets (the API subscriber token) resolve from the expanded config value first
// and fall back to a token file on disk.
package config

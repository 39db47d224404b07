// Package api provides a client for the Queensland fuel prices REST API.
//
// All requests carry a subscriber token in the Authorization header.
// Retryable failures (5xx, 429) are retried with exponential backoff
// and jitter up to a configured maximum.
package api

// Package collector orchestrates a single fetch-and-store run: reference
// data and current prices are fetched concurrently, invalid and duplicate
// readings are dropped, and everything is handed to storage in one pass.
//
// Runs are triggered externally; the collector has no internal schedule.
package collector

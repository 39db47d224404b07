// Package model defines shared data types used across the fueltrack pipeline.
//
// Prices are stored in the API's native unit (tenths of a cent per litre) as
// integers; conversion to dollars per litre happens only at render time.
// Timestamps are UTC.
package model

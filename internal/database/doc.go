// Package database provides connection pool management and schema
// migrations for the PostgreSQL price database.
//
// Migrations are embedded in the binary and applied on collector startup.
package database

// Package db provides database connection helpers for the snapshot
// store's PostgreSQL backend.
package db

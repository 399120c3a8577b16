// Package persistence provides the GORM-backed repository implementations
// and database connection management for the therapy companion service.
package persistence

// Package models contains the GORM database models and their conversions to
// and from the domain entities. Keeping the schema concerns here lets the
// domain packages stay free of persistence tags.
package models

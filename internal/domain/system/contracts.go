// Package system contains the operational surface of the service, i.e.
// the record counts reported to administrators.
package system

import "context"

// Stats holds record counts across the whole service.
type Stats struct {
	Therapists       int64 `json:"therapists"`
	Patients         int64 `json:"patients"`
	CheckIns         int64 `json:"checkins"`
	ReportsGenerated int64 `json:"reports_generated"`
}

// StatsService reports service-wide record counts. Admin only.
type StatsService interface {
	Collect(ctx context.Context) (*Stats, error)
}

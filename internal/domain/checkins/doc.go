// Package checkins contains the daily check-in entity, ISO-week handling and
// weekly aggregation used by the tracking and reporting features.
package checkins

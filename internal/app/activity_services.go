package app

import (
	"context"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/pkg/logger"
)

type clientIPKey struct{}

// WithClientIP stores the requesting client's IP on the context so audit
// entries written further down the call chain can carry it.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func clientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

// activityRecorder implements the activity Recorder interface
type activityRecorder struct {
	activityRepo activity.Repository
	logger       logger.Logger
}

// NewActivityRecorder creates a new instance of the activity Recorder
func NewActivityRecorder(activityRepo activity.Repository, logger logger.Logger) (activity.Recorder, error) {
	return &activityRecorder{
		activityRepo: activityRepo,
		logger:       logger,
	}, nil
}

// Record appends an audit entry. Failures are logged and swallowed so a
// broken audit store never fails the operation being audited.
func (r *activityRecorder) Record(ctx context.Context, entryType string, data map[string]interface{}) {
	entry := &activity.Entry{
		Type:      entryType,
		Data:      data,
		IPAddress: clientIPFromContext(ctx),
		CreatedAt: time.Now(),
	}

	if err := r.activityRepo.Create(ctx, entry); err != nil {
		r.logger.Warn("Failed to record activity ", entryType, ": ", err)
	}
}

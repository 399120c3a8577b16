//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCheckInRepository_Upsert(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	checkin := CreateTestCheckIn(t, "PT-001", "2025-01-06")
	err := ctx.CheckInRepo.Upsert(context.Background(), checkin)
	require.NoError(t, err)

	listed, err := ctx.CheckInRepo.ListByPatient(context.Background(), "PT-001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 4, listed[0].Emotional.Value)
	assert.Equal(t, "steady morning", listed[0].Emotional.Notes)
}

func TestGormCheckInRepository_Upsert_SameDayReplaces(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestCheckIn(t, "PT-001", "2025-01-06")
	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), first))

	second := CreateTestCheckIn(t, "PT-001", "2025-01-06")
	second.Time = "18:45"
	second.Emotional = checkins.Rating{Value: 2, Notes: "rough evening"}
	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), second))

	listed, err := ctx.CheckInRepo.ListByPatient(context.Background(), "PT-001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "18:45", listed[0].Time)
	assert.Equal(t, 2, listed[0].Emotional.Value)
	assert.Equal(t, "rough evening", listed[0].Emotional.Notes)

	count, err := ctx.CheckInRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormCheckInRepository_ListByPatient_Empty(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	listed, err := ctx.CheckInRepo.ListByPatient(context.Background(), "PT-001")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGormCheckInRepository_ListByPatientAndDates(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for _, date := range []string{"2025-01-06", "2025-01-07", "2025-01-13"} {
		require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), CreateTestCheckIn(t, "PT-001", date)))
	}
	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), CreateTestCheckIn(t, "PT-002", "2025-01-06")))

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	listed, err := ctx.CheckInRepo.ListByPatientAndDates(context.Background(), "PT-001", week.Dates())
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	all, err := ctx.CheckInRepo.ListByPatient(context.Background(), "PT-001")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGormCheckInRepository_DeleteByPatientID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), CreateTestCheckIn(t, "PT-001", "2025-01-06")))
	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), CreateTestCheckIn(t, "PT-001", "2025-01-07")))
	require.NoError(t, ctx.CheckInRepo.Upsert(context.Background(), CreateTestCheckIn(t, "PT-002", "2025-01-06")))

	err := ctx.CheckInRepo.DeleteByPatientID(context.Background(), "PT-001")
	require.NoError(t, err)

	remaining, err := ctx.CheckInRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}

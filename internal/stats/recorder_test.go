package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"support-responder/internal/common/logger"
	"support-responder/internal/models"
)

func newTestRecorder(t *testing.T) (*Recorder, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	rec := NewRecorder(client, logger.NewZapAdapter(zaptest.NewLogger(t)))
	rec.now = func() time.Time {
		return time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	}
	return rec, mr
}

func TestRecordRouted(t *testing.T) {
	rec, mr := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordRouted(ctx, models.CategoryComplaint)
	rec.RecordRouted(ctx, models.CategoryComplaint)
	rec.RecordRouted(ctx, models.CategoryGeneralPricing)

	complaints, err := mr.Get("stats:category:complaint")
	require.NoError(t, err)
	assert.Equal(t, "2", complaints)

	pricing, err := mr.Get("stats:category:general_pricing_queries")
	require.NoError(t, err)
	assert.Equal(t, "1", pricing)

	daily, err := mr.Get("stats:daily:2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, "3", daily)
}

func TestSnapshot(t *testing.T) {
	rec, _ := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordRouted(ctx, models.CategoryFeedback)
	rec.RecordRouted(ctx, models.CategoryFeedback)

	snapshot, err := rec.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), snapshot["feedback"])
	assert.Equal(t, int64(0), snapshot["complaint"], "untouched categories report zero")
	assert.Len(t, snapshot, len(models.AllCategories))
}

func TestDailyVolume(t *testing.T) {
	rec, _ := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordRouted(ctx, models.CategoryComplaint)
	rec.RecordRouted(ctx, models.CategoryFeedback)

	volume, err := rec.DailyVolume(ctx)
	require.NoError(t, err)

	assert.Len(t, volume, 7)
	assert.Equal(t, int64(2), volume["2026-03-05"])
	assert.Equal(t, int64(0), volume["2026-03-04"], "quiet days report zero")
}

func TestRecordRoutedSurvivesRedisOutage(t *testing.T) {
	rec, mr := newTestRecorder(t)
	mr.Close()

	// Must not panic or block; recording is best-effort.
	rec.RecordRouted(context.Background(), models.CategoryFallback)
}

// internal/stats/recorder.go
package stats

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"support-responder/internal/common/logger"
	"support-responder/internal/models"
)

const (
	categoryKeyPrefix = "stats:category:"
	dailyKeyPrefix    = "stats:daily:"
	dayLayout         = "2006-01-02"

	// volumeWindowDays bounds the daily volume report.
	volumeWindowDays = 7
)

// Recorder keeps running per-category counters and a daily volume
// counter in Redis. Recording is best-effort: a Redis failure is
// logged and never surfaces into the response path.
type Recorder struct {
	client *redis.Client
	logger logger.Logger
	now    func() time.Time
}

func NewRecorder(client *redis.Client, log logger.Logger) *Recorder {
	return &Recorder{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "stats"}),
		now:    time.Now,
	}
}

// RecordRouted bumps the counter for category and today's volume.
func (r *Recorder) RecordRouted(ctx context.Context, category models.Category) {
	pipe := r.client.Pipeline()
	pipe.Incr(ctx, categoryKeyPrefix+category.String())
	pipe.Incr(ctx, dailyKeyPrefix+r.now().Format(dayLayout))
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.WithError(err).Warn("failed to record routing stats", map[string]interface{}{
			"category": category.String(),
		})
	}
}

// Snapshot returns the current per-category counts. Categories with no
// traffic yet report zero.
func (r *Recorder) Snapshot(ctx context.Context) (map[string]int64, error) {
	keys := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		keys[i] = categoryKeyPrefix + c.String()
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]int64, len(models.AllCategories))
	for i, c := range models.AllCategories {
		var count int64
		if i < len(values) && values[i] != nil {
			if s, ok := values[i].(string); ok {
				count, _ = strconv.ParseInt(s, 10, 64)
			}
		}
		snapshot[c.String()] = count
	}
	return snapshot, nil
}

// DailyVolume returns the routed-query counts for the last seven days,
// keyed by date. Days with no traffic report zero.
func (r *Recorder) DailyVolume(ctx context.Context) (map[string]int64, error) {
	today := r.now()
	days := make([]string, volumeWindowDays)
	keys := make([]string, volumeWindowDays)
	for i := 0; i < volumeWindowDays; i++ {
		day := today.AddDate(0, 0, -i).Format(dayLayout)
		days[i] = day
		keys[i] = dailyKeyPrefix + day
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	volume := make(map[string]int64, volumeWindowDays)
	for i, day := range days {
		var count int64
		if i < len(values) && values[i] != nil {
			if s, ok := values[i].(string); ok {
				count, _ = strconv.ParseInt(s, 10, 64)
			}
		}
		volume[day] = count
	}
	return volume, nil
}

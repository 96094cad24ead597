// services/duration_stats.go
package services

import (
	"time"

	"github.com/gewnthar/bikeshare/models"
)

// ComputeDurationStats sums trip durations and averages them over the
// dataset. Both are whole seconds: the fractional part of the sum is
// truncated and the mean uses integer division. The mean of an empty
// dataset is reported as not applicable.
func ComputeDurationStats(ds models.FilteredDataset) models.DurationStats {
	started := time.Now()

	var sum float64
	for _, trip := range ds.Records {
		if trip.DurationSeconds > 0 {
			sum += trip.DurationSeconds
		}
	}

	stats := models.DurationStats{
		Trips:        ds.Len(),
		TotalSeconds: int64(sum),
	}
	stats.Total = models.NewHMS(stats.TotalSeconds)
	if stats.Trips > 0 {
		stats.MeanSeconds = stats.TotalSeconds / int64(stats.Trips)
		stats.Mean = models.NewHMS(stats.MeanSeconds)
		stats.MeanOK = true
	}
	stats.Elapsed = time.Since(started)
	return stats
}

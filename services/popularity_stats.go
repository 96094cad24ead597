// services/popularity_stats.go
package services

import (
	"time"

	"github.com/gewnthar/bikeshare/models"
)

var (
	calendarMonths = []time.Month{
		time.January, time.February, time.March, time.April, time.May, time.June,
		time.July, time.August, time.September, time.October, time.November, time.December,
	}
	dayHours = func() []int {
		h := make([]int, 24)
		for i := range h {
			h[i] = i
		}
		return h
	}()
)

// ComputePopularityStats counts rides and finds the most common month and
// weekday and the busiest and quietest hours of day.
func ComputePopularityStats(ds models.FilteredDataset) models.PopularityStats {
	started := time.Now()

	months := newCounter[time.Month]()
	weekdays := newCounter[time.Weekday]()
	hours := newCounter[int]()
	for _, trip := range ds.Records {
		months.add(trip.Month)
		weekdays.add(trip.Weekday)
		hours.add(trip.Hour)
	}

	return models.PopularityStats{
		Total:        ds.Len(),
		Month:        months.mostIn(calendarMonths),
		Weekday:      weekdays.mostIn(models.CanonicalWeekdays),
		BusiestHour:  hours.mostIn(dayHours),
		QuietestHour: hours.leastIn(dayHours),
		Elapsed:      time.Since(started),
	}
}

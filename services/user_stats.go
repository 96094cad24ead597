// services/user_stats.go
package services

import (
	"math"
	"sort"
	"time"

	"github.com/gewnthar/bikeshare/models"
)

// ComputeUserStats breaks trips down by user type, by gender (Subscriber
// trips only) and summarises birth years. A sub-report is left nil when the
// city's data has no such column; now supplies the year used for ages.
func ComputeUserStats(ds models.FilteredDataset, now time.Time) models.UserStats {
	started := time.Now()
	stats := models.UserStats{Total: ds.Len()}

	if ds.Columns.UserType {
		types := newCounter[string]()
		for _, trip := range ds.Records {
			types.add(string(trip.UserType))
		}
		stats.UserTypes = newBreakdown(types, ds.Len())
	}

	if ds.Columns.Gender {
		genders := newCounter[string]()
		subscribers := 0
		for _, trip := range ds.Records {
			if trip.UserType != models.UserTypeSubscriber {
				continue
			}
			subscribers++
			genders.add(string(trip.Gender))
		}
		stats.Gender = newBreakdown(genders, subscribers)
	}

	if ds.Columns.BirthYear {
		stats.BirthYears = birthYearStats(ds.Records, now.Year())
	}

	stats.Elapsed = time.Since(started)
	return stats
}

// newBreakdown turns counts into shares of total, largest first.
func newBreakdown(c *counter[string], total int) *models.Breakdown {
	b := &models.Breakdown{Total: total, Shares: make([]models.Share, 0, len(c.order))}
	for _, label := range c.order {
		count := c.counts[label]
		b.Shares = append(b.Shares, models.Share{
			Label:   label,
			Count:   count,
			Percent: Percent(count, total),
		})
	}
	sort.SliceStable(b.Shares, func(i, j int) bool {
		if b.Shares[i].Count != b.Shares[j].Count {
			return b.Shares[i].Count > b.Shares[j].Count
		}
		return b.Shares[i].Label < b.Shares[j].Label
	})
	return b
}

// Percent returns count/total*100 rounded to the nearest integer, or 0 when
// total is zero.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

func birthYearStats(trips []models.TripRecord, currentYear int) *models.BirthYearStats {
	years := make(map[int]int)
	for _, trip := range trips {
		if trip.HasBirthYear {
			years[trip.BirthYear]++
		}
	}
	if len(years) == 0 {
		return &models.BirthYearStats{}
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	// Ascending scan with a strict comparison keeps the smallest year on ties.
	mode := sorted[0]
	for _, y := range sorted[1:] {
		if years[y] > years[mode] {
			mode = y
		}
	}

	earliest, latest := sorted[0], sorted[len(sorted)-1]
	return &models.BirthYearStats{
		OK:              true,
		Earliest:        earliest,
		EarliestAge:     currentYear - earliest,
		Latest:          latest,
		LatestAge:       currentYear - latest,
		MostCommon:      mode,
		MostCommonAge:   currentYear - mode,
		MostCommonCount: years[mode],
	}
}

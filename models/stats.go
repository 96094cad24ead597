// models/stats.go
package models

import "time"

// ModeCount is the most (or least) frequent value of a field with its count.
// OK is false when the dataset had nothing to count ("not applicable").
type ModeCount[T comparable] struct {
	Value T
	Count int
	OK    bool
}

// PopularityStats covers ride counts and the popular times of travel.
type PopularityStats struct {
	Total        int
	Month        ModeCount[time.Month]
	Weekday      ModeCount[time.Weekday]
	BusiestHour  ModeCount[int]
	QuietestHour ModeCount[int]
	Elapsed      time.Duration
}

// StationStats covers the most used stations and route.
type StationStats struct {
	StartStation ModeCount[string]
	EndStation   ModeCount[string]
	Route        ModeCount[Route]
	Elapsed      time.Duration
}

// HMS is a whole number of seconds split into hours, minutes and seconds.
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// NewHMS splits total seconds. Negative totals are clamped to zero.
func NewHMS(totalSeconds int64) HMS {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return HMS{
		Hours:   totalSeconds / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

// TotalSeconds reverses NewHMS.
func (h HMS) TotalSeconds() int64 {
	return h.Hours*3600 + h.Minutes*60 + h.Seconds
}

// DurationStats covers total and mean trip duration.
type DurationStats struct {
	Trips        int
	TotalSeconds int64
	Total        HMS
	MeanSeconds  int64
	Mean         HMS
	MeanOK       bool // false for an empty dataset
	Elapsed      time.Duration
}

// Share is one category of a Breakdown.
type Share struct {
	Label   string
	Count   int
	Percent int // count/total*100 rounded to the nearest integer
}

// Breakdown is a count/percentage split of a categorical field.
type Breakdown struct {
	Total  int
	Shares []Share
}

// BirthYearStats summarises the birth years present in a dataset.
type BirthYearStats struct {
	OK              bool // false when no trip carries a birth year
	Earliest        int
	EarliestAge     int
	Latest          int
	LatestAge       int
	MostCommon      int
	MostCommonAge   int
	MostCommonCount int
}

// UserStats covers rider demographics. A nil sub-report means the city's
// trip log has no such column and the report must be omitted.
type UserStats struct {
	Total      int
	UserTypes  *Breakdown
	Gender     *Breakdown // Subscriber trips only
	BirthYears *BirthYearStats
	Elapsed    time.Duration
}

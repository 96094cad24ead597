// models/selection.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gewnthar/bikeshare/utils"
)

// City identifies one of the supported bike-share systems. The value is the
// normalised (lower case) name a user types.
type City string

const (
	Chicago    City = "chicago"
	NewYork    City = "new york"
	Washington City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYork, Washington}

// DefaultCityFiles maps each city to the file name of its trip log.
var DefaultCityFiles = map[City]string{
	Chicago:    "chicago.csv",
	NewYork:    "new_york_city.csv",
	Washington: "washington.csv",
}

// String returns the display name, e.g. "New York".
func (c City) String() string {
	return utils.DisplayName(string(c))
}

// ParseCity accepts a city name in any case.
func ParseCity(input string) (City, error) {
	key := City(utils.NormalizeInput(input))
	for _, c := range Cities {
		if c == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown city %q", ErrInvalidSelection, input)
}

// DatasetMonths is the canonical Jan->Jun ordering covered by the trip logs.
// It doubles as the tie-break order for the most common month.
var DatasetMonths = []time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
}

// CanonicalWeekdays orders days Monday first; used for prompts and tie-breaks.
var CanonicalWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// MonthFilter is either "all months" (the zero value) or a single month.
type MonthFilter struct {
	set   bool
	month time.Month
}

// AllMonths disables month filtering.
var AllMonths = MonthFilter{}

// OnlyMonth restricts a selection to one month.
func OnlyMonth(m time.Month) MonthFilter {
	return MonthFilter{set: true, month: m}
}

func (f MonthFilter) IsAll() bool { return !f.set }
func (f MonthFilter) Month() time.Month { return f.month }
func (f MonthFilter) Matches(m time.Month) bool {
	return !f.set || f.month == m
}

func (f MonthFilter) String() string {
	if !f.set {
		return "All"
	}
	return f.month.String()
}

// ParseMonth accepts "all" or a month name from January to June.
func ParseMonth(input string) (MonthFilter, error) {
	key := utils.NormalizeInput(input)
	if key == "all" {
		return AllMonths, nil
	}
	for _, m := range DatasetMonths {
		if strings.ToLower(m.String()) == key {
			return OnlyMonth(m), nil
		}
	}
	return MonthFilter{}, fmt.Errorf("%w: unknown month %q", ErrInvalidSelection, input)
}

// DayFilter is either "all days" (the zero value) or a single weekday.
type DayFilter struct {
	set bool
	day time.Weekday
}

// AllDays disables weekday filtering.
var AllDays = DayFilter{}

// OnlyDay restricts a selection to one weekday.
func OnlyDay(d time.Weekday) DayFilter {
	return DayFilter{set: true, day: d}
}

func (f DayFilter) IsAll() bool { return !f.set }
func (f DayFilter) Day() time.Weekday { return f.day }
func (f DayFilter) Matches(d time.Weekday) bool {
	return !f.set || f.day == d
}

func (f DayFilter) String() string {
	if !f.set {
		return "All"
	}
	return f.day.String()
}

// ParseDay accepts "all" or a full weekday name.
func ParseDay(input string) (DayFilter, error) {
	key := utils.NormalizeInput(input)
	if key == "all" {
		return AllDays, nil
	}
	for _, d := range CanonicalWeekdays {
		if strings.ToLower(d.String()) == key {
			return OnlyDay(d), nil
		}
	}
	return DayFilter{}, fmt.Errorf("%w: unknown day %q", ErrInvalidSelection, input)
}

// Selection is the user's city/month/day choice. It is passed by value and
// never modified once captured.
type Selection struct {
	City  City
	Month MonthFilter
	Day   DayFilter
}

// Description renders the selection as shown in report headers,
// e.g. "City: New York | Month: All | Day: Wednesday".
func (s Selection) Description() string {
	return fmt.Sprintf("City: %s | Month: %s | Day: %s", s.City, s.Month, s.Day)
}

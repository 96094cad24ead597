// shell/report.go
package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/gewnthar/bikeshare/models"
	"github.com/gewnthar/bikeshare/utils"
)

const notApplicable = "n/a"

func (s *Shell) renderHeader(sel models.Selection) {
	status := sel.Description()
	fmt.Fprintln(s.out, status)
	fmt.Fprintln(s.out, strings.Repeat("-", len(status)))
	fmt.Fprintln(s.out)
}

func (s *Shell) section(title string) {
	s.palette.heading.Fprintln(s.out, title)
	fmt.Fprintln(s.out)
}

func (s *Shell) renderTiming(elapsed time.Duration) {
	fmt.Fprintln(s.out)
	s.palette.timing.Fprintf(s.out, "Calculation time: %.3fs\n", elapsed.Seconds())
	fmt.Fprintln(s.out)
}

func (s *Shell) row(label, value string) {
	fmt.Fprintf(s.out, "%-12s│ %s\n", label, value)
}

func rides(n int) string {
	return fmt.Sprintf("(%s rides)", utils.FormatCount(n))
}

func modeLine[T comparable](m models.ModeCount[T], format func(T) string) string {
	if !m.OK {
		return notApplicable
	}
	return format(m.Value) + " " + rides(m.Count)
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func formatHMS(h models.HMS) string {
	return fmt.Sprintf("%dh %dm %ds", h.Hours, h.Minutes, h.Seconds)
}

func (s *Shell) renderPopularity(stats models.PopularityStats) {
	s.section("Ride Count Statistics")

	s.row("Total Rides", utils.FormatCount(stats.Total))
	fmt.Fprintln(s.out)

	fmt.Fprintln(s.out, "Popular Times:")
	s.row("Month", modeLine(stats.Month, time.Month.String))
	s.row("Day", modeLine(stats.Weekday, time.Weekday.String))
	fmt.Fprintln(s.out)

	fmt.Fprintln(s.out, "Hours:")
	s.row("Busiest", modeLine(stats.BusiestHour, formatHour))
	s.row("Quietest", modeLine(stats.QuietestHour, formatHour))

	s.renderTiming(stats.Elapsed)
}

func (s *Shell) renderStations(stats models.StationStats) {
	s.section("Station Statistics")

	fmt.Fprintln(s.out, "Most Popular Stations:")
	s.row("Start", modeLine(stats.StartStation, func(v string) string { return v }))
	s.row("End", modeLine(stats.EndStation, func(v string) string { return v }))
	fmt.Fprintln(s.out)

	fmt.Fprintln(s.out, "Most Popular Route:")
	fmt.Fprintln(s.out, modeLine(stats.Route, models.Route.String))

	s.renderTiming(stats.Elapsed)
}

func (s *Shell) renderDurations(stats models.DurationStats) {
	s.section("Trip Duration Statistics")

	s.row("Total Time", formatHMS(stats.Total))
	mean := notApplicable
	if stats.MeanOK {
		mean = formatHMS(stats.Mean)
	}
	s.row("Average Time", mean)

	s.renderTiming(stats.Elapsed)
}

func (s *Shell) renderBreakdown(title string, b *models.Breakdown) {
	fmt.Fprintln(s.out, title)
	for _, share := range b.Shares {
		fmt.Fprintf(s.out, "%-10s  │ %s (%d%%)\n", share.Label, utils.FormatCount(share.Count), share.Percent)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) renderUsers(stats models.UserStats) {
	s.section("User Statistics")

	switch {
	case stats.UserTypes == nil:
		s.palette.notice.Fprintln(s.out, "* User type data missing/unavailable for your selection")
	case len(stats.UserTypes.Shares) == 0:
		fmt.Fprintln(s.out, "User Types:")
		fmt.Fprintln(s.out, notApplicable)
		fmt.Fprintln(s.out)
	default:
		s.renderBreakdown("User Types:", stats.UserTypes)
	}

	if stats.Gender == nil || len(stats.Gender.Shares) == 0 {
		s.palette.notice.Fprintln(s.out, "* Subscriber gender data missing/unavailable for your selection")
	} else {
		s.renderBreakdown("Subscriber gender:", stats.Gender)
	}

	if stats.BirthYears == nil || !stats.BirthYears.OK {
		s.palette.notice.Fprintln(s.out, "* Birth year data missing/unavailable for your selection")
	} else {
		by := stats.BirthYears
		fmt.Fprintln(s.out, "Birth year:")
		s.row("Earliest", fmt.Sprintf("%d (current age: %d)", by.Earliest, by.EarliestAge))
		s.row("Latest", fmt.Sprintf("%d (current age: %d)", by.Latest, by.LatestAge))
		s.row("Most Common", fmt.Sprintf("%d (current age: %d) %s", by.MostCommon, by.MostCommonAge, rides(by.MostCommonCount)))
	}

	s.renderTiming(stats.Elapsed)
}

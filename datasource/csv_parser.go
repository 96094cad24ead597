// datasource/csv_parser.go
package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gewnthar/bikeshare/models"
	"github.com/jszwec/csvutil"
)

// Header names used by the city trip logs.
const (
	headerStartTime    = "Start Time"
	headerEndTime      = "End Time"
	headerTripDuration = "Trip Duration"
	headerStartStation = "Start Station"
	headerEndStation   = "End Station"
	headerUserType     = "User Type"
	headerGender       = "Gender"
	headerBirthYear    = "Birth Year"
)

var requiredHeaders = []string{headerStartTime, headerStartStation, headerEndStation}

// tripRow mirrors one CSV line. Values stay strings so that blank and
// malformed optional fields can be coerced instead of failing the decode.
// The unnamed index column some files carry is not mapped and is ignored.
type tripRow struct {
	StartTime    string `csv:"Start Time"`
	EndTime      string `csv:"End Time"`
	TripDuration string `csv:"Trip Duration"`
	StartStation string `csv:"Start Station"`
	EndStation   string `csv:"End Station"`
	UserType     string `csv:"User Type"`
	Gender       string `csv:"Gender"`
	BirthYear    string `csv:"Birth Year"`
}

// ParseTripsCsv decodes a city trip log and derives month, weekday and hour
// for every record. Optional columns (User Type, Gender, Birth Year, End
// Time, Trip Duration) may be absent; the returned Columns says which of the
// optional demographic fields were present.
func ParseTripsCsv(reader io.Reader) ([]models.TripRecord, models.Columns, error) {
	var columns models.Columns

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, columns, fmt.Errorf("trip CSV is empty")
		}
		return nil, columns, fmt.Errorf("failed to create CSV decoder for trips: %w", err)
	}

	present := make(map[string]bool, len(decoder.Header()))
	for _, h := range decoder.Header() {
		present[strings.TrimSpace(h)] = true
	}
	for _, h := range requiredHeaders {
		if !present[h] {
			return nil, columns, fmt.Errorf("trip CSV is missing required column %q", h)
		}
	}
	columns = models.Columns{
		UserType:  present[headerUserType],
		Gender:    present[headerGender],
		BirthYear: present[headerBirthYear],
	}
	hasDuration := present[headerTripDuration]

	var trips []models.TripRecord
	for i := 0; ; i++ {
		var row tripRow
		if err := decoder.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, columns, fmt.Errorf("failed to decode trip row %d: %w", i+1, err)
		}

		trip, err := toTripRecord(i, row, hasDuration)
		if err != nil {
			return nil, columns, fmt.Errorf("trip row %d: %w", i+1, err)
		}
		trips = append(trips, trip)
	}

	return trips, columns, nil
}

func toTripRecord(index int, row tripRow, hasDuration bool) (models.TripRecord, error) {
	start, err := time.Parse(models.TimeLayout, strings.TrimSpace(row.StartTime))
	if err != nil {
		return models.TripRecord{}, fmt.Errorf("invalid start time %q: %w", row.StartTime, err)
	}
	// End time is informational; an unparseable value is left zero.
	end, _ := time.Parse(models.TimeLayout, strings.TrimSpace(row.EndTime))

	var duration float64
	if hasDuration {
		duration = parseDuration(row.TripDuration)
	} else if !end.IsZero() {
		duration = math.Max(0, end.Sub(start).Seconds())
	}

	trip := models.TripRecord{
		Row:             index,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: duration,
		StartStation:    strings.TrimSpace(row.StartStation),
		EndStation:      strings.TrimSpace(row.EndStation),
		UserType:        models.ParseUserType(strings.TrimSpace(row.UserType)),
		Gender:          models.ParseGender(strings.TrimSpace(row.Gender)),
		Month:           start.Month(),
		Weekday:         start.Weekday(),
		Hour:            start.Hour(),
	}
	if year, ok := parseBirthYear(row.BirthYear); ok {
		trip.BirthYear = year
		trip.HasBirthYear = true
	}
	return trip, nil
}

// parseDuration coerces blank, unparseable and negative durations to zero.
func parseDuration(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// parseBirthYear accepts "1989" and the "1989.0" form the source files use.
func parseBirthYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return int(v), true
}

package services

import (
	"testing"
	"time"

	"github.com/gewnthar/bikeshare/models"
	"github.com/stretchr/testify/require"
)

// tripAt builds a record starting at the given "2006-01-02 15:04:05" time.
func tripAt(t *testing.T, start string, opts ...func(*models.TripRecord)) models.TripRecord {
	t.Helper()
	ts, err := time.Parse(models.TimeLayout, start)
	require.NoError(t, err)
	trip := models.TripRecord{
		StartTime:       ts,
		EndTime:         ts.Add(10 * time.Minute),
		DurationSeconds: 600,
		StartStation:    "A",
		EndStation:      "B",
		UserType:        models.UserTypeSubscriber,
		Gender:          models.GenderUnknown,
		Month:           ts.Month(),
		Weekday:         ts.Weekday(),
		Hour:            ts.Hour(),
	}
	for _, opt := range opts {
		opt(&trip)
	}
	return trip
}

func stations(from, to string) func(*models.TripRecord) {
	return func(tr *models.TripRecord) {
		tr.StartStation = from
		tr.EndStation = to
	}
}

func duration(seconds float64) func(*models.TripRecord) {
	return func(tr *models.TripRecord) { tr.DurationSeconds = seconds }
}

func user(ut models.UserType, g models.Gender) func(*models.TripRecord) {
	return func(tr *models.TripRecord) {
		tr.UserType = ut
		tr.Gender = g
	}
}

func born(year int) func(*models.TripRecord) {
	return func(tr *models.TripRecord) {
		tr.BirthYear = year
		tr.HasBirthYear = true
	}
}

func table(trips ...models.TripRecord) *models.CityTable {
	for i := range trips {
		trips[i].Row = i
	}
	return &models.CityTable{
		City:    models.Chicago,
		Records: trips,
		Columns: models.Columns{UserType: true, Gender: true, BirthYear: true},
	}
}

func dataset(trips ...models.TripRecord) models.FilteredDataset {
	tb := table(trips...)
	return models.FilteredDataset{
		Selection: models.Selection{City: tb.City},
		Columns:   tb.Columns,
		Records:   tb.Records,
	}
}

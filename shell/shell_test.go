package shell

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gewnthar/bikeshare/models"
	"github.com/gewnthar/bikeshare/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restartPrompt = "Would you like to restart? [yes/no]: "

var fixedNow = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

// fixtureTable has n Monday-morning January trips; every third is a
// Customer without gender.
func fixtureTable(city models.City, n int, cols models.Columns) *models.CityTable {
	start := time.Date(2017, 1, 2, 8, 0, 0, 0, time.UTC)
	trips := make([]models.TripRecord, n)
	for i := range trips {
		ts := start.Add(time.Duration(i) * time.Minute)
		trip := models.TripRecord{
			Row:             i,
			StartTime:       ts,
			EndTime:         ts.Add(10 * time.Minute),
			DurationSeconds: 600,
			StartStation:    fmt.Sprintf("Station %d", i%2),
			EndStation:      "Clark St & Elm St",
			UserType:        models.UserTypeSubscriber,
			Gender:          models.GenderFemale,
			BirthYear:       1990,
			HasBirthYear:    true,
			Month:           ts.Month(),
			Weekday:         ts.Weekday(),
			Hour:            ts.Hour(),
		}
		if i%3 == 2 {
			trip.UserType = models.UserTypeCustomer
			trip.Gender = models.GenderUnknown
			trip.HasBirthYear = false
			trip.BirthYear = 0
		}
		trips[i] = trip
	}
	return &models.CityTable{City: city, Records: trips, Columns: cols}
}

type fakeLoader struct {
	tables map[models.City]*models.CityTable
	calls  int
}

func (f *fakeLoader) load(city models.City) (*models.CityTable, error) {
	f.calls++
	if t, ok := f.tables[city]; ok {
		return t, nil
	}
	return nil, &models.DataSourceError{City: city, Path: string(city) + ".csv", Err: errors.New("file does not exist")}
}

func newTestShell(input string, loader *fakeLoader) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	trips := store.NewTripStore(loader.load, true, nil)
	sh := New(strings.NewReader(input), &out, trips, Options{Now: fixedNow})
	return sh, &out
}

func allColumns() models.Columns {
	return models.Columns{UserType: true, Gender: true, BirthYear: true}
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRunFullReport(t *testing.T) {
	loader := &fakeLoader{tables: map[models.City]*models.CityTable{
		models.Chicago: fixtureTable(models.Chicago, 6, allColumns()),
	}}
	sh, out := newTestShell(script("Chicago", "all", "all", "no", "no"), loader)

	require.NoError(t, sh.Run())

	output := out.String()
	assert.Contains(t, output, "City: Chicago | Month: All | Day: All")
	assert.Contains(t, output, "Ride Count Statistics")
	assert.Contains(t, output, "Total Rides │ 6")
	assert.Contains(t, output, "Month       │ January (6 rides)")
	assert.Contains(t, output, "Day         │ Monday (6 rides)")
	assert.Contains(t, output, "Busiest     │ 08:00 (6 rides)")
	assert.Contains(t, output, "Station Statistics")
	assert.Contains(t, output, "Start       │ Station 0 (3 rides)")
	assert.Contains(t, output, "End         │ Clark St & Elm St (6 rides)")
	assert.Contains(t, output, "Station 0 to Clark St & Elm St (3 rides)")
	assert.Contains(t, output, "Total Time  │ 1h 0m 0s")
	assert.Contains(t, output, "Average Time│ 0h 10m 0s")
	assert.Contains(t, output, "Subscriber  │ 4 (67%)")
	assert.Contains(t, output, "Customer    │ 2 (33%)")
	assert.Contains(t, output, "Subscriber gender:")
	assert.Contains(t, output, "Female      │ 4 (100%)")
	assert.Contains(t, output, "Earliest    │ 1990 (current age: 36)")
	assert.Contains(t, output, "Calculation time: ")
	assert.Contains(t, output, "End of session")
	assert.Equal(t, 1, strings.Count(output, restartPrompt))
}

func TestRunRejectsInvalidSelections(t *testing.T) {
	loader := &fakeLoader{tables: map[models.City]*models.CityTable{
		models.NewYork: fixtureTable(models.NewYork, 2, allColumns()),
	}}
	sh, out := newTestShell(script("boston", "NEW YORK", "july", "January", "someday", "monday", "no", "no"), loader)

	require.NoError(t, sh.Run())

	output := out.String()
	assert.Contains(t, output, "Error: Invalid city input.")
	assert.Contains(t, output, "Error: Invalid month option.")
	assert.Contains(t, output, "Error: Invalid day input.")
	assert.Contains(t, output, "City: New York | Month: January | Day: Monday")
	assert.Equal(t, 1, loader.calls)
}

func TestRawDataExitsConvergeOnRestartPrompt(t *testing.T) {
	tests := []struct {
		name       string
		rawAnswers []string
		chunks     int
	}{
		{"declines raw data", []string{"no"}, 0},
		{"stops mid pagination", []string{"yes", "no"}, 1},
		{"finishes all chunks", []string{"yes", "yes", "yes"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &fakeLoader{tables: map[models.City]*models.CityTable{
				models.Chicago: fixtureTable(models.Chicago, 12, allColumns()),
			}}
			lines := append([]string{"chicago", "all", "all"}, tt.rawAnswers...)
			lines = append(lines, "no")
			sh, out := newTestShell(script(lines...), loader)

			require.NoError(t, sh.Run())

			output := out.String()
			assert.Equal(t, 1, strings.Count(output, restartPrompt))
			assert.Equal(t, tt.chunks, strings.Count(output, "| Start Time"), "one grid header per chunk")
			assert.True(t, strings.HasSuffix(strings.TrimRight(output, "\n"), restartPrompt))
		})
	}
}

func TestRawDataChunkContents(t *testing.T) {
	loader := &fakeLoader{tables: map[models.City]*models.CityTable{
		models.Washington: fixtureTable(models.Washington, 7, models.Columns{UserType: true}),
	}}
	sh, out := newTestShell(script("washington", "all", "all", "y", "y", "n"), loader)

	require.NoError(t, sh.Run())

	output := out.String()
	assert.Contains(t, output, "2017-01-02 08:00:00")
	assert.Contains(t, output, "2017-01-02 08:06:00", "second chunk shows the seventh trip")
	assert.NotContains(t, output, "Birth Year", "absent columns are not shown")
	assert.NotContains(t, output, "| Gender")
	assert.Equal(t, 1, strings.Count(output, "Would you like to see 5 more rows?"))
	assert.Contains(t, output, "* Subscriber gender data missing/unavailable")
	assert.Contains(t, output, "* Birth year data missing/unavailable")
}

func TestRunRestartReusesLoadedCity(t *testing.T) {
	loader := &fakeLoader{tables: map[models.City]*models.CityTable{
		models.Chicago: fixtureTable(models.Chicago, 3, allColumns()),
	}}
	sh, out := newTestShell(script(
		"chicago", "all", "all", "no", "yes",
		"chicago", "january", "tuesday", "no",
	), loader)

	require.NoError(t, sh.Run())

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, restartPrompt))
	assert.Equal(t, 1, loader.calls, "the second run reuses the cached table")
	assert.Contains(t, output, "City: Chicago | Month: January | Day: Tuesday")
	assert.Contains(t, output, "Total Rides │ 0")
	assert.Contains(t, output, "Average Time│ n/a")
	assert.Contains(t, output, "No raw data is available for your selection")
}

func TestRunReportsDataSourceErrors(t *testing.T) {
	loader := &fakeLoader{}
	sh, out := newTestShell(script("washington", "all", "all", "no"), loader)

	require.NoError(t, sh.Run())

	output := out.String()
	assert.Contains(t, output, "Error loading data:")
	assert.Contains(t, output, "washington.csv")
	assert.NotContains(t, output, "Ride Count Statistics")
	assert.Equal(t, 1, strings.Count(output, restartPrompt))
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	loader := &fakeLoader{}
	sh, out := newTestShell("chicago\n", loader)

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), monthPrompt)
	assert.Equal(t, 0, loader.calls)
}

func TestAskYesNoRepromptsOnInvalidInput(t *testing.T) {
	sh, out := newTestShell(script("maybe", "Y"), &fakeLoader{})

	ok, err := sh.askYesNo("Continue? ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), `Error: Invalid input. Please enter "yes" or "no"`)
	assert.Equal(t, 2, strings.Count(out.String(), "Continue? "))
}

func TestClearScreenOption(t *testing.T) {
	var out bytes.Buffer
	trips := store.NewTripStore((&fakeLoader{}).load, true, nil)
	sh := New(strings.NewReader(""), &out, trips, Options{ClearScreen: true})

	require.NoError(t, sh.Run())
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

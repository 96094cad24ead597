// datasource/loader.go
package datasource

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gewnthar/bikeshare/logging"
	"github.com/gewnthar/bikeshare/models"
)

// LoadCity reads and parses the trip log at path. Any failure is returned as
// a *models.DataSourceError; the source file is never modified.
func LoadCity(city models.City, path string, logger *slog.Logger) (*models.CityTable, error) {
	started := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		dsErr := &models.DataSourceError{City: city, Path: path, Err: err}
		logging.LogError(logger, "failed to read trip data", err,
			slog.String("city", string(city)),
			slog.String("path", path),
			slog.String("component", "datasource"))
		return nil, dsErr
	}

	trips, columns, err := ParseTripsCsv(bytes.NewReader(data))
	if err != nil {
		logging.LogError(logger, "failed to parse trip data", err,
			slog.String("city", string(city)),
			slog.String("path", path),
			slog.String("component", "datasource"))
		return nil, &models.DataSourceError{City: city, Path: path, Err: err}
	}

	table := &models.CityTable{
		City:    city,
		Records: trips,
		Columns: columns,
		Version: models.DataSourceVersion{
			City:         city,
			FilePath:     path,
			Rows:         len(trips),
			Columns:      columns,
			DataHash:     strconv.FormatUint(xxhash.Sum64(data), 16),
			LoadedAt:     started,
			LoadDuration: time.Since(started),
		},
	}

	logging.LogOperation(logger, "trip_data_loaded",
		slog.String("city", string(city)),
		slog.String("path", path),
		slog.Int("rows", len(trips)),
		slog.Bool("has_user_type", columns.UserType),
		slog.Bool("has_gender", columns.Gender),
		slog.Bool("has_birth_year", columns.BirthYear),
		slog.Duration("duration", table.Version.LoadDuration))
	return table, nil
}

// FileLoader returns a loader that resolves each city's file inside dataDir
// using files (keyed by normalised city name), falling back to the default
// file names.
func FileLoader(dataDir string, files map[string]string, logger *slog.Logger) func(models.City) (*models.CityTable, error) {
	return func(city models.City) (*models.CityTable, error) {
		name := files[string(city)]
		if name == "" {
			name = models.DefaultCityFiles[city]
		}
		if name == "" {
			return nil, &models.DataSourceError{City: city, Err: fmt.Errorf("no data file configured")}
		}
		return LoadCity(city, filepath.Join(dataDir, name), logger)
	}
}

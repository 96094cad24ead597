// store/trip_store.go
package store

import (
	"fmt"
	"log/slog"

	"github.com/gewnthar/bikeshare/models"
)

// Loader builds the table for one city, typically from its CSV file.
type Loader func(city models.City) (*models.CityTable, error)

// TripStore caches loaded city tables keyed by city. Entries live until
// evicted; there is no expiry. It is used by a single shell and is not
// safe for concurrent use.
type TripStore struct {
	load     Loader
	caching  bool
	tables   map[models.City]*models.CityTable
	versions *VersionLedger
	logger   *slog.Logger
}

// NewTripStore creates a store. With caching disabled every Load calls the
// loader again, which is also a valid way to run the tool.
func NewTripStore(load Loader, caching bool, logger *slog.Logger) *TripStore {
	return &TripStore{
		load:     load,
		caching:  caching,
		tables:   make(map[models.City]*models.CityTable),
		versions: NewVersionLedger(),
		logger:   logger,
	}
}

// Get returns the cached table for city, if any.
func (s *TripStore) Get(city models.City) (*models.CityTable, bool) {
	t, ok := s.tables[city]
	return t, ok
}

// Load returns the table for city, loading it on a cache miss. Loader errors
// (normally *models.DataSourceError) are returned unchanged.
func (s *TripStore) Load(city models.City) (*models.CityTable, error) {
	if s.caching {
		if t, ok := s.tables[city]; ok {
			if s.logger != nil {
				s.logger.Debug("trip store cache hit", slog.String("city", string(city)))
			}
			return t, nil
		}
	}

	if s.load == nil {
		return nil, fmt.Errorf("trip store has no loader")
	}
	table, err := s.load(city)
	if err != nil {
		return nil, err
	}

	s.versions.Record(table.Version)
	if s.caching {
		s.tables[city] = table
	}
	return table, nil
}

// Evict drops the cached table for city. It reports whether one was cached.
func (s *TripStore) Evict(city models.City) bool {
	_, ok := s.tables[city]
	delete(s.tables, city)
	return ok
}

// Versions lists the most recent load of each city, ordered by city.
func (s *TripStore) Versions() []models.DataSourceVersion {
	return s.versions.List()
}

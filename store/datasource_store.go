// store/datasource_store.go
package store

import (
	"sort"

	"github.com/gewnthar/bikeshare/models"
)

// VersionLedger remembers the most recent DataSourceVersion for each city
// loaded during the session.
type VersionLedger struct {
	versions map[models.City]models.DataSourceVersion
}

func NewVersionLedger() *VersionLedger {
	return &VersionLedger{versions: make(map[models.City]models.DataSourceVersion)}
}

// Record stores v, replacing any earlier version for the same city.
func (l *VersionLedger) Record(v models.DataSourceVersion) {
	l.versions[v.City] = v
}

// Lookup returns the last recorded version for city.
func (l *VersionLedger) Lookup(city models.City) (models.DataSourceVersion, bool) {
	v, ok := l.versions[city]
	return v, ok
}

// List returns all recorded versions ordered by city name.
func (l *VersionLedger) List() []models.DataSourceVersion {
	out := make([]models.DataSourceVersion, 0, len(l.versions))
	for _, v := range l.versions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].City < out[j].City
	})
	return out
}

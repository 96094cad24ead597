// services/station_stats.go
package services

import (
	"time"

	"github.com/gewnthar/bikeshare/models"
)

// ComputeStationStats finds the most used start station, end station and
// ordered route. Blank station names are not counted. Ties go to the value
// that appears first in the dataset.
func ComputeStationStats(ds models.FilteredDataset) models.StationStats {
	started := time.Now()

	starts := newCounter[string]()
	ends := newCounter[string]()
	routes := newCounter[models.Route]()
	for _, trip := range ds.Records {
		if trip.StartStation != "" {
			starts.add(trip.StartStation)
		}
		if trip.EndStation != "" {
			ends.add(trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			routes.add(trip.Route())
		}
	}

	return models.StationStats{
		StartStation: starts.most(),
		EndStation:   ends.most(),
		Route:        routes.most(),
		Elapsed:      time.Since(started),
	}
}

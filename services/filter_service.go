// services/filter_service.go
package services

import (
	"github.com/gewnthar/bikeshare/models"
)

// FilterTrips returns the trips of table matching the selection's month and
// day, in source order. The table is never modified; the result always owns
// a fresh slice. An empty result is valid.
func FilterTrips(table *models.CityTable, sel models.Selection) models.FilteredDataset {
	ds := models.FilteredDataset{Selection: sel}
	if table == nil {
		return ds
	}
	ds.Columns = table.Columns

	records := make([]models.TripRecord, 0, len(table.Records))
	for _, trip := range table.Records {
		if sel.Month.Matches(trip.Month) && sel.Day.Matches(trip.Weekday) {
			records = append(records, trip)
		}
	}
	ds.Records = records
	return ds
}

// models/trip.go
package models

import "time"

// TimeLayout is the timestamp format used by the Start Time / End Time columns.
const TimeLayout = "2006-01-02 15:04:05"

// UserType is the rider category recorded for a trip.
type UserType string

const (
	UserTypeSubscriber UserType = "Subscriber"
	UserTypeCustomer   UserType = "Customer"
	UserTypeUnknown    UserType = "Unknown"
)

// Gender as recorded by the operator. Only some cities publish it.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// ParseUserType maps a raw CSV value onto a UserType. Blank or unrecognised
// values become UserTypeUnknown.
func ParseUserType(raw string) UserType {
	switch UserType(raw) {
	case UserTypeSubscriber, UserTypeCustomer:
		return UserType(raw)
	}
	return UserTypeUnknown
}

// ParseGender maps a raw CSV value onto a Gender.
func ParseGender(raw string) Gender {
	switch Gender(raw) {
	case GenderMale, GenderFemale:
		return Gender(raw)
	}
	return GenderUnknown
}

// Route is an ordered (start, end) station pair. A->B and B->A are different routes.
type Route struct {
	Start string
	End   string
}

func (r Route) String() string {
	return r.Start + " to " + r.End
}

// TripRecord is one row of a city's trip log with its derived fields.
type TripRecord struct {
	Row int // 0-based position in the source file

	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64 // never negative
	StartStation    string
	EndStation      string
	UserType        UserType
	Gender          Gender
	BirthYear       int
	HasBirthYear    bool

	// Derived at load time from StartTime.
	Month   time.Month
	Weekday time.Weekday
	Hour    int
}

// Route returns the ordered station pair of the trip.
func (t TripRecord) Route() Route {
	return Route{Start: t.StartStation, End: t.EndStation}
}

// Columns records which optional fields a city's source actually carries.
// Statistics check these once per pass instead of inspecting every record.
type Columns struct {
	UserType  bool
	Gender    bool
	BirthYear bool
}

// CityTable is the fully loaded, in-memory trip log of one city.
type CityTable struct {
	City    City
	Records []TripRecord
	Columns Columns
	Version DataSourceVersion
}

// FilteredDataset is the ordered subset of a CityTable matching a Selection.
type FilteredDataset struct {
	Selection Selection
	Columns   Columns
	Records   []TripRecord
}

// Len returns the number of trips in the dataset.
func (d FilteredDataset) Len() int {
	return len(d.Records)
}

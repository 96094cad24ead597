// models/errors.go
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a city, month or day entry is not recognised.
var ErrInvalidSelection = errors.New("invalid selection")

// DataSourceError reports that a city's trip log could not be loaded:
// the file is missing, unreadable or malformed.
type DataSourceError struct {
	City City
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("failed to load %s trip data from %s: %v", e.City, e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

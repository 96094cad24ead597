// models/meta.go
package models

import "time"

// DataSourceVersion describes the trip log a CityTable was built from.
type DataSourceVersion struct {
	City         City          `json:"city"`
	FilePath     string        `json:"file_path"`
	Rows         int           `json:"rows"`
	Columns      Columns       `json:"columns"`
	DataHash     string        `json:"data_hash,omitempty"` // xxhash64 of the file contents, hex
	LoadedAt     time.Time     `json:"loaded_at"`
	LoadDuration time.Duration `json:"load_duration"`
}

// services/paginator.go
package services

import "github.com/gewnthar/bikeshare/models"

// ChunkSize is the number of raw rows shown per page.
const ChunkSize = 5

// PageState is the paginator cursor. The caller owns it and passes it back
// in; a fresh zero value starts from the first row.
type PageState struct {
	Cursor int
}

// NextChunk returns up to ChunkSize rows starting at state.Cursor and the
// advanced state. ok is false once the cursor has reached the end of ds, in
// which case no rows are returned and state is unchanged.
func NextChunk(ds models.FilteredDataset, state PageState) (rows []models.TripRecord, next PageState, ok bool) {
	if state.Cursor < 0 {
		state.Cursor = 0
	}
	if state.Cursor >= ds.Len() {
		return nil, state, false
	}
	end := state.Cursor + ChunkSize
	if end > ds.Len() {
		end = ds.Len()
	}
	return ds.Records[state.Cursor:end:end], PageState{Cursor: state.Cursor + ChunkSize}, true
}

// HasMore reports whether NextChunk would return rows for state.
func HasMore(ds models.FilteredDataset, state PageState) bool {
	return state.Cursor < ds.Len()
}

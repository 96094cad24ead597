// shell/raw.go
package shell

import (
	"fmt"
	"strconv"

	"github.com/gewnthar/bikeshare/models"
	"github.com/gewnthar/bikeshare/services"
	"github.com/olekukonko/tablewriter"
)

// rawColumns lists the source columns a city carries, in file order.
func rawColumns(cols models.Columns) []string {
	headers := []string{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station"}
	if cols.UserType {
		headers = append(headers, "User Type")
	}
	if cols.Gender {
		headers = append(headers, "Gender")
	}
	if cols.BirthYear {
		headers = append(headers, "Birth Year")
	}
	return headers
}

// rawRow renders a trip as its source values; unknown or missing values are blank.
func rawRow(trip models.TripRecord, cols models.Columns) []string {
	end := ""
	if !trip.EndTime.IsZero() {
		end = trip.EndTime.Format(models.TimeLayout)
	}
	row := []string{
		trip.StartTime.Format(models.TimeLayout),
		end,
		strconv.FormatFloat(trip.DurationSeconds, 'f', -1, 64),
		trip.StartStation,
		trip.EndStation,
	}
	if cols.UserType {
		row = append(row, blankIfUnknown(string(trip.UserType), string(models.UserTypeUnknown)))
	}
	if cols.Gender {
		row = append(row, blankIfUnknown(string(trip.Gender), string(models.GenderUnknown)))
	}
	if cols.BirthYear {
		by := ""
		if trip.HasBirthYear {
			by = strconv.Itoa(trip.BirthYear)
		}
		row = append(row, by)
	}
	return row
}

func blankIfUnknown(v, unknown string) string {
	if v == unknown {
		return ""
	}
	return v
}

func (s *Shell) renderChunk(rows []models.TripRecord, cols models.Columns) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(rawColumns(cols))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, trip := range rows {
		table.Append(rawRow(trip, cols))
	}
	table.Render()
}

// browseRawData offers the filtered trips five rows at a time. Declining,
// running out of rows and stopping part way all return to the caller, which
// asks about restarting.
func (s *Shell) browseRawData(ds models.FilteredDataset) error {
	if ds.Len() == 0 {
		s.palette.notice.Fprintf(s.out, "No raw data is available for your selection (%s).\n", ds.Selection.Description())
		return nil
	}

	s.palette.heading.Fprintf(s.out, "Raw data is available for your selection (%s).\n", ds.Selection.Description())
	fmt.Fprintln(s.out)

	view, err := s.askYesNo("Would you like to view the raw data? [yes/no]: ")
	if err != nil || !view {
		return err
	}

	state := services.PageState{}
	for {
		rows, next, ok := services.NextChunk(ds, state)
		if !ok {
			return nil
		}
		s.renderChunk(rows, ds.Columns)
		state = next

		if !services.HasMore(ds, state) {
			return nil
		}
		more, err := s.askYesNo(fmt.Sprintf("\nWould you like to see %d more rows? [yes/no]: ", services.ChunkSize))
		if err != nil || !more {
			return err
		}
	}
}

// shell/shell.go
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/gewnthar/bikeshare/logging"
	"github.com/gewnthar/bikeshare/models"
	"github.com/gewnthar/bikeshare/services"
	"github.com/gewnthar/bikeshare/store"
)

const clearScreen = "\033[H\033[2J"

// Options tune the interactive session.
type Options struct {
	Color       bool
	ClearScreen bool
	Now         func() time.Time // clock for ages; defaults to time.Now
	Logger      *slog.Logger
}

// Shell drives the prompt -> report -> raw data -> restart loop.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	store   *store.TripStore
	opts    Options
	palette palette
	logger  *slog.Logger
}

type palette struct {
	banner  *color.Color
	heading *color.Color
	timing  *color.Color
	errMsg  *color.Color
	notice  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		banner:  color.New(color.FgBlue),
		heading: color.New(color.FgGreen),
		timing:  color.New(color.FgMagenta),
		errMsg:  color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
	}
	if !enabled {
		for _, c := range []*color.Color{p.banner, p.heading, p.timing, p.errMsg, p.notice} {
			c.DisableColor()
		}
	}
	return p
}

// New creates a shell reading answers from in and writing reports to out.
func New(in io.Reader, out io.Writer, trips *store.TripStore, opts Options) *Shell {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		store:   trips,
		opts:    opts,
		palette: newPalette(opts.Color),
		logger:  logger,
	}
}

// Run loops over sessions until the user declines to restart or input ends.
func (s *Shell) Run() error {
	if s.opts.ClearScreen {
		fmt.Fprint(s.out, clearScreen)
	}
	for {
		restart, err := s.session()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
		fmt.Fprint(s.out, "\n\n")
	}
}

// session runs one selection through to the restart question and returns
// the answer.
func (s *Shell) session() (bool, error) {
	sel, err := s.promptSelection()
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.out)
	s.palette.banner.Fprintln(s.out, "Loading your selected data...")
	fmt.Fprintln(s.out)

	table, err := s.store.Load(sel.City)
	if err != nil {
		var dsErr *models.DataSourceError
		if !errors.As(err, &dsErr) {
			return false, fmt.Errorf("failed to load %s: %w", sel.City, err)
		}
		s.palette.errMsg.Fprintf(s.out, "Error loading data: %v\n", dsErr)
	} else {
		ds := services.FilterTrips(table, sel)
		logging.LogOperation(s.logger, "selection_filtered",
			slog.String("selection", sel.Description()),
			slog.Int("trips", ds.Len()))

		s.renderReport(ds)
		if err := s.browseRawData(ds); err != nil {
			return false, err
		}
	}

	fmt.Fprintln(s.out)
	s.palette.banner.Fprintln(s.out, "End of session")
	fmt.Fprintln(s.out)

	return s.askYesNo("Would you like to restart? [yes/no]: ")
}

func (s *Shell) renderReport(ds models.FilteredDataset) {
	s.renderHeader(ds.Selection)
	s.renderPopularity(services.ComputePopularityStats(ds))
	s.renderStations(services.ComputeStationStats(ds))
	s.renderDurations(services.ComputeDurationStats(ds))
	s.renderUsers(services.ComputeUserStats(ds, s.opts.Now()))
}

// shell/prompt.go
package shell

import (
	"fmt"
	"io"

	"github.com/gewnthar/bikeshare/models"
	"github.com/gewnthar/bikeshare/utils"
)

const (
	cityPrompt  = "Would you like to see data for Chicago, New York, or Washington?"
	monthPrompt = "Which month? All, January, February, March, April, May, or June?"
	dayPrompt   = "Which day? All, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday?"
)

// readLine prints prompt and returns the next input line. io.EOF is
// returned when input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// promptSelection asks for city, month and day, re-prompting on invalid
// entries so only valid selections reach the core.
func (s *Shell) promptSelection() (models.Selection, error) {
	var sel models.Selection

	fmt.Fprintln(s.out)
	s.palette.banner.Fprintln(s.out, "Welcome to bikeshare analytics.")
	fmt.Fprintln(s.out)

	for {
		input, err := s.readLine(cityPrompt + "\n")
		if err != nil {
			return sel, err
		}
		fmt.Fprintln(s.out)
		city, err := models.ParseCity(input)
		if err == nil {
			sel.City = city
			break
		}
		s.palette.errMsg.Fprintln(s.out, "Error: Invalid city input. Please choose Chicago, New York, or Washington.")
	}

	for {
		input, err := s.readLine(monthPrompt + "\n")
		if err != nil {
			return sel, err
		}
		fmt.Fprintln(s.out)
		month, err := models.ParseMonth(input)
		if err == nil {
			sel.Month = month
			break
		}
		s.palette.errMsg.Fprintln(s.out, "Error: Invalid month option. Please try again.")
	}

	for {
		input, err := s.readLine(dayPrompt + "\n")
		if err != nil {
			return sel, err
		}
		day, err := models.ParseDay(input)
		if err == nil {
			sel.Day = day
			break
		}
		s.palette.errMsg.Fprintln(s.out, "Error: Invalid day input. Please try again.")
	}

	return sel, nil
}

// askYesNo repeats prompt until the answer is yes/y or no/n.
func (s *Shell) askYesNo(prompt string) (bool, error) {
	for {
		input, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch {
		case utils.IsYes(input):
			return true, nil
		case utils.IsNo(input):
			return false, nil
		}
		s.palette.errMsg.Fprintln(s.out, `Error: Invalid input. Please enter "yes" or "no"`)
	}
}

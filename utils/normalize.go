// utils/normalize.go
package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)
)

// NormalizeInput trims surrounding whitespace and lower-cases user input so
// "  New York " and "new york" compare equal.
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// DisplayName title-cases a normalised name: "new york" -> "New York".
func DisplayName(name string) string {
	return titleCaser.String(name)
}

// FormatCount renders an integer with thousands separators: 300000 -> "300,000".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// IsYes and IsNo recognise the answers accepted by yes/no prompts.
func IsYes(input string) bool {
	switch NormalizeInput(input) {
	case "yes", "y":
		return true
	}
	return false
}

func IsNo(input string) bool {
	switch NormalizeInput(input) {
	case "no", "n":
		return true
	}
	return false
}

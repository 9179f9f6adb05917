package output

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kedare/metro/internal/status"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// ErrMissingLineNumber is returned when a line name carries no digits to sort by.
var ErrMissingLineNumber = errors.New("line name has no number")

const reducedKeyword = "reduzida"

var digitsPattern = regexp.MustCompile(`\d+`)

// Line is one formatted row of the report.
type Line struct {
	Number  int
	Dot     string
	Name    string
	Status  string
	Reduced bool
}

// Label is the name column: the color dot followed by the padded name.
func (l Line) Label() string {
	return " " + l.Dot + " " + l.Name
}

// StatusText is the status column, yellow when service is reduced.
func (l Line) StatusText() string {
	if l.Reduced {
		return pterm.FgYellow.Sprint(l.Status)
	}

	return l.Status
}

// CleanName drops the suffix that starts at the last hyphen, as in
// "Linha 1 - Azul" -> "Linha 1 ". A trailing hyphen is kept.
func CleanName(name string) string {
	idx := strings.LastIndex(name, "-")
	if idx < 0 || idx == len(name)-1 {
		return name
	}

	return name[:idx]
}

// LineNumber extracts the first run of digits in name.
func LineNumber(name string) (int, error) {
	digits := digitsPattern.FindString(name)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrMissingLineNumber, name)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("parse line number of %q: %w", name, err)
	}

	return n, nil
}

// IsReduced reports whether status announces reduced service.
func IsReduced(status string) bool {
	return strings.Contains(strings.ToLower(status), reducedKeyword)
}

// FormatReport converts report entries into lines sorted by line number, with
// names padded to a common display width. The report itself is not modified.
func FormatReport(report *status.Report) ([]Line, error) {
	if report == nil {
		return nil, nil
	}

	lines := make([]Line, 0, len(report.Entries))
	width := 0

	for _, entry := range report.Entries {
		number, err := LineNumber(entry.Name)
		if err != nil {
			return nil, err
		}

		name := CleanName(entry.Name)
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}

		lines = append(lines, Line{
			Number:  number,
			Dot:     ColorDot(entry.Name),
			Name:    name,
			Status:  entry.Status,
			Reduced: IsReduced(entry.Status),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Number < lines[j].Number
	})

	for i := range lines {
		lines[i].Name = runewidth.FillRight(lines[i].Name, width)
	}

	return lines, nil
}

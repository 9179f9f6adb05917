package output

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// RenderReport writes the report lines followed by the update footer.
// The date is shown in loc; a nil loc means the process local zone.
func RenderReport(w io.Writer, lines []Line, date time.Time, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s  %s\n", line.Label(), line.StatusText()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n Atualizado em %s\n", FormatDate(date.In(loc)))

	return err
}

// FormatDate renders t as D/MM/YY.
//
// The month is zero-based: 15 March 2021 prints as "15/02/21".
func FormatDate(t time.Time) string {
	month := int(t.Month()) - 1

	return fmt.Sprintf("%d/%02d/%s", t.Day(), month, shortYear(t.Year()))
}

// shortYear keeps the third and fourth characters of the full year.
func shortYear(year int) string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return ""
	}
	if len(s) < 4 {
		return s[2:]
	}

	return s[2:4]
}

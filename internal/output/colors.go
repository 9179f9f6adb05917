// Package output turns a status report into aligned, colorized terminal lines.
package output

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// dotGlyph marks a line with its color.
const dotGlyph = "\uA78F"

type lineColor struct {
	name  string
	color pterm.Color
}

// lineColors is scanned in order; the first name contained in a line name wins.
var lineColors = [...]lineColor{
	{name: "Azul", color: pterm.FgBlue},
	{name: "Verde", color: pterm.FgGreen},
	{name: "Vermelha", color: pterm.FgRed},
	{name: "Amarela", color: pterm.FgYellow},
	{name: "Lilás", color: pterm.FgMagenta},
	{name: "Prata", color: pterm.FgGray},
}

// ColorFor returns the color of the first known color name found in name.
func ColorFor(name string) (pterm.Color, bool) {
	for _, lc := range lineColors {
		if strings.Contains(name, lc.name) {
			return lc.color, true
		}
	}

	return pterm.FgDefault, false
}

// ColorDot returns a bold dot in the line color, or a single space when
// name carries no known color.
func ColorDot(name string) string {
	color, ok := ColorFor(name)
	if !ok {
		return " "
	}

	return pterm.NewStyle(color, pterm.Bold).Sprint(dotGlyph)
}

// ConfigureColor disables ANSI colors when f is not a terminal or when the
// NO_COLOR convention is in effect.
func ConfigureColor(f *os.File) {
	if _, set := os.LookupEnv("NO_COLOR"); set || f == nil || !term.IsTerminal(int(f.Fd())) {
		pterm.DisableColor()
	}
}

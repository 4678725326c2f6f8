package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Mark prefixes the banner.
const Mark = "◉"

// Banner prints the insight banner for a view.
func Banner(subtitle string) {
	fmt.Printf("%s %s — %s\n\n", Brand.Sprint(Mark), Brand.Sprint("insight"), subtitle)
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Println(headerLine)
	Subtle.Println(sepLine)

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}

// Metric prints one labelled value with an optional change note, the
// terminal version of a dashboard metric card.
func Metric(label, value, change string, positive bool) {
	line := fmt.Sprintf("  %s  %s", Brand.Sprintf("%-24s", label), value)
	if change != "" {
		if positive {
			line += "  " + Good.Sprint(change)
		} else {
			line += "  " + Bad.Sprint(change)
		}
	}
	fmt.Println(line)
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// WarnIcon returns a warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}

// Money formats an amount in dollars, abbreviating thousands and millions.
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s$%.0fK", sign, v/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}

// Bar renders a horizontal bar of width cells for v out of max.
func Bar(v, max float64, width int) string {
	if max <= 0 || width <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(math.Min(v/max, 1) * float64(width)))
	return strings.Repeat("█", n)
}

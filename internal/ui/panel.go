package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Row lays out a name on the left and a price on the right, padded with
// dots to width. Long names are truncated.
func Row(name, price string, width int) string {
	pw := ansi.StringWidth(price)
	room := width - pw - 1
	if room < 4 {
		room = 4
	}
	if ansi.StringWidth(name) > room {
		name = ansi.Truncate(name, room, "…")
	}
	gap := width - ansi.StringWidth(name) - pw
	if gap < 1 {
		gap = 1
	}
	fill := " "
	if gap > 2 {
		fill = " " + strings.Repeat(".", gap-2) + " "
	}
	return name + fill + price
}

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(os.Stderr, t.Error.Render(t.SymFail+" "+msg))
}

package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Header, Muted, Accent, Success, Error, Expensive lipgloss.Style
	Selected                                                lipgloss.Style

	Border lipgloss.Border

	SymOK, SymFail, SymCursor, SymDelete, SymMove string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:      "classic",
		Title:     lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Muted:     lipgloss.NewStyle().Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Expensive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:    lipgloss.RoundedBorder(),
		SymOK:     "✔", SymFail: "✖", SymCursor: "> ", SymDelete: "⊖", SymMove: "≡",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	t.Header = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Expensive = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Border = lipgloss.ThickBorder()
	t.SymCursor = "▸ "
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Header: plain, Muted: plain, Accent: plain,
		Success: plain, Error: plain, Expensive: plain,
		Selected: plain.Reverse(true),
		Border:   lipgloss.NormalBorder(),
		SymOK:    "ok", SymFail: "error:", SymCursor: "> ", SymDelete: "-", SymMove: "=",
	}
}

// Themes lists the names SetTheme understands.
var Themes = []string{"classic", "neon", "mono"}

// Profile detected before any theme forced Ascii.
var (
	baseProfile  termenv.Profile
	profileSaved bool
)

// SetTheme switches the current theme; unknown names fall back to classic.
func SetTheme(name string) {
	if !profileSaved {
		baseProfile = lipgloss.ColorProfile()
		profileSaved = true
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		lipgloss.SetColorProfile(baseProfile)
		current = neon()
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
	default:
		lipgloss.SetColorProfile(baseProfile)
		current = classic()
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Expose what renderers need
func Current() Theme { return current }

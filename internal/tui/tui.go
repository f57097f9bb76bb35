// Package tui is the terminal rendering layer for the loot list. It only
// talks to a presenter.ListPresenter: counts, titles and cells come in,
// key presses go out as presenter commands.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/idilsaglam/lootlogger/internal/presenter"
	"github.com/idilsaglam/lootlogger/internal/ui"
)

// screen owns the list widget. The presenter holds it as its Reloader,
// so it lives behind a pointer while Model is passed by value.
type screen struct {
	p    presenter.ListPresenter
	list list.Model
}

// ReloadData rebuilds the rows from the presenter and keeps the cursor
// on a selectable row near where it was.
func (s *screen) ReloadData() {
	idx := s.list.Index()
	s.list.Title = s.title()
	s.list.SetItems(buildRows(s.p))
	if n := len(s.list.Items()); idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	s.list.Select(idx)
	s.snap(1)
}

// snap moves the cursor off headers and placeholders, first in dir,
// then the other way. With no selectable rows it stays put.
func (s *screen) snap(dir int) {
	items := s.list.Items()
	idx := s.list.Index()
	if idx < len(items) && selectable(items[idx]) {
		return
	}
	for _, d := range []int{dir, -dir} {
		for i := idx + d; i >= 0 && i < len(items); i += d {
			if selectable(items[i]) {
				s.list.Select(i)
				return
			}
		}
	}
}

func (s *screen) current() (rowRef, bool) {
	it, ok := s.list.SelectedItem().(itemRow)
	if !ok {
		return rowRef{}, false
	}
	return it.ref, true
}

func (s *screen) selectWhere(match func(itemRow) bool) {
	for i, it := range s.list.Items() {
		if row, ok := it.(itemRow); ok && match(row) {
			s.list.Select(i)
			return
		}
	}
}

func (s *screen) title() string {
	t := ui.Current()
	p := s.p

	expensive, total := 0, 0
	if !p.IsEmpty() {
		expensive = p.NumberOfRows(presenter.GroupExpensive)
		total = expensive + p.NumberOfRows(presenter.GroupRegular)
	}
	button := "Edit"
	if p.IsEditing() {
		button = "Done"
	}
	return fmt.Sprintf("%s   %s %d  %s %d   %s",
		t.Title.Render("LootLogger"),
		t.Expensive.Render("$"), expensive,
		t.Accent.Render("Total"), total,
		t.Accent.Render("["+button+"]"),
	)
}

type Model struct {
	s     *screen
	keys  keyMap
	flash string
	log   *zap.Logger
}

// New binds a model to p and registers it as p's Reloader.
func New(p presenter.ListPresenter, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	t := ui.Current()

	l := list.New(nil, rowDelegate{p: p}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.KeyMap = listKeys()

	keys := defaultKeys()
	extra := func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Edit, keys.MoveUp, keys.MoveDn}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	s := &screen{p: p, list: l}
	p.SetReloader(s)

	m := Model{s: s, keys: keys, log: log}
	m.resize(80, 24)
	s.ReloadData()
	return m
}

// resize fits the list inside the border, padding and status line.
func (m Model) resize(w, h int) {
	lw := w - 4
	if lw < 20 {
		lw = 20
	}
	lh := h - 3
	if lh < 1 {
		lh = 1
	}
	m.s.list.SetSize(lw, lh)
}

// Run starts the interactive list on the alternate screen.
func Run(p presenter.ListPresenter, log *zap.Logger) error {
	prog := tea.NewProgram(New(p, log), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.s.snap(1)
		return m, nil

	case tea.KeyMsg:
		m.flash = ""
		m.log.Debug("key", zap.String("key", msg.String()))
		p := m.s.p
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Add):
			it := p.AddItem()
			m.s.selectWhere(func(r itemRow) bool { return r.id == it.ID })
			m.flash = "added " + it.Name
			return m, nil

		case key.Matches(msg, m.keys.Edit):
			p.ToggleEditing()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			ref, ok := m.s.current()
			if !ok || !p.CanDelete(ref.group, ref.row) {
				return m, nil
			}
			it, _ := p.Item(ref.group, ref.row)
			if p.DeleteItem(ref.group, ref.row) {
				m.flash = "deleted " + it.Name
			}
			return m, nil

		case key.Matches(msg, m.keys.MoveUp):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.MoveDn):
			m.move(1)
			return m, nil
		}

		// Navigation and help belong to the list.
		before := m.s.list.Index()
		var cmd tea.Cmd
		m.s.list, cmd = m.s.list.Update(msg)
		dir := 1
		if m.s.list.Index() < before {
			dir = -1
		}
		m.s.snap(dir)
		return m, cmd
	}

	var cmd tea.Cmd
	m.s.list, cmd = m.s.list.Update(msg)
	return m, cmd
}

// move shifts the selected row by delta inside its group while editing.
func (m Model) move(delta int) {
	p := m.s.p
	if !p.IsEditing() {
		return
	}
	ref, ok := m.s.current()
	if !ok || !p.CanMove(ref.group, ref.row) {
		return
	}
	to := ref.row + delta
	if to < 0 || to >= p.NumberOfRows(ref.group) {
		return
	}
	if p.MoveItem(ref.group, ref.row, to) {
		want := rowRef{ref.group, to}
		m.s.selectWhere(func(r itemRow) bool { return r.ref == want })
	}
}

func (m Model) View() string {
	t := ui.Current()
	p := m.s.p

	status := ""
	if m.flash != "" {
		status = t.Success.Render(t.SymOK + " " + m.flash)
	} else if ref, ok := m.s.current(); ok {
		if it, ok := p.Item(ref.group, ref.row); ok {
			status = t.Muted.Render(it.String())
		}
	}

	lw := m.s.list.Width()
	if ansi.StringWidth(status) > lw {
		status = ansi.Truncate(status, lw, "…")
	}

	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(lw + 2).
		Render(strings.Join([]string{m.s.list.View(), status}, "\n"))
}

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/lootlogger/internal/presenter"
	"github.com/idilsaglam/lootlogger/internal/ui"
)

// rowRef addresses one presenter row.
type rowRef struct {
	group, row int
}

// Rows mixed into the list. Only itemRow can be selected.
type headerRow struct {
	title string
	count int
}

type placeholderRow struct{ text string }

type itemRow struct {
	ref  rowRef
	id   string
	cell presenter.Cell
}

func (headerRow) FilterValue() string      { return "" }
func (placeholderRow) FilterValue() string { return "" }
func (r itemRow) FilterValue() string      { return r.cell.Primary }

func selectable(it list.Item) bool {
	_, ok := it.(itemRow)
	return ok
}

// buildRows flattens the presenter's groups into list items.
func buildRows(p presenter.ListPresenter) []list.Item {
	var out []list.Item
	for g := 0; g < p.NumberOfGroups(); g++ {
		if title, ok := p.TitleForGroup(g); ok {
			out = append(out, headerRow{title: title, count: p.NumberOfRows(g)})
		}
		if p.NumberOfRows(g) == 0 {
			out = append(out, placeholderRow{text: "(none)"})
			continue
		}
		for r := 0; r < p.NumberOfRows(g); r++ {
			c := p.Cell(g, r)
			if !c.Selectable {
				out = append(out, placeholderRow{text: c.Primary})
				continue
			}
			row := itemRow{ref: rowRef{g, r}, cell: c}
			if it, ok := p.Item(g, r); ok {
				row.id = it.ID
			}
			out = append(out, row)
		}
	}
	return out
}

// rowDelegate renders headers, placeholders and items on one line each.
type rowDelegate struct {
	p presenter.ListPresenter
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd     { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fmt.Fprint(w, renderLine(d.p, item, m.Width(), index == m.Index()))
}

func renderLine(p presenter.ListPresenter, item list.Item, width int, selected bool) string {
	t := ui.Current()
	switch it := item.(type) {
	case headerRow:
		return t.Header.Render(fmt.Sprintf("%s (%d)", it.title, it.count))
	case placeholderRow:
		return "  " + t.Muted.Render(it.text)
	case itemRow:
		return renderItem(p, it, width, selected)
	}
	return ""
}

func renderItem(p presenter.ListPresenter, it itemRow, width int, selected bool) string {
	t := ui.Current()
	g, r := it.ref.group, it.ref.row

	prefix, suffix := "  ", ""
	inner := width - 2
	if p.IsEditing() {
		del := " "
		if p.CanDelete(g, r) {
			del = t.SymDelete
		}
		prefix = prefix + t.Error.Render(del) + " "
		if p.CanMove(g, r) {
			suffix = " " + t.Muted.Render(t.SymMove)
		}
		inner -= 4
	}
	if selected {
		prefix = t.Selected.Render(t.SymCursor) + prefix[2:]
	}

	text := ui.Row(it.cell.Primary, it.cell.Secondary, inner)
	if g == presenter.GroupExpensive {
		text = t.Expensive.Render(text)
	}
	if selected {
		text = t.Title.Render(text)
	}
	return prefix + text + suffix
}

// Lines renders the grouped list without a cursor, for non-interactive output.
func Lines(p presenter.ListPresenter, width int) []string {
	var lines []string
	for _, item := range buildRows(p) {
		if _, ok := item.(headerRow); ok && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderLine(p, item, width, false))
	}
	return lines
}

// Package presenter projects the item store into the grouped list the
// screen shows, and turns list gestures back into store mutations.
//
// It knows nothing about terminals; a rendering layer asks it for
// group and row counts, titles and cells, and implements Reloader so
// it can be told to redraw after a change.
package presenter

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/lootlogger/internal/model"
)

const (
	TitleExpensive = "Over $50"
	TitleRegular   = "Up to $50"
	EmptyText      = "No items!"
)

// Group indices while the store holds at least one item.
const (
	GroupExpensive = 0
	GroupRegular   = 1
)

// Cell is what one row displays.
type Cell struct {
	Primary    string
	Secondary  string
	Selectable bool
}

// Reloader is implemented by the rendering layer.
type Reloader interface {
	ReloadData()
}

// ListPresenter is the contract between the list screen and its renderer.
type ListPresenter interface {
	NumberOfGroups() int
	NumberOfRows(group int) int
	TitleForGroup(group int) (string, bool)
	Cell(group, row int) Cell
	Item(group, row int) (model.Item, bool)
	IsEmpty() bool

	AddItem() model.Item
	DeleteItem(group, row int) bool
	CanDelete(group, row int) bool
	CanMove(group, row int) bool
	MoveItem(group, fromRow, toRow int) bool
	ToggleEditing() bool
	IsEditing() bool

	SetReloader(Reloader)
}

// Store is the subset of store.ItemStore the presenter drives.
type Store interface {
	CreateItem() model.Item
	RemoveItem(model.Item)
	MoveItem(from, to int) error
	AllItems() []model.Item
	IndexOf(id string) int
	Len() int
}

type Presenter struct {
	store    Store
	reloader Reloader
	editing  bool
	log      *zap.Logger
}

var _ ListPresenter = (*Presenter)(nil)

func New(s Store, log *zap.Logger) *Presenter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{store: s, log: log}
}

func (p *Presenter) SetReloader(r Reloader) { p.reloader = r }

func (p *Presenter) reload() {
	if p.reloader != nil {
		p.reloader.ReloadData()
	}
}

func (p *Presenter) IsEmpty() bool { return p.store.Len() == 0 }

// Partition splits items into over-$50 and up-to-$50, keeping order.
func Partition(items []model.Item) (expensive, regular []model.Item) {
	for _, it := range items {
		if it.IsExpensive() {
			expensive = append(expensive, it)
		} else {
			regular = append(regular, it)
		}
	}
	return
}

// group returns the items shown in group, recomputed from the store.
func (p *Presenter) group(group int) []model.Item {
	expensive, regular := Partition(p.store.AllItems())
	switch group {
	case GroupExpensive:
		return expensive
	case GroupRegular:
		return regular
	}
	return nil
}

// itemAt resolves a row to the item it displays.
func (p *Presenter) itemAt(group, row int) (model.Item, bool) {
	if p.IsEmpty() {
		return model.Item{}, false
	}
	items := p.group(group)
	if row < 0 || row >= len(items) {
		return model.Item{}, false
	}
	return items[row], true
}

func (p *Presenter) NumberOfGroups() int {
	if p.IsEmpty() {
		return 1
	}
	return 2
}

func (p *Presenter) NumberOfRows(group int) int {
	if p.IsEmpty() {
		if group == 0 {
			return 1
		}
		return 0
	}
	return len(p.group(group))
}

// TitleForGroup reports the header for group; the empty placeholder
// group has none.
func (p *Presenter) TitleForGroup(group int) (string, bool) {
	if p.IsEmpty() {
		return "", false
	}
	switch group {
	case GroupExpensive:
		return TitleExpensive, true
	case GroupRegular:
		return TitleRegular, true
	}
	return "", false
}

func (p *Presenter) Cell(group, row int) Cell {
	if p.IsEmpty() {
		return Cell{Primary: EmptyText}
	}
	it, ok := p.itemAt(group, row)
	if !ok {
		return Cell{}
	}
	return Cell{Primary: it.Name, Secondary: it.Price(), Selectable: true}
}

// Items returns the store's items in store order.
func (p *Presenter) Items() []model.Item { return p.store.AllItems() }

// Item returns the item behind a row, for detail views.
func (p *Presenter) Item(group, row int) (model.Item, bool) { return p.itemAt(group, row) }

func (p *Presenter) AddItem() model.Item {
	it := p.store.CreateItem()
	p.log.Debug("add", zap.String("id", it.ID))
	p.reload()
	return it
}

// DeleteItem removes the item shown at (group, row). The placeholder row
// and rows that no longer exist are left alone.
func (p *Presenter) DeleteItem(group, row int) bool {
	it, ok := p.itemAt(group, row)
	if !ok {
		return false
	}
	p.store.RemoveItem(it)
	p.log.Debug("delete", zap.String("id", it.ID), zap.Int("group", group), zap.Int("row", row))
	p.reload()
	return true
}

func (p *Presenter) CanDelete(group, row int) bool { return !p.IsEmpty() }

func (p *Presenter) CanMove(group, row int) bool {
	_, ok := p.itemAt(group, row)
	return ok
}

// MoveItem reorders a row within its group. Both rows are translated to
// store positions so the other group keeps its relative order.
func (p *Presenter) MoveItem(group, fromRow, toRow int) bool {
	src, ok := p.itemAt(group, fromRow)
	if !ok {
		return false
	}
	dst, ok := p.itemAt(group, toRow)
	if !ok {
		return false
	}
	if fromRow == toRow {
		return true
	}
	from, to := p.store.IndexOf(src.ID), p.store.IndexOf(dst.ID)
	if err := p.store.MoveItem(from, to); err != nil {
		p.log.Warn("move", zap.Error(err))
		return false
	}
	p.log.Debug("move", zap.String("id", src.ID), zap.Int("group", group),
		zap.Int("from_row", fromRow), zap.Int("to_row", toRow))
	p.reload()
	return true
}

// ToggleEditing flips the editing flag and returns the new state.
func (p *Presenter) ToggleEditing() bool {
	p.editing = !p.editing
	p.reload()
	return p.editing
}

func (p *Presenter) IsEditing() bool { return p.editing }

// Package store owns the in-memory item list: lifetime and ordering.
// No locking; every call happens on the UI goroutine.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/lootlogger/internal/model"
)

// ErrIndexOutOfRange is returned by MoveItem for an index outside the list.
var ErrIndexOutOfRange = errors.New("index out of range")

type ItemStore struct {
	items   []model.Item
	factory ItemFactory
	log     *zap.Logger
}

type Option func(*ItemStore)

// WithFactory overrides the random demo factory.
func WithFactory(f ItemFactory) Option {
	return func(s *ItemStore) { s.factory = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *ItemStore) { s.log = l }
}

// New returns an empty store.
func New(opts ...Option) *ItemStore {
	s := &ItemStore{}
	for _, o := range opts {
		o(s)
	}
	if s.factory == nil {
		s.factory = NewRandomFactory()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// CreateItem builds a new item with the store's factory and appends it.
func (s *ItemStore) CreateItem() model.Item {
	return s.AddItem(s.factory.NewItem())
}

// AddItem appends a caller-built item. A missing or already-used ID is
// replaced so identities stay unique.
func (s *ItemStore) AddItem(it model.Item) model.Item {
	if it.ID == "" || s.indexOf(it.ID) >= 0 {
		it.ID = uuid.NewString()
	}
	s.items = append(s.items, it)
	s.log.Debug("item created",
		zap.String("id", it.ID),
		zap.String("name", it.Name),
		zap.Int("value", it.ValueInDollars),
		zap.Int("count", len(s.items)))
	return it
}

// RemoveItem removes it by identity. Unknown items are ignored.
func (s *ItemStore) RemoveItem(it model.Item) { s.RemoveByID(it.ID) }

func (s *ItemStore) RemoveByID(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.log.Debug("item removed", zap.String("id", id), zap.Int("count", len(s.items)))
}

// MoveItem takes the item at from out of the list and reinserts it at to.
func (s *ItemStore) MoveItem(from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n {
		return fmt.Errorf("move from %d (have %d): %w", from, n, ErrIndexOutOfRange)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("move to %d (have %d): %w", to, n, ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}
	moved := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	s.items = append(s.items[:to], append([]model.Item{moved}, s.items[to:]...)...)
	s.log.Debug("item moved", zap.String("id", moved.ID), zap.Int("from", from), zap.Int("to", to))
	return nil
}

// AllItems returns a copy of the list in its current order.
func (s *ItemStore) AllItems() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemStore) Len() int { return len(s.items) }

// IndexOf returns the position of the item with id, or -1.
func (s *ItemStore) IndexOf(id string) int { return s.indexOf(id) }

func (s *ItemStore) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

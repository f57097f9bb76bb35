package store

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/lootlogger/internal/model"
)

// fixedItems hands out the given name/value pairs in order.
func fixedItems(pairs ...any) ItemFactory {
	i := 0
	return FuncFactory(func() model.Item {
		it := model.Item{Name: pairs[i].(string), ValueInDollars: pairs[i+1].(int)}
		i += 2
		return it
	})
}

func names(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestCreateItem_AppendsDistinctItems(t *testing.T) {
	s := New(WithLogger(zaptest.NewLogger(t)))
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		it := s.CreateItem()
		require.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
		assert.Equal(t, i+1, s.Len())
	}
	all := s.AllItems()
	require.Len(t, all, 25)
	assert.Equal(t, 24, s.IndexOf(all[24].ID))
}

func TestCreateItem_SameNameAndValueAreDistinct(t *testing.T) {
	s := New(WithFactory(fixedItems("Coin", 10, "Coin", 10)))
	a := s.CreateItem()
	b := s.CreateItem()
	require.NotEqual(t, a.ID, b.ID)

	s.RemoveItem(a)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, b.ID, s.AllItems()[0].ID)
}

func TestAddItem_ReplacesMissingOrDuplicateID(t *testing.T) {
	s := New()
	first := s.AddItem(model.Item{ID: "fixed", Name: "Ring", ValueInDollars: 120})
	assert.Equal(t, "fixed", first.ID)

	dup := s.AddItem(model.Item{ID: "fixed", Name: "Ring", ValueInDollars: 120})
	assert.NotEqual(t, "fixed", dup.ID)

	blank := s.AddItem(model.Item{Name: "Coin", ValueInDollars: 10})
	assert.NotEmpty(t, blank.ID)
	assert.Equal(t, 3, s.Len())
}

func TestRemoveItem(t *testing.T) {
	s := New(WithFactory(fixedItems("A", 1, "B", 2, "C", 3)))
	a, b, c := s.CreateItem(), s.CreateItem(), s.CreateItem()

	s.RemoveItem(b)
	assert.Equal(t, []string{"A", "C"}, names(s.AllItems()))
	assert.Equal(t, -1, s.IndexOf(b.ID))
	assert.Equal(t, 1, s.IndexOf(c.ID))

	before := s.AllItems()
	s.RemoveItem(b)
	s.RemoveItem(model.Item{ID: "never-added", Name: "A", ValueInDollars: 1})
	if diff := cmp.Diff(before, s.AllItems()); diff != "" {
		t.Fatalf("remove of absent item changed the store (-before +after):\n%s", diff)
	}

	s.RemoveByID(a.ID)
	s.RemoveByID(c.ID)
	assert.Equal(t, 0, s.Len())
}

func TestMoveItem(t *testing.T) {
	cases := []struct {
		from, to int
		want     []string
	}{
		{0, 1, []string{"B", "A", "C", "D"}},
		{0, 3, []string{"B", "C", "D", "A"}},
		{3, 0, []string{"D", "A", "B", "C"}},
		{2, 1, []string{"A", "C", "B", "D"}},
		{1, 1, []string{"A", "B", "C", "D"}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d->%d", c.from, c.to), func(t *testing.T) {
			s := New(WithFactory(fixedItems("A", 1, "B", 2, "C", 3, "D", 4)))
			for i := 0; i < 4; i++ {
				s.CreateItem()
			}
			require.NoError(t, s.MoveItem(c.from, c.to))
			assert.Equal(t, c.want, names(s.AllItems()))
			assert.Equal(t, 4, s.Len())
		})
	}
}

func TestMoveItem_TwoItems(t *testing.T) {
	s := New(WithFactory(fixedItems("A", 1, "B", 2)))
	s.CreateItem()
	s.CreateItem()
	require.NoError(t, s.MoveItem(0, 1))
	assert.Equal(t, []string{"B", "A"}, names(s.AllItems()))
}

func TestMoveItem_OutOfRange(t *testing.T) {
	s := New(WithFactory(fixedItems("A", 1, "B", 2)))
	s.CreateItem()
	s.CreateItem()

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		err := s.MoveItem(idx[0], idx[1])
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, []string{"A", "B"}, names(s.AllItems()))
}

func TestAllItems_ReturnsCopy(t *testing.T) {
	s := New(WithFactory(fixedItems("A", 1)))
	s.CreateItem()
	snap := s.AllItems()
	snap[0].Name = "mutated"
	assert.Equal(t, "A", s.AllItems()[0].Name)
}

func TestRandomFactory_Deterministic(t *testing.T) {
	at := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	mk := func() *RandomFactory {
		return &RandomFactory{Rand: rand.New(rand.NewSource(7)), Now: func() time.Time { return at }}
	}
	f1, f2 := mk(), mk()
	for i := 0; i < 10; i++ {
		a, b := f1.NewItem(), f2.NewItem()
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.ValueInDollars, b.ValueInDollars)
		assert.Equal(t, a.SerialNumber, b.SerialNumber)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, at, a.DateCreated)
		assert.Len(t, a.SerialNumber, 5)
		assert.GreaterOrEqual(t, a.ValueInDollars, 0)
		assert.Less(t, a.ValueInDollars, 100)
		assert.Regexp(t, `^(Fluffy|Rusty|Shiny) (Bear|Spork|Mac)$`, a.Name)
	}
}

package store

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/lootlogger/internal/model"
)

// ItemFactory builds the items CreateItem appends.
type ItemFactory interface {
	NewItem() model.Item
}

// FuncFactory adapts a plain function to ItemFactory.
type FuncFactory func() model.Item

func (f FuncFactory) NewItem() model.Item { return f() }

var (
	adjectives = []string{"Fluffy", "Rusty", "Shiny"}
	nouns      = []string{"Bear", "Spork", "Mac"}
)

const serialAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomFactory produces placeholder loot for demos.
// Rand and Now may be replaced for reproducible output.
type RandomFactory struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// NewRandomFactory seeds a factory from the wall clock.
func NewRandomFactory() *RandomFactory {
	return &RandomFactory{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:  time.Now,
	}
}

func (f *RandomFactory) NewItem() model.Item {
	r := f.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
		f.Rand = r
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	name := adjectives[r.Intn(len(adjectives))] + " " + nouns[r.Intn(len(nouns))]

	var sn strings.Builder
	for i := 0; i < 5; i++ {
		sn.WriteByte(serialAlphabet[r.Intn(len(serialAlphabet))])
	}

	return model.Item{
		ID:             uuid.NewString(),
		Name:           name,
		ValueInDollars: r.Intn(100),
		SerialNumber:   sn.String(),
		DateCreated:    now(),
	}
}

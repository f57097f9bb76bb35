package model

import (
	"fmt"
	"time"
)

// ExpensiveThreshold is the dollar value above which an item is listed
// under "Over $50".
const ExpensiveThreshold = 50

// Item is the domain model for a piece of loot.
// Identity is the ID; two items with the same name and value are distinct.
type Item struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	ValueInDollars int       `json:"value_in_dollars" yaml:"value_in_dollars"`
	SerialNumber   string    `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	DateCreated    time.Time `json:"date_created" yaml:"date_created"`
}

// IsExpensive reports whether the item belongs in the over-$50 group.
func (it Item) IsExpensive() bool { return it.ValueInDollars > ExpensiveThreshold }

// Price renders the value the way the list shows it, e.g. "$120".
func (it Item) Price() string { return fmt.Sprintf("$%d", it.ValueInDollars) }

func (it Item) String() string {
	return fmt.Sprintf("%s (%s): Worth %s, recorded on %s",
		it.Name, it.SerialNumber, it.Price(), it.DateCreated.Format("2006-01-02"))
}

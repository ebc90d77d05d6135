package cart

import (
	"github.com/greenmart/pos/internal/models"
)

// Line is a product snapshot plus the quantity rung up for it. The snapshot
// is taken when the product is first added, so a later catalog edit does not
// change a line already on the ticket.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Ledger holds the lines of one open ticket, at most one line per product id,
// in the order the products were first added.
type Ledger struct {
	lines []Line
	index map[uint]int
}

func NewLedger() *Ledger {
	return &Ledger{index: make(map[uint]int)}
}

// Add merges into an existing line for the product or appends a new one with
// quantity 1. Stock is not checked here.
func (l *Ledger) Add(p models.Product) {
	if i, ok := l.index[p.ID]; ok {
		l.lines[i].Quantity++
		return
	}
	l.index[p.ID] = len(l.lines)
	l.lines = append(l.lines, Line{Product: p, Quantity: 1})
}

// SetQuantity sets the quantity of the line for productID. A quantity below 1
// removes the line. Unknown ids are ignored.
func (l *Ledger) SetQuantity(productID uint, qty int) {
	i, ok := l.index[productID]
	if !ok {
		return
	}
	if qty < 1 {
		l.removeAt(i)
		return
	}
	l.lines[i].Quantity = qty
}

// Remove drops the line for productID if present.
func (l *Ledger) Remove(productID uint) {
	if i, ok := l.index[productID]; ok {
		l.removeAt(i)
	}
}

func (l *Ledger) removeAt(i int) {
	delete(l.index, l.lines[i].Product.ID)
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	for j := i; j < len(l.lines); j++ {
		l.index[l.lines[j].Product.ID] = j
	}
}

func (l *Ledger) Clear() {
	l.lines = nil
	l.index = make(map[uint]int)
}

// Lines returns a copy of the current lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Len() int {
	return len(l.lines)
}

package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmart/pos/internal/models"
)

var (
	cola  = models.Product{ID: 1, Name: "Coca Cola 3L", Price: 2500, Category: "Bebidas"}
	papas = models.Product{ID: 2, Name: "Papas Lays", Price: 1200, Category: "Snacks"}
	pan   = models.Product{ID: 3, Name: "Pan Hallulla", Price: 2000, Category: "Panadería"}
)

func TestAddMergesSameProduct(t *testing.T) {
	l := NewLedger()

	l.Add(cola)
	l.Add(cola)
	l.Add(cola)

	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, cola.ID, lines[0].Product.ID)
	require.Equal(t, 3, lines[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	l := NewLedger()

	l.Add(cola)
	l.Add(papas)
	l.Add(pan)
	l.Add(papas)

	lines := l.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, uint(1), lines[0].Product.ID)
	require.Equal(t, uint(2), lines[1].Product.ID)
	require.Equal(t, uint(3), lines[2].Product.ID)
	require.Equal(t, 2, lines[1].Quantity)
}

func TestSetQuantity(t *testing.T) {
	l := NewLedger()
	l.Add(cola)
	l.Add(papas)

	l.SetQuantity(cola.ID, 5)
	require.Equal(t, 5, l.Lines()[0].Quantity)

	// order of the remaining lines must not change
	require.Equal(t, papas.ID, l.Lines()[1].Product.ID)
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1, -7} {
		l := NewLedger()
		l.Add(cola)
		l.Add(papas)

		l.SetQuantity(cola.ID, qty)

		lines := l.Lines()
		require.Len(t, lines, 1)
		require.Equal(t, papas.ID, lines[0].Product.ID)
	}
}

func TestSetQuantityUnknownIDIsNoop(t *testing.T) {
	l := NewLedger()
	l.Add(cola)

	l.SetQuantity(999, 4)

	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	l := NewLedger()
	l.Add(cola)
	l.Add(papas)
	l.Add(pan)

	l.Remove(papas.ID)

	lines := l.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, cola.ID, lines[0].Product.ID)
	require.Equal(t, pan.ID, lines[1].Product.ID)

	// removing again is a no-op
	l.Remove(papas.ID)
	require.Len(t, l.Lines(), 2)
}

func TestRemoveThenAddAppendsAtEnd(t *testing.T) {
	l := NewLedger()
	l.Add(cola)
	l.Add(papas)

	l.Remove(cola.ID)
	l.Add(cola)

	lines := l.Lines()
	require.Equal(t, papas.ID, lines[0].Product.ID)
	require.Equal(t, cola.ID, lines[1].Product.ID)
}

func TestClear(t *testing.T) {
	l := NewLedger()
	l.Add(cola)
	l.Add(papas)

	l.Clear()
	require.Zero(t, l.Len())

	// ledger stays usable after a clear
	l.Add(pan)
	require.Equal(t, 1, l.Len())
}

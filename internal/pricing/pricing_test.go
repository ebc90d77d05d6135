package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmart/pos/internal/cart"
	"github.com/greenmart/pos/internal/models"
)

func ticket() []cart.Line {
	l := cart.NewLedger()
	p1 := models.Product{ID: 1, Name: "Coca Cola 3L", Price: 1000}
	p2 := models.Product{ID: 2, Name: "Queso Gouda", Price: 2500}
	l.Add(p1)
	l.Add(p1)
	l.Add(p2)
	return l.Lines()
}

func TestSubtotalAndItemCount(t *testing.T) {
	lines := ticket()

	require.Equal(t, int64(3500), Subtotal(lines))
	require.Equal(t, 3, ItemCount(lines))
}

func TestSubtotalIsOrderIndependent(t *testing.T) {
	l := cart.NewLedger()
	l.Add(models.Product{ID: 2, Price: 2500})
	l.Add(models.Product{ID: 1, Price: 1000})
	l.Add(models.Product{ID: 1, Price: 1000})

	require.Equal(t, Subtotal(ticket()), Subtotal(l.Lines()))
}

func TestEmptyTicket(t *testing.T) {
	require.Zero(t, Subtotal(nil))
	require.Zero(t, ItemCount(nil))
	require.Zero(t, Tax(0))
}

func TestTaxRoundsHalfUp(t *testing.T) {
	cases := []struct {
		subtotal int64
		tax      int64
	}{
		{100, 19},   // exact
		{3500, 665}, // exact
		{50, 10},    // 9.5 rounds up
		{105, 20},   // 19.95 rounds up
		{103, 20},   // 19.57 rounds up
		{101, 19},   // 19.19 rounds down
	}
	for _, tc := range cases {
		require.Equal(t, tc.tax, Tax(tc.subtotal), "subtotal %d", tc.subtotal)
	}
}

func TestChargeTotalExcludesTax(t *testing.T) {
	// IVA is an informational line on the ticket, not part of the charge.
	require.Equal(t, int64(3500), ChargeTotal(3500))
}

func TestFormatCLP(t *testing.T) {
	require.Equal(t, "$3.500", FormatCLP(3500))
	require.Equal(t, "$1.234.567", FormatCLP(1234567))
	require.Equal(t, "$0", FormatCLP(0))
	require.Equal(t, "$950", FormatCLP(950))
}

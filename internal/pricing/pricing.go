package pricing

import (
	"github.com/greenmart/pos/internal/cart"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TaxRate is the Chilean IVA applied to the informational tax line.
const TaxRate = 0.19

// Subtotal sums price x quantity over the lines. Prices are whole pesos.
func Subtotal(lines []cart.Line) int64 {
	var total int64
	for _, ln := range lines {
		total += ln.Product.Price * int64(ln.Quantity)
	}
	return total
}

// ItemCount sums the quantities over the lines.
func ItemCount(lines []cart.Line) int {
	var n int
	for _, ln := range lines {
		n += ln.Quantity
	}
	return n
}

// Tax is the IVA on the subtotal, rounded half-up to the nearest peso.
func Tax(subtotal int64) int64 {
	return (subtotal*19 + 50) / 100
}

// ChargeTotal is the amount actually collected at the register. IVA is shown
// on the ticket but not added on top of it.
func ChargeTotal(subtotal int64) int64 {
	return subtotal
}

var clp = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders an amount with es-CL thousands grouping, e.g. 3500 ->
// "$3.500".
func FormatCLP(amount int64) string {
	return clp.Sprintf("$%d", amount)
}

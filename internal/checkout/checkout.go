package checkout

import (
	"errors"
	"strconv"
	"strings"
)

type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

var ErrUnknownMethod = errors.New("unknown payment method")

// Tender is what the customer offers against the total: a method, and for
// cash the amount handed over.
type Tender struct {
	Method       Method
	CashReceived int64
}

// ParseMethod accepts the wire form of a payment method.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(s)) {
	case MethodCash:
		return MethodCash, nil
	case MethodCard:
		return MethodCard, nil
	}
	return "", ErrUnknownMethod
}

// ParseCash parses a raw cash input. Empty or malformed input counts as zero,
// same as the register keypad treats a cleared field.
func ParseCash(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Valid reports whether the tender covers the total. Card is always valid;
// cash must meet or exceed the total.
func (t Tender) Valid(total int64) bool {
	return t.Method == MethodCard || t.CashReceived >= total
}

// Change is the cash to hand back, clamped at zero for display. Validation
// already blocks confirming an underpaid cash tender.
func (t Tender) Change(total int64) int64 {
	if t.Method != MethodCash {
		return 0
	}
	if c := t.CashReceived - total; c > 0 {
		return c
	}
	return 0
}

var presetSteps = []int64{1000, 5000, 10000, 20000}

// PresetAmounts suggests round cash tenders for the total: the total itself,
// then the total rounded up to each banknote denomination. Duplicates are
// dropped and nothing below the total survives; generation order is kept for
// the quick-tender buttons.
func PresetAmounts(total int64) []int64 {
	candidates := make([]int64, 0, len(presetSteps)+1)
	candidates = append(candidates, total)
	for _, step := range presetSteps {
		candidates = append(candidates, ceilTo(total, step))
	}

	seen := make(map[int64]bool, len(candidates))
	out := make([]int64, 0, len(candidates))
	for _, a := range candidates {
		if seen[a] || a < total {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func ceilTo(v, step int64) int64 {
	return (v + step - 1) / step * step
}

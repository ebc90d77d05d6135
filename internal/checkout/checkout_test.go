package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("cash")
	require.NoError(t, err)
	require.Equal(t, MethodCash, m)

	m, err = ParseMethod("CARD")
	require.NoError(t, err)
	require.Equal(t, MethodCard, m)

	_, err = ParseMethod("barter")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestParseCash(t *testing.T) {
	require.Equal(t, int64(5000), ParseCash("5000"))
	require.Equal(t, int64(5000), ParseCash(" 5000 "))
	require.Zero(t, ParseCash(""))
	require.Zero(t, ParseCash("abc"))
	require.Zero(t, ParseCash("-100"))
}

func TestCardIsAlwaysValid(t *testing.T) {
	tender := Tender{Method: MethodCard}
	require.True(t, tender.Valid(99999))
}

func TestCashValidity(t *testing.T) {
	require.True(t, Tender{Method: MethodCash, CashReceived: 5000}.Valid(3500))
	require.True(t, Tender{Method: MethodCash, CashReceived: 3500}.Valid(3500))
	require.False(t, Tender{Method: MethodCash, CashReceived: 3499}.Valid(3500))
	require.False(t, Tender{Method: MethodCash}.Valid(3500))
}

func TestChange(t *testing.T) {
	require.Equal(t, int64(1500), Tender{Method: MethodCash, CashReceived: 5000}.Change(3500))
	require.Zero(t, Tender{Method: MethodCash, CashReceived: 3500}.Change(3500))

	// underpayment renders as zero, never as negative change
	require.Zero(t, Tender{Method: MethodCash, CashReceived: 1000}.Change(3500))

	// card tenders never produce change
	require.Zero(t, Tender{Method: MethodCard, CashReceived: 9000}.Change(3500))
}

func TestPresetAmounts(t *testing.T) {
	require.Equal(t, []int64{3500, 4000, 5000, 10000, 20000}, PresetAmounts(3500))
}

func TestPresetAmountsDeduplicates(t *testing.T) {
	// a total already on a round denomination collapses candidates
	require.Equal(t, []int64{5000, 10000, 20000}, PresetAmounts(5000))
	require.Equal(t, []int64{20000}, PresetAmounts(20000))
	require.Equal(t, []int64{1000, 5000, 10000, 20000}, PresetAmounts(1000))
}

func TestPresetAmountsProperties(t *testing.T) {
	for _, total := range []int64{1, 999, 1000, 1001, 3500, 7777, 19999, 20001, 123456} {
		presets := PresetAmounts(total)
		require.NotEmpty(t, presets)

		seen := map[int64]bool{}
		for _, a := range presets {
			require.GreaterOrEqual(t, a, total, "total %d", total)
			require.False(t, seen[a], "duplicate preset for total %d", total)
			seen[a] = true
		}
	}
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateFor_TierBoundaries(t *testing.T) {
	cases := []struct {
		units int
		rate  string
	}{
		{1, "0.02"},
		{1249, "0.02"},
		{1250, "0.024"},
		{2499, "0.024"},
		{2500, "0.028"},
		{3749, "0.028"},
		{3750, "0.034"},
		{4999, "0.034"},
		{5000, "0.04"},
		{15000, "0.04"},
	}

	for _, tc := range cases {
		got := RateFor(tc.units)
		assert.Truef(t, got.Equal(decimal.RequireFromString(tc.rate)),
			"RateFor(%d) = %s, want %s", tc.units, got, tc.rate)
	}
}

func TestPayFor(t *testing.T) {
	cases := []struct {
		units int
		pay   string
	}{
		{1, "0.02"},
		{1249, "24.98"},
		{1250, "30.00"},
		{2499, "59.98"},  // 59.976
		{3749, "104.97"}, // 104.972
		{3750, "127.50"},
		{4999, "169.97"}, // 169.966
		{5000, "200.00"},
		{15000, "600.00"},
	}

	for _, tc := range cases {
		got := PayFor(tc.units)
		assert.Equalf(t, tc.pay, got.StringFixed(2), "PayFor(%d)", tc.units)
		assert.Truef(t, got.Equal(decimal.NewFromInt(int64(tc.units)).Mul(RateFor(tc.units)).Round(2)),
			"PayFor(%d) disagrees with round(units*rate, 2)", tc.units)
	}
}

func TestPayFor_AllValidUnitsHaveAtMostTwoPlaces(t *testing.T) {
	for units := MinUnits; units <= MaxUnits; units++ {
		pay := PayFor(units)
		if !pay.Equal(pay.Round(2)) {
			t.Fatalf("PayFor(%d) = %s has more than two decimal places", units, pay)
		}
	}
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	if assert.Len(t, tiers, 5) {
		assert.Equal(t, 1, tiers[0].Min)
		assert.Equal(t, 1250, tiers[0].Max)
		assert.Equal(t, 5000, tiers[4].Min)
		assert.Equal(t, 0, tiers[4].Max, "last tier is open-ended")
	}

	for i := 1; i < len(tiers); i++ {
		assert.Equal(t, tiers[i-1].Max, tiers[i].Min, "tiers must be contiguous")
		assert.True(t, tiers[i].Rate.GreaterThan(tiers[i-1].Rate), "rates must ascend")
	}
}

func TestQuote(t *testing.T) {
	rate, pay, err := Quote(" 2500 ")
	if assert.NoError(t, err) {
		assert.Equal(t, "0.028", rate.String())
		assert.Equal(t, "70.00", pay.StringFixed(2))
	}

	_, _, err = Quote("15001")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, _, err = Quote("many")
	assert.ErrorIs(t, err, ErrNotANumber)
}

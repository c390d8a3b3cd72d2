package domain

import "github.com/shopspring/decimal"

const (
	// MinUnits and MaxUnits bound the messages a single entry may report
	MinUnits = 1
	MaxUnits = 15000

	payPlaces = 2
)

// Tier is a contiguous range of unit counts sharing one per-unit rate.
// Max is exclusive; the last tier has Max == 0 and is open-ended.
type Tier struct {
	Min  int
	Max  int
	Rate decimal.Decimal
}

var (
	tierMinimums = []int{1, 1250, 2500, 3750, 5000}
	tierRates    = []decimal.Decimal{
		decimal.RequireFromString("0.02"),
		decimal.RequireFromString("0.024"),
		decimal.RequireFromString("0.028"),
		decimal.RequireFromString("0.034"),
		decimal.RequireFromString("0.04"),
	}
)

// Tiers returns the rate table in ascending order
func Tiers() []Tier {
	tiers := make([]Tier, len(tierMinimums))
	for i, min := range tierMinimums {
		t := Tier{Min: min, Rate: tierRates[i]}
		if i+1 < len(tierMinimums) {
			t.Max = tierMinimums[i+1]
		}
		tiers[i] = t
	}
	return tiers
}

// RateFor returns the per-unit rate for the given number of units.
// Callers validate units first; anything at or above the last minimum gets the top rate.
func RateFor(units int) decimal.Decimal {
	last := len(tierMinimums) - 1
	for i := 0; i < last; i++ {
		if units >= tierMinimums[i] && units < tierMinimums[i+1] {
			return tierRates[i]
		}
	}
	return tierRates[last]
}

// PayFor returns units * rate rounded half away from zero to the cent
func PayFor(units int) decimal.Decimal {
	return decimal.NewFromInt(int64(units)).Mul(RateFor(units)).Round(payPlaces)
}

// Quote validates unitsText and returns its rate and pay without creating a Worker
func Quote(unitsText string) (rate, pay decimal.Decimal, err error) {
	units, verr := parseUnits(unitsText)
	if verr != nil {
		return decimal.Zero, decimal.Zero, ValidationErrors{verr}
	}
	return RateFor(units), PayFor(units), nil
}

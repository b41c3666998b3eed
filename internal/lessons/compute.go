package lessons

import "github.com/shopspring/decimal"

var sixty = decimal.NewFromInt(60)

// ComputeTotal computes the revenue for one day at one location.
//
// Each lesson contributes count × (duration/60) × hourly rate. Types with
// a zero count or a zero rate contribute nothing, so missing entries are
// equivalent to zero entries and the function is total over its domain.
// The sum is rounded half-up to the nearest currency unit once, at the
// very end.
func ComputeTotal(counts Counts, rates RateMap, duration Duration) int64 {
	multiplier := decimal.NewFromInt(int64(duration)).Div(sixty)

	total := decimal.Zero
	for _, t := range Types() {
		count := counts[t]
		hourlyRate := rates[t].Amount

		if count == 0 || hourlyRate == 0 {
			continue
		}

		contribution := decimal.NewFromInt(count).
			Mul(multiplier).
			Mul(decimal.NewFromInt(hourlyRate))
		total = total.Add(contribution)
	}

	return total.Round(0).IntPart()
}

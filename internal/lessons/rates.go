package lessons

import "github.com/wiw0411-bot/tennisforum/internal/types"

// Rate is the tariff for one lesson type.
type Rate struct {
	Type   IncomeType `json:"type" example:"hourly"` // How the rate is charged
	Amount int64      `json:"amount" example:"50000"` // Currency per hour, non-negative
}

// RateMap maps every lesson type to its tariff.
type RateMap map[Type]Rate

// Normalized returns a copy of the map with an entry for every lesson
// type. Missing entries default to an hourly rate of 0.
func (r RateMap) Normalized() RateMap {
	normalized := make(RateMap, len(Types()))
	for _, t := range Types() {
		rate, ok := r[t]
		if !ok {
			rate = Rate{Type: IncomeHourly, Amount: 0}
		}
		if rate.Type == "" {
			rate.Type = IncomeHourly
		}
		normalized[t] = rate
	}
	return normalized
}

// RateSettings holds the weekday and weekend tariffs of a location.
type RateSettings struct {
	Weekday RateMap `json:"weekday"`
	Weekend RateMap `json:"weekend"`
}

// Normalized returns the settings with both maps normalized.
func (s RateSettings) Normalized() RateSettings {
	return RateSettings{
		Weekday: s.Weekday.Normalized(),
		Weekend: s.Weekend.Normalized(),
	}
}

// ForDate selects the rate map that applies on the given date. Saturday
// and Sunday use the weekend map, every other day the weekday map. The
// selection happens once per save or view, not per lesson type.
func (s RateSettings) ForDate(date types.Date) RateMap {
	if date.IsWeekend() {
		return s.Weekend
	}
	return s.Weekday
}

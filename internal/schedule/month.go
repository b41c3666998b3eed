package schedule

import (
	"context"
	"time"

	"github.com/wiw0411-bot/tennisforum/internal/holidays"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

// Day is one cell of the calendar grid.
type Day struct {
	Day      int          `json:"day" example:"8"`
	Date     types.Date   `json:"date"`
	Weekday  time.Weekday `json:"weekday"`
	Weekend  bool         `json:"weekend"`
	Holiday  bool         `json:"holiday"`
	Today    bool         `json:"today"`
	Total    int64        `json:"total"`    // Summed revenue of the day, 0 if none
	HasNotes bool         `json:"hasNotes"` // At least one note exists
}

// MonthView is the derived calendar for one month. It is computed from
// the ledgers on every request and never persisted.
type MonthView struct {
	Month         types.Month `json:"month"`
	LeadingBlanks int         `json:"leadingBlanks"` // Blank cells before day 1, equal to its weekday offset
	Days          []Day       `json:"days"`
	Total         int64       `json:"total"`
	TotalDisplay  string      `json:"totalDisplay" example:"1,250,000원"`
}

// MonthView builds the calendar for one month: the day grid with its
// leading blanks, per-day holiday and weekend classification, summed
// revenue and note markers, and the monthly total.
func (c *Controller) MonthView(ctx context.Context, month types.Month) (MonthView, error) {
	totals, err := c.revenues.MonthlyTotals(ctx, month)
	if err != nil {
		return MonthView{}, err
	}

	noted, err := c.notes.DatesWithNotes(ctx, month)
	if err != nil {
		return MonthView{}, err
	}

	today := types.DateOf(c.Now())

	view := MonthView{
		Month:         month,
		LeadingBlanks: int(month.FirstWeekday()),
		Days:          make([]Day, 0, month.Days()),
	}

	for day := 1; day <= month.Days(); day++ {
		date := month.Date(day)
		_, hasNotes := noted[date]

		view.Days = append(view.Days, Day{
			Day:      day,
			Date:     date,
			Weekday:  date.Weekday(),
			Weekend:  date.IsWeekend(),
			Holiday:  holidays.Contains(date),
			Today:    date.Equal(today),
			Total:    totals[date],
			HasNotes: hasNotes,
		})

		view.Total += totals[date]
	}

	view.TotalDisplay = FormatKRW(view.Total)
	return view, nil
}

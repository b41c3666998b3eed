// Package schedule orchestrates the calendar: it aggregates the ledgers
// into day and month views and drives revenue entry against the rate
// profiles.
package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

var (
	ErrDurationInvalid   = errors.New("the lesson duration must be 20, 30 or 60 minutes")
	ErrLessonTypeInvalid = errors.New("the lesson counts contain an unknown lesson type")
	ErrCountNegative     = errors.New("lesson counts must not be negative")
)

// Controller aggregates the three ledgers of one user.
//
// All mutations are command-style: the write to the store happens first
// and nothing else changes when it fails, so a failed save never leaves
// partial state behind.
type Controller struct {
	profiles *ledger.RateProfiles
	revenues *ledger.Revenues
	notes    *ledger.Notes

	// Now is the clock used to flag "today" in views. Overridable in tests.
	Now func() time.Time
}

// NewController returns a Controller over the given ledgers.
func NewController(profiles *ledger.RateProfiles, revenues *ledger.Revenues, notes *ledger.Notes) *Controller {
	return &Controller{
		profiles: profiles,
		revenues: revenues,
		notes:    notes,
		Now:      time.Now,
	}
}

// Profiles returns the rate profile store.
func (c *Controller) Profiles() *ledger.RateProfiles {
	return c.profiles
}

// Notes returns the note ledger.
func (c *Controller) Notes() *ledger.Notes {
	return c.notes
}

// SaveRevenue computes and upserts the revenue entry for one location on
// one date.
//
// The weekday or weekend rate map is selected once from the date, the
// total is computed from the profile's current rates and the location
// name is snapshotted. Later profile edits do not change the stored
// entry.
func (c *Controller) SaveRevenue(ctx context.Context, date types.Date, locationID string, counts lessons.Counts, duration lessons.Duration) (ledger.RevenueEntry, error) {
	if !duration.Valid() {
		return ledger.RevenueEntry{}, ErrDurationInvalid
	}
	for lessonType, count := range counts {
		if !lessonType.Valid() {
			return ledger.RevenueEntry{}, ErrLessonTypeInvalid
		}
		if count < 0 {
			return ledger.RevenueEntry{}, ErrCountNegative
		}
	}

	profile, err := c.profiles.Get(ctx, locationID)
	if err != nil {
		return ledger.RevenueEntry{}, err
	}

	rates := profile.Rates.Normalized().ForDate(date)

	entry := ledger.RevenueEntry{
		LocationID:   profile.ID,
		LocationName: profile.Name,
		Counts:       counts,
		Duration:     duration,
		Total:        lessons.ComputeTotal(counts, rates, duration),
	}

	err = c.revenues.Upsert(ctx, date, entry)
	if err != nil {
		return ledger.RevenueEntry{}, err
	}

	return entry, nil
}

// DeleteRevenue removes the revenue entry of one location on one date.
func (c *Controller) DeleteRevenue(ctx context.Context, date types.Date, locationID string) error {
	return c.revenues.DeleteForLocation(ctx, date, locationID)
}

// DayView is the detail panel below the calendar.
type DayView struct {
	Date         types.Date            `json:"date"`
	Entries      []ledger.RevenueEntry `json:"entries"`
	Notes        []ledger.Note         `json:"notes"`
	Total        int64                 `json:"total"`
	TotalDisplay string                `json:"totalDisplay" example:"100,000원"`
}

// DayView returns the revenue entries and notes for one date.
func (c *Controller) DayView(ctx context.Context, date types.Date) (DayView, error) {
	entries, err := c.revenues.ForDate(ctx, date)
	if err != nil {
		return DayView{}, err
	}

	notes, err := c.notes.ForDate(ctx, date)
	if err != nil {
		return DayView{}, err
	}

	var total int64
	for _, e := range entries {
		total += e.Total
	}

	return DayView{
		Date:         date,
		Entries:      entries,
		Notes:        notes,
		Total:        total,
		TotalDisplay: FormatKRW(total),
	}, nil
}

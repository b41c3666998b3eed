package ledger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

// RevenueEntry is one location's lesson counts and computed total for
// one calendar date.
//
// LocationName is a snapshot of the profile name at save time and does
// not follow later renames. Total is computed once at save time, edits
// to the profile's rates do not change stored entries.
type RevenueEntry struct {
	LocationID   string           `json:"locationId"`
	LocationName string           `json:"locationName" example:"Gangnam"`
	Counts       lessons.Counts   `json:"counts"`
	Duration     lessons.Duration `json:"duration" example:"60"`
	Total        int64            `json:"total" example:"100000"`
}

// Revenues stores the daily revenue entries of one user, one document
// per date holding the list of entries for that date.
type Revenues struct {
	store  docstore.Store
	userID string
}

// NewRevenues returns the revenue ledger for a user.
func NewRevenues(store docstore.Store, userID string) *Revenues {
	return &Revenues{store: store, userID: userID}
}

type revenueDocument struct {
	Entries []RevenueEntry `json:"entries"`
}

// ForDate returns all entries for a date.
func (r *Revenues) ForDate(ctx context.Context, date types.Date) ([]RevenueEntry, error) {
	if r.userID == "" {
		return []RevenueEntry{}, nil
	}

	data, err := r.store.Get(ctx, r.userID, docstore.CollectionRevenues, date.String())
	if errors.Is(err, docstore.ErrNotFound) {
		return []RevenueEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc revenueDocument
	err = json.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	return doc.Entries, nil
}

// Upsert inserts the entry into the date's list, replacing an existing
// entry for the same location. The merge is list-level, entries for
// other locations on the same date stay untouched.
//
// The read-modify-write is a single round trip without a concurrency
// token. Two sessions saving the same (date, location) at the same time
// resolve to last write wins; this is a known, accepted race.
func (r *Revenues) Upsert(ctx context.Context, date types.Date, entry RevenueEntry) error {
	if r.userID == "" {
		return ErrNoIdentity
	}

	existing, err := r.ForDate(ctx, date)
	if err != nil {
		return err
	}

	entries := make([]RevenueEntry, 0, len(existing)+1)
	for _, e := range existing {
		if e.LocationID != entry.LocationID {
			entries = append(entries, e)
		}
	}
	entries = append(entries, entry)

	return r.write(ctx, date, entries)
}

// DeleteForLocation removes the entry for one location on one date. If
// it was the last entry of the date, the date document itself is
// removed rather than an empty list being stored.
func (r *Revenues) DeleteForLocation(ctx context.Context, date types.Date, locationID string) error {
	if r.userID == "" {
		return ErrNoIdentity
	}

	existing, err := r.ForDate(ctx, date)
	if err != nil {
		return err
	}

	entries := make([]RevenueEntry, 0, len(existing))
	for _, e := range existing {
		if e.LocationID != locationID {
			entries = append(entries, e)
		}
	}

	if len(entries) == 0 {
		return r.store.Delete(ctx, r.userID, docstore.CollectionRevenues, date.String())
	}

	return r.write(ctx, date, entries)
}

// DailyTotal returns the sum of all entry totals for a date.
func (r *Revenues) DailyTotal(ctx context.Context, date types.Date) (int64, error) {
	entries, err := r.ForDate(ctx, date)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range entries {
		total += e.Total
	}

	return total, nil
}

// MonthlyTotal returns the sum of the daily totals over every date key
// within the month.
func (r *Revenues) MonthlyTotal(ctx context.Context, month types.Month) (int64, error) {
	totals, err := r.MonthlyTotals(ctx, month)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, daily := range totals {
		total += daily
	}

	return total, nil
}

// MonthlyTotals returns the daily totals of the month keyed by date.
func (r *Revenues) MonthlyTotals(ctx context.Context, month types.Month) (map[types.Date]int64, error) {
	totals := make(map[types.Date]int64)
	if r.userID == "" {
		return totals, nil
	}

	keys, err := r.store.Keys(ctx, r.userID, docstore.CollectionRevenues, month.KeyPattern())
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		date, err := types.ParseDate(key)
		if err != nil {
			// Skip keys that are not date keys, nothing should write them.
			continue
		}

		daily, err := r.DailyTotal(ctx, date)
		if err != nil {
			return nil, err
		}

		totals[date] = daily
	}

	return totals, nil
}

func (r *Revenues) write(ctx context.Context, date types.Date, entries []RevenueEntry) error {
	data, err := json.Marshal(revenueDocument{Entries: entries})
	if err != nil {
		return err
	}

	return r.store.Set(ctx, r.userID, docstore.CollectionRevenues, date.String(), data)
}

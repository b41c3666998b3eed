package v1

import (
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/schedule"
)

// RevenueEditable represents all user configurable parameters of a
// revenue entry. The total is always computed server side from the
// location's current rates.
type RevenueEditable struct {
	Counts   lessons.Counts   `json:"counts"`                // Lesson counts per lesson type
	Duration lessons.Duration `json:"duration" example:"60"` // Lesson duration in minutes, one of 20, 30 or 60
}

type RevenueResponse struct {
	Data  *ledger.RevenueEntry `json:"data"`                                                              // Data for the revenue entry
	Error *string              `json:"error" example:"the lesson duration must be 20, 30 or 60 minutes"` // The error, if any occurred
}

type DayResponse struct {
	Data  *schedule.DayView `json:"data"`                                                              // Data for the date
	Error *string           `json:"error" example:"the lesson duration must be 20, 30 or 60 minutes"` // The error, if any occurred
}

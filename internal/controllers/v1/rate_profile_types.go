package v1

import (
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
)

// RateProfileEditable represents all user configurable parameters
type RateProfileEditable struct {
	Name  string               `json:"name" example:"Gangnam" default:""` // Name of the teaching location
	Rates lessons.RateSettings `json:"rates"`                             // Hourly rates per lesson type for weekdays and weekends
}

type RateProfileResponse struct {
	Data  *ledger.RateProfile `json:"data"`                                                    // Data for the rate profile
	Error *string             `json:"error" example:"the rate profile name must not be empty"` // The error, if any occurred
}

type RateProfileListResponse struct {
	Data  []ledger.RateProfile `json:"data"`                                                    // List of rate profiles
	Error *string              `json:"error" example:"the rate profile name must not be empty"` // The error, if any occurred
}

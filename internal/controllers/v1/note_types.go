package v1

import (
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
)

// NoteEditable represents all user configurable parameters
type NoteEditable struct {
	Type lessons.NoteType `json:"type" example:"work"`                            // Type of the note
	Memo string           `json:"memo" example:"Court 3 closed for maintenance"` // Free-text memo, must not be empty
}

type NoteResponse struct {
	Data  *ledger.Note `json:"data"`                                             // Data for the note
	Error *string      `json:"error" example:"the note memo must not be empty"` // The error, if any occurred
}

package v1

import (
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2025-01"` // Year and month in YYYY-MM format
}

type URIDate struct {
	Date types.Date `uri:"date" binding:"required" example:"2025-01-08"` // Date in YYYY-MM-DD format
}

type URIDateLocation struct {
	URIDate
	LocationID string `uri:"locationId" binding:"required" format:"UUID"` // ID of the rate profile
}

type URIDateNote struct {
	URIDate
	NoteID string `uri:"noteId" binding:"required" format:"UUID"` // ID of the note
}

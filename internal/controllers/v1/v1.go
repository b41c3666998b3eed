// Package v1 implements the v1 REST API. Every handler builds the
// schedule controller for the authenticated user from the injected
// document store, there is no package-level state.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/schedule"
)

// ContextUserID is the gin context key under which the authentication
// middleware stores the id of the authenticated user.
const ContextUserID = "userID"

// Server holds the dependencies of the v1 API handlers.
type Server struct {
	store docstore.Store
}

// NewServer returns a Server using the given document store.
func NewServer(store docstore.Store) Server {
	return Server{store: store}
}

// RegisterRoutes registers the v1 routes with the RouterGroup that is
// passed.
func (s Server) RegisterRoutes(r *gin.RouterGroup) {
	// Rate profiles
	{
		r.OPTIONS("/rate-profiles", OptionsRateProfileList)
		r.GET("/rate-profiles", s.GetRateProfiles)
		r.POST("/rate-profiles", s.CreateRateProfile)

		r.OPTIONS("/rate-profiles/:id", OptionsRateProfileDetail)
		r.GET("/rate-profiles/:id", s.GetRateProfile)
		r.PATCH("/rate-profiles/:id", s.UpdateRateProfile)
		r.DELETE("/rate-profiles/:id", s.DeleteRateProfile)
	}

	// Calendar
	{
		r.OPTIONS("/months/:month", OptionsMonth)
		r.GET("/months/:month", s.GetMonth)

		r.OPTIONS("/dates/:date", OptionsDay)
		r.GET("/dates/:date", s.GetDay)
	}

	// Revenues
	{
		r.OPTIONS("/dates/:date/revenues/:locationId", OptionsRevenueDetail)
		r.PUT("/dates/:date/revenues/:locationId", s.PutRevenue)
		r.DELETE("/dates/:date/revenues/:locationId", s.DeleteRevenue)
	}

	// Notes
	{
		r.OPTIONS("/dates/:date/notes", OptionsNoteList)
		r.POST("/dates/:date/notes", s.CreateNote)

		r.OPTIONS("/dates/:date/notes/:noteId", OptionsNoteDetail)
		r.PATCH("/dates/:date/notes/:noteId", s.UpdateNote)
		r.DELETE("/dates/:date/notes/:noteId", s.DeleteNote)
	}
}

// controller returns the schedule controller scoped to the
// authenticated user of the request.
func (s Server) controller(c *gin.Context) *schedule.Controller {
	userID := c.GetString(ContextUserID)

	return schedule.NewController(
		ledger.NewRateProfiles(s.store, userID),
		ledger.NewRevenues(s.store, userID),
		ledger.NewNotes(s.store, userID),
	)
}

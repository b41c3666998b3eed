package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wiw0411-bot/tennisforum/internal/httputil"
	"github.com/wiw0411-bot/tennisforum/internal/schedule"
)

type MonthResponse struct {
	Data  *schedule.MonthView `json:"data"`                                       // Data for the month
	Error *string             `json:"error" example:"parsing time as 2006-01"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns the calendar for one month: the day grid with leading blanks, per-day totals, weekend, holiday and note markers, and the monthly total
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"Year and month in YYYY-MM format"
// @Security		BearerAuth
// @Router			/v1/months/{month} [get]
func (s Server) GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	view, err := s.controller(c).MonthView(c.Request.Context(), uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &view})
}

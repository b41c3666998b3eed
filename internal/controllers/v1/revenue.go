package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wiw0411-bot/tennisforum/internal/httputil"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/dates/{date} [options]
func OptionsDay(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Revenues
// @Success		204
// @Failure		400	{object}	httpError
// @Param			date		path	string	true	"Date in YYYY-MM-DD format"
// @Param			locationId	path	string	true	"ID of the rate profile"
// @Router			/v1/dates/{date}/revenues/{locationId} [options]
func OptionsRevenueDetail(c *gin.Context) {
	_, _, err := dateLocation(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPutDelete(c)
}

// @Summary		Get date
// @Description	Returns the revenue entries and notes for one date together with the daily total
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	DayResponse
// @Failure		500		{object}	DayResponse
// @Param			date	path		string	true	"Date in YYYY-MM-DD format"
// @Security		BearerAuth
// @Router			/v1/dates/{date} [get]
func (s Server) GetDay(c *gin.Context) {
	var uri URIDate
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DayResponse{Error: &e})
		return
	}

	view, err := s.controller(c).DayView(c.Request.Context(), uri.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DayResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &view})
}

// @Summary		Save revenue
// @Description	Computes and saves the revenue entry of one location on one date, replacing an existing entry for the location. The total is computed from the location's current rates, weekend rates apply on Saturdays and Sundays.
// @Tags			Revenues
// @Accept			json
// @Produce		json
// @Success		200			{object}	RevenueResponse
// @Failure		400			{object}	RevenueResponse
// @Failure		401			{object}	RevenueResponse
// @Failure		404			{object}	RevenueResponse
// @Failure		500			{object}	RevenueResponse
// @Param			date		path		string			true	"Date in YYYY-MM-DD format"
// @Param			locationId	path		string			true	"ID of the rate profile"
// @Param			revenue		body		RevenueEditable	true	"Revenue entry"
// @Security		BearerAuth
// @Router			/v1/dates/{date}/revenues/{locationId} [put]
func (s Server) PutRevenue(c *gin.Context) {
	date, locationID, err := dateLocation(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevenueResponse{Error: &e})
		return
	}

	var editable RevenueEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevenueResponse{Error: &e})
		return
	}

	entry, err := s.controller(c).SaveRevenue(c.Request.Context(), date, locationID, editable.Counts, editable.Duration)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevenueResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RevenueResponse{Data: &entry})
}

// @Summary		Delete revenue
// @Description	Removes the revenue entry of one location on one date
// @Tags			Revenues
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			date		path	string	true	"Date in YYYY-MM-DD format"
// @Param			locationId	path	string	true	"ID of the rate profile"
// @Security		BearerAuth
// @Router			/v1/dates/{date}/revenues/{locationId} [delete]
func (s Server) DeleteRevenue(c *gin.Context) {
	date, locationID, err := dateLocation(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = s.controller(c).DeleteRevenue(c.Request.Context(), date, locationID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// dateLocation binds and validates the date and location id of the
// request URI.
func dateLocation(c *gin.Context) (types.Date, string, error) {
	var uri URIDateLocation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return types.Date{}, "", errDateInvalid
	}

	if uuid.Validate(uri.LocationID) != nil {
		return types.Date{}, "", httputil.ErrInvalidUUID
	}

	return uri.Date, uri.LocationID, nil
}

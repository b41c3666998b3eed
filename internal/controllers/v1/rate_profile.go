package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wiw0411-bot/tennisforum/internal/httputil"
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"golang.org/x/exp/slices"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RateProfiles
// @Success		204
// @Router			/v1/rate-profiles [options]
func OptionsRateProfileList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RateProfiles
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID of the rate profile"
// @Router			/v1/rate-profiles/{id} [options]
func OptionsRateProfileDetail(c *gin.Context) {
	_, err := profileID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create rate profile
// @Description	Creates a new rate profile. Missing lesson types default to an hourly rate of 0.
// @Tags			RateProfiles
// @Accept			json
// @Produce		json
// @Success		201		{object}	RateProfileResponse
// @Failure		400		{object}	RateProfileResponse
// @Failure		401		{object}	RateProfileResponse
// @Failure		500		{object}	RateProfileResponse
// @Param			profile	body		RateProfileEditable	true	"Rate profile"
// @Security		BearerAuth
// @Router			/v1/rate-profiles [post]
func (s Server) CreateRateProfile(c *gin.Context) {
	var editable RateProfileEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	profile, err := s.controller(c).Profiles().Create(c.Request.Context(), editable.Name, editable.Rates)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, RateProfileResponse{Data: &profile})
}

// @Summary		List rate profiles
// @Description	Returns all rate profiles of the authenticated user, sorted by name
// @Tags			RateProfiles
// @Produce		json
// @Success		200	{object}	RateProfileListResponse
// @Failure		500	{object}	RateProfileListResponse
// @Security		BearerAuth
// @Router			/v1/rate-profiles [get]
func (s Server) GetRateProfiles(c *gin.Context) {
	profiles, err := s.controller(c).Profiles().List(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileListResponse{Error: &e})
		return
	}

	// The store returns profiles in key order, which is meaningless to
	// clients. Sort by name for a stable picker.
	slices.SortFunc(profiles, func(a, b ledger.RateProfile) int {
		return strings.Compare(a.Name, b.Name)
	})

	c.JSON(http.StatusOK, RateProfileListResponse{Data: profiles})
}

// @Summary		Get rate profile
// @Description	Returns a specific rate profile
// @Tags			RateProfiles
// @Produce		json
// @Success		200	{object}	RateProfileResponse
// @Failure		400	{object}	RateProfileResponse
// @Failure		404	{object}	RateProfileResponse
// @Failure		500	{object}	RateProfileResponse
// @Param			id	path		string	true	"ID of the rate profile"
// @Security		BearerAuth
// @Router			/v1/rate-profiles/{id} [get]
func (s Server) GetRateProfile(c *gin.Context) {
	id, err := profileID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	profile, err := s.controller(c).Profiles().Get(c.Request.Context(), id)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RateProfileResponse{Data: &profile})
}

// @Summary		Update rate profile
// @Description	Replaces the name and rates of an existing rate profile. The ID is immutable and revenue entries keep their name snapshot.
// @Tags			RateProfiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	RateProfileResponse
// @Failure		400		{object}	RateProfileResponse
// @Failure		404		{object}	RateProfileResponse
// @Failure		500		{object}	RateProfileResponse
// @Param			id		path		string				true	"ID of the rate profile"
// @Param			profile	body		RateProfileEditable	true	"Rate profile"
// @Security		BearerAuth
// @Router			/v1/rate-profiles/{id} [patch]
func (s Server) UpdateRateProfile(c *gin.Context) {
	id, err := profileID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	var editable RateProfileEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	profile, err := s.controller(c).Profiles().Update(c.Request.Context(), id, editable.Name, editable.Rates)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RateProfileResponse{Data: &profile})
}

// @Summary		Delete rate profile
// @Description	Deletes a rate profile. Revenue entries referencing it are kept and keep displaying their name snapshot.
// @Tags			RateProfiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the rate profile"
// @Security		BearerAuth
// @Router			/v1/rate-profiles/{id} [delete]
func (s Server) DeleteRateProfile(c *gin.Context) {
	id, err := profileID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = s.controller(c).Profiles().Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// profileID binds and validates the rate profile id of the request URI.
func profileID(c *gin.Context) (string, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return "", httputil.ErrInvalidUUID
	}

	if uuid.Validate(uri.ID) != nil {
		return "", httputil.ErrInvalidUUID
	}

	return uri.ID, nil
}

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
// @Tags			Notes
// @Success		204
// @Router			/v1/dates/{date}/notes [options]
func OptionsNoteList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Failure		400	{object}	httpError
// @Param			date	path	string	true	"Date in YYYY-MM-DD format"
// @Param			noteId	path	string	true	"ID of the note"
// @Router			/v1/dates/{date}/notes/{noteId} [options]
func OptionsNoteDetail(c *gin.Context) {
	_, _, err := dateNote(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// @Summary		Create note
// @Description	Appends a note to one date. Notes keep their insertion order.
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		201		{object}	NoteResponse
// @Failure		400		{object}	NoteResponse
// @Failure		401		{object}	NoteResponse
// @Failure		500		{object}	NoteResponse
// @Param			date	path		string			true	"Date in YYYY-MM-DD format"
// @Param			note	body		NoteEditable	true	"Note"
// @Security		BearerAuth
// @Router			/v1/dates/{date}/notes [post]
func (s Server) CreateNote(c *gin.Context) {
	var uri URIDate
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := errDateInvalid.Error()
		c.JSON(status(errDateInvalid), NoteResponse{Error: &e})
		return
	}

	var editable NoteEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NoteResponse{Error: &e})
		return
	}

	note, err := s.controller(c).Notes().Append(c.Request.Context(), uri.Date, editable.Type, editable.Memo)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NoteResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, NoteResponse{Data: &note})
}

// @Summary		Update note
// @Description	Replaces the type and memo of an existing note
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		200		{object}	NoteResponse
// @Failure		400		{object}	NoteResponse
// @Failure		401		{object}	NoteResponse
// @Failure		404		{object}	NoteResponse
// @Failure		500		{object}	NoteResponse
// @Param			date	path		string			true	"Date in YYYY-MM-DD format"
// @Param			noteId	path		string			true	"ID of the note"
// @Param			note	body		NoteEditable	true	"Note"
// @Security		BearerAuth
// @Router			/v1/dates/{date}/notes/{noteId} [patch]
func (s Server) UpdateNote(c *gin.Context) {
	date, noteID, err := dateNote(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NoteResponse{Error: &e})
		return
	}

	var editable NoteEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NoteResponse{Error: &e})
		return
	}

	note, err := s.controller(c).Notes().Update(c.Request.Context(), date, noteID, editable.Type, editable.Memo)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NoteResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, NoteResponse{Data: &note})
}

// @Summary		Delete note
// @Description	Deletes a note
// @Tags			Notes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			date	path	string	true	"Date in YYYY-MM-DD format"
// @Param			noteId	path	string	true	"ID of the note"
// @Security		BearerAuth
// @Router			/v1/dates/{date}/notes/{noteId} [delete]
func (s Server) DeleteNote(c *gin.Context) {
	date, noteID, err := dateNote(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = s.controller(c).Notes().Delete(c.Request.Context(), date, noteID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// dateNote binds and validates the date and note id of the request URI.
func dateNote(c *gin.Context) (types.Date, string, error) {
	var uri URIDateNote
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return types.Date{}, "", errDateInvalid
	}

	if uuid.Validate(uri.NoteID) != nil {
		return types.Date{}, "", httputil.ErrInvalidUUID
	}

	return uri.Date, uri.NoteID, nil
}

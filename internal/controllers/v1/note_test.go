package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/wiw0411-bot/tennisforum/internal/controllers/v1"
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/test"
)

// createTestNote creates a note through the API.
func (suite *TestSuiteStandard) createTestNote(date string, noteType lessons.NoteType, memo string) ledger.Note {
	r := suite.request(http.MethodPost, "/v1/dates/"+date+"/notes", v1.NoteEditable{Type: noteType, Memo: memo})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.NoteResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestOptionsNoteList() {
	r := suite.request(http.MethodOptions, "/v1/dates/2025-01-08/notes", "")

	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsNoteDetail() {
	r := suite.request(http.MethodOptions, "/v1/dates/2025-01-08/notes/"+uuid.NewString(), "")
	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/v1/dates/2025-01-08/notes/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNoteCreate() {
	note := suite.createTestNote("2025-01-08", lessons.NoteTypeWork, "Court 3 closed for maintenance")

	suite.Assert().NotEmpty(note.ID)
	suite.Assert().Equal(lessons.NoteTypeWork, note.Type)
	suite.Assert().Equal("Court 3 closed for maintenance", note.Memo)

	r := suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Require().Len(day.Data.Notes, 1)
	suite.Assert().Equal(note, day.Data.Notes[0])
}

func (suite *TestSuiteStandard) TestNoteCreateOrder() {
	first := suite.createTestNote("2025-01-08", lessons.NoteTypeWork, "Morning session")
	second := suite.createTestNote("2025-01-08", lessons.NoteTypeNoShow, "Afternoon no-show")

	r := suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Require().Len(day.Data.Notes, 2)
	suite.Assert().Equal(first.ID, day.Data.Notes[0].ID)
	suite.Assert().Equal(second.ID, day.Data.Notes[1].ID)
}

func (suite *TestSuiteStandard) TestNoteCreateEmptyMemo() {
	r := suite.request(http.MethodPost, "/v1/dates/2025-01-08/notes", v1.NoteEditable{
		Type: lessons.NoteTypeWork,
		Memo: "   ",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNoteCreateInvalidType() {
	r := suite.request(http.MethodPost, "/v1/dates/2025-01-08/notes", v1.NoteEditable{
		Type: lessons.NoteType("diary"),
		Memo: "Some memo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNoteUpdate() {
	note := suite.createTestNote("2025-01-08", lessons.NoteTypeWork, "Court 3 closed")

	r := suite.request(http.MethodPatch, "/v1/dates/2025-01-08/notes/"+note.ID, v1.NoteEditable{
		Type: lessons.NoteTypeSpecialNote,
		Memo: "Court 3 reopened",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NoteResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(note.ID, response.Data.ID)
	suite.Assert().Equal(lessons.NoteTypeSpecialNote, response.Data.Type)
	suite.Assert().Equal("Court 3 reopened", response.Data.Memo)
}

func (suite *TestSuiteStandard) TestNoteUpdateNonexistent() {
	r := suite.request(http.MethodPatch, "/v1/dates/2025-01-08/notes/"+uuid.NewString(), v1.NoteEditable{
		Type: lessons.NoteTypeWork,
		Memo: "Some memo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNoteDelete() {
	note := suite.createTestNote("2025-01-08", lessons.NoteTypeWork, "Court 3 closed")

	r := suite.request(http.MethodDelete, "/v1/dates/2025-01-08/notes/"+note.ID, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "/v1/dates/2025-01-08/notes/"+note.ID, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)
	suite.Assert().Empty(day.Data.Notes)
}

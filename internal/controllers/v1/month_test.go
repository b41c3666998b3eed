package v1_test

import (
	"net/http"

	v1 "github.com/wiw0411-bot/tennisforum/internal/controllers/v1"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/test"
)

func (suite *TestSuiteStandard) TestOptionsMonth() {
	r := suite.request(http.MethodOptions, "/v1/months/2025-01", "")

	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonth() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 2},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodPut, "/v1/dates/2025-01-11/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 1},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodPost, "/v1/dates/2025-01-08/notes", v1.NoteEditable{
		Type: lessons.NoteTypeWork,
		Memo: "First lesson with the new student",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodGet, "/v1/months/2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	view := response.Data
	suite.Require().Len(view.Days, 31)

	// January 2025 starts on a Wednesday
	suite.Assert().Equal(3, view.LeadingBlanks)

	// 100000 on the 8th, 60000 on the 11th
	suite.Assert().Equal(int64(160000), view.Total)
	suite.Assert().Equal("160,000원", view.TotalDisplay)
	suite.Assert().Equal(int64(100000), view.Days[7].Total)
	suite.Assert().Equal(int64(60000), view.Days[10].Total)

	suite.Assert().True(view.Days[7].HasNotes)
	suite.Assert().False(view.Days[10].HasNotes)

	// New Year's Day is a holiday, the 11th is a Saturday
	suite.Assert().True(view.Days[0].Holiday)
	suite.Assert().True(view.Days[10].Weekend)
	suite.Assert().False(view.Days[7].Weekend)
}

func (suite *TestSuiteStandard) TestMonthEmpty() {
	r := suite.request(http.MethodGet, "/v1/months/2025-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Days, 30)
	suite.Assert().Equal(int64(0), response.Data.Total)
}

func (suite *TestSuiteStandard) TestMonthInvalid() {
	r := suite.request(http.MethodGet, "/v1/months/2025-13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/wiw0411-bot/tennisforum/internal/controllers/v1"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/test"
)

func (suite *TestSuiteStandard) TestOptionsDay() {
	r := suite.request(http.MethodOptions, "/v1/dates/2025-01-08", "")

	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsRevenueDetail() {
	r := suite.request(http.MethodOptions, "/v1/dates/2025-01-08/revenues/"+uuid.NewString(), "")
	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("PUT, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/v1/dates/2025-01-08/revenues/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRevenueSave() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	// 2025-01-08 is a Wednesday, the weekday rates apply
	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 2},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RevenueResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(profile.ID, response.Data.LocationID)
	suite.Assert().Equal("Gangnam", response.Data.LocationName)
	suite.Assert().Equal(int64(100000), response.Data.Total)

	r = suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Require().Len(day.Data.Entries, 1)
	suite.Assert().Equal(int64(100000), day.Data.Total)
	suite.Assert().Equal("100,000원", day.Data.TotalDisplay)
	suite.Assert().Empty(day.Data.Notes)
}

func (suite *TestSuiteStandard) TestRevenueSaveWeekend() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	// 2025-01-11 is a Saturday, the weekend rates apply
	r := suite.request(http.MethodPut, "/v1/dates/2025-01-11/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 2},
		Duration: lessons.Duration30,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RevenueResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// 2 lessons of half an hour at 60000 per hour
	suite.Assert().Equal(int64(60000), response.Data.Total)
}

func (suite *TestSuiteStandard) TestRevenueSaveReplaces() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 2},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 3},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Require().Len(day.Data.Entries, 1)
	suite.Assert().Equal(int64(150000), day.Data.Total)
}

func (suite *TestSuiteStandard) TestRevenueSaveNonexistentLocation() {
	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+uuid.NewString(), v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 1},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRevenueSaveInvalidDuration() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 1},
		Duration: lessons.Duration(45),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRevenueSaveNegativeCount() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: -1},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRevenueSaveInvalidDate() {
	r := suite.request(http.MethodPut, "/v1/dates/2025-13-40/revenues/"+uuid.NewString(), v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 1},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRevenueDelete() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	r := suite.request(http.MethodPut, "/v1/dates/2025-01-08/revenues/"+profile.ID, v1.RevenueEditable{
		Counts:   lessons.Counts{lessons.TypePrivate: 2},
		Duration: lessons.Duration60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/v1/dates/2025-01-08/revenues/"+profile.ID, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Assert().Empty(day.Data.Entries)
	suite.Assert().Equal(int64(0), day.Data.Total)
}

func (suite *TestSuiteStandard) TestDayEmpty() {
	r := suite.request(http.MethodGet, "/v1/dates/2025-01-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var day v1.DayResponse
	test.DecodeResponse(suite.T(), &r, &day)

	suite.Assert().Empty(day.Data.Entries)
	suite.Assert().Empty(day.Data.Notes)
	suite.Assert().Equal(int64(0), day.Data.Total)
	suite.Assert().Equal("0원", day.Data.TotalDisplay)
}

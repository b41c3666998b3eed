package schedule_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

func (suite *TestSuiteStandard) TestMonthViewGrid() {
	ctx := context.Background()

	// January 2025 starts on a Wednesday and has 31 days.
	view, err := suite.controller.MonthView(ctx, types.NewMonth(2025, 1))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 3, view.LeadingBlanks)
	assert.Len(suite.T(), view.Days, 31)

	// June 2025 starts on a Sunday.
	view, err = suite.controller.MonthView(ctx, types.NewMonth(2025, 6))
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 0, view.LeadingBlanks)
	assert.Len(suite.T(), view.Days, 30)
}

func (suite *TestSuiteStandard) TestMonthViewClassification() {
	view, err := suite.controller.MonthView(context.Background(), types.NewMonth(2025, 1))
	require.Nil(suite.T(), err)

	newYear := view.Days[0] // 2025-01-01
	assert.True(suite.T(), newYear.Holiday)
	assert.False(suite.T(), newYear.Weekend)

	saturday := view.Days[3] // 2025-01-04
	assert.True(suite.T(), saturday.Weekend)
	assert.Equal(suite.T(), time.Saturday, saturday.Weekday)

	monday := view.Days[5] // 2025-01-06
	assert.False(suite.T(), monday.Weekend)
	assert.False(suite.T(), monday.Holiday)
}

func (suite *TestSuiteStandard) TestMonthViewToday() {
	suite.controller.Now = fixedClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	view, err := suite.controller.MonthView(context.Background(), types.NewMonth(2025, 1))
	require.Nil(suite.T(), err)

	for _, day := range view.Days {
		assert.Equal(suite.T(), day.Day == 15, day.Today, "day %d", day.Day)
	}

	// A different displayed month has no today marker.
	view, err = suite.controller.MonthView(context.Background(), types.NewMonth(2025, 2))
	require.Nil(suite.T(), err)
	for _, day := range view.Days {
		assert.False(suite.T(), day.Today)
	}
}

func (suite *TestSuiteStandard) TestMonthViewTotalsAndNotes() {
	ctx := context.Background()
	profile := suite.createGangnam()

	_, err := suite.controller.SaveRevenue(ctx, suite.mustDate("2025-01-08"), profile.ID, lessons.Counts{lessons.TypePrivate: 2}, lessons.Duration60)
	require.Nil(suite.T(), err)
	_, err = suite.controller.SaveRevenue(ctx, suite.mustDate("2025-01-11"), profile.ID, lessons.Counts{lessons.TypePrivate: 1}, lessons.Duration60)
	require.Nil(suite.T(), err)

	// An entry in February must not count towards January.
	_, err = suite.controller.SaveRevenue(ctx, suite.mustDate("2025-02-01"), profile.ID, lessons.Counts{lessons.TypePrivate: 1}, lessons.Duration60)
	require.Nil(suite.T(), err)

	_, err = suite.notes.Append(ctx, suite.mustDate("2025-01-20"), lessons.NoteTypeWork, "Stringing day")
	require.Nil(suite.T(), err)

	view, err := suite.controller.MonthView(ctx, types.NewMonth(2025, 1))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(100000+60000), view.Total)
	assert.Equal(suite.T(), "160,000원", view.TotalDisplay)

	for _, day := range view.Days {
		switch day.Day {
		case 8:
			assert.Equal(suite.T(), int64(100000), day.Total)
		case 11:
			// Saturday, weekend rate.
			assert.Equal(suite.T(), int64(60000), day.Total)
		case 20:
			assert.True(suite.T(), day.HasNotes)
		default:
			assert.Equal(suite.T(), int64(0), day.Total, "day %d", day.Day)
			assert.False(suite.T(), day.HasNotes, "day %d", day.Day)
		}
	}
}

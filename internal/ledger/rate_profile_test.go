package ledger_test

import (
	"context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
)

func (suite *TestSuiteStandard) TestProfileCreate() {
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	assert.NotEmpty(suite.T(), profile.ID)
	assert.Equal(suite.T(), "Gangnam", profile.Name)

	// Every lesson type is present in both maps after normalization.
	for _, lessonType := range lessons.Types() {
		_, ok := profile.Rates.Weekday[lessonType]
		assert.True(suite.T(), ok, "weekday rate missing for %s", lessonType)
		_, ok = profile.Rates.Weekend[lessonType]
		assert.True(suite.T(), ok, "weekend rate missing for %s", lessonType)
	}

	assert.Equal(suite.T(), int64(50000), profile.Rates.Weekday[lessons.TypePrivate].Amount)
	assert.Equal(suite.T(), int64(0), profile.Rates.Weekday[lessons.TypeGroup].Amount)
}

func (suite *TestSuiteStandard) TestProfileCreateEmptyName() {
	_, err := suite.profiles.Create(context.Background(), "  ", testRates(50000, 60000))
	assert.ErrorIs(suite.T(), err, ledger.ErrProfileNameEmpty)

	profiles, listErr := suite.profiles.List(context.Background())
	require.Nil(suite.T(), listErr)
	assert.Empty(suite.T(), profiles)
}

func (suite *TestSuiteStandard) TestProfileRoundTrip() {
	created := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	fetched, err := suite.profiles.Get(context.Background(), created.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), created, fetched)
}

func (suite *TestSuiteStandard) TestProfileUpdate() {
	created := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	updated, err := suite.profiles.Update(context.Background(), created.ID, "Seocho", testRates(55000, 65000))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), created.ID, updated.ID)
	assert.Equal(suite.T(), "Seocho", updated.Name)
	assert.Equal(suite.T(), int64(55000), updated.Rates.Weekday[lessons.TypePrivate].Amount)

	profiles, err := suite.profiles.List(context.Background())
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), profiles, 1)
}

func (suite *TestSuiteStandard) TestProfileUpdateNotFound() {
	_, err := suite.profiles.Update(context.Background(), "missing", "Seocho", testRates(1, 1))
	assert.ErrorIs(suite.T(), err, ledger.ErrProfileNotFound)
}

func (suite *TestSuiteStandard) TestProfileDelete() {
	created := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	require.Nil(suite.T(), suite.profiles.Delete(context.Background(), created.ID))

	_, err := suite.profiles.Get(context.Background(), created.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrProfileNotFound)

	err = suite.profiles.Delete(context.Background(), created.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrProfileNotFound)
}

func (suite *TestSuiteStandard) TestProfileDeleteKeepsRevenue() {
	// Deleting a profile must not touch revenue entries referencing it.
	profile := suite.createTestProfile("Gangnam", testRates(50000, 60000))

	date := mustDate(suite, "2025-01-08")
	entry := ledger.RevenueEntry{
		LocationID:   profile.ID,
		LocationName: profile.Name,
		Counts:       lessons.Counts{lessons.TypePrivate: 2},
		Duration:     lessons.Duration60,
		Total:        100000,
	}
	require.Nil(suite.T(), suite.revenues.Upsert(context.Background(), date, entry))

	require.Nil(suite.T(), suite.profiles.Delete(context.Background(), profile.ID))

	entries, err := suite.revenues.ForDate(context.Background(), date)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "Gangnam", entries[0].LocationName)
}

func (suite *TestSuiteStandard) TestProfilesInertWithoutIdentity() {
	anonymous := ledger.NewRateProfiles(suite.store, "")

	profiles, err := anonymous.List(context.Background())
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), profiles)

	_, err = anonymous.Create(context.Background(), "Gangnam", testRates(1, 1))
	assert.ErrorIs(suite.T(), err, ledger.ErrNoIdentity)
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/award-engine/award"
	"github.com/warp/award-engine/pay"
	"github.com/warp/award-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// AWARD PERSISTENCE
// =============================================================================

func TestSaveAward_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := award.SocialCareAward("social-care")
	require.NoError(t, store.SaveAward(ctx, original))

	loaded, err := store.AwardByID(ctx, "social-care")
	require.NoError(t, err)

	assert.Equal(t, original.Name, loaded.Name)
	assert.True(t, original.CasualLoading.Equal(loaded.CasualLoading))
	assert.Equal(t, original.DefaultClassificationID, loaded.DefaultClassificationID)
	assert.Len(t, loaded.Classifications, len(original.Classifications))
	assert.Len(t, loaded.Allowances, len(original.Allowances))

	cls, ok := loaded.ClassificationByID("level-3.1")
	require.True(t, ok)
	assert.True(t, cls.HourlyRate.Equal(decimal.NewFromFloat(30.95)))
}

func TestSaveAward_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	def := award.RetailAward("retail")
	require.NoError(t, store.SaveAward(ctx, def))

	def.Name = "General Retail Award (revised)"
	require.NoError(t, store.SaveAward(ctx, def))

	loaded, err := store.AwardByID(ctx, "retail")
	require.NoError(t, err)
	assert.Equal(t, "General Retail Award (revised)", loaded.Name)

	catalog, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len(), "upsert must not duplicate")
}

func TestAwardByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AwardByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, pay.ErrAwardNotFound)
}

func TestLoadCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAward(ctx, award.SocialCareAward("social-care")))
	require.NoError(t, store.SaveAward(ctx, award.RetailAward("retail")))

	catalog, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	_, err = catalog.MustAward("social-care")
	assert.NoError(t, err)
}

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

func TestHolidays_CalendarQueries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	kings := pay.NewDate(2025, time.June, 9)
	_, err := store.AddHoliday(ctx, pay.Holiday{Date: kings, Name: "King's Birthday", Type: pay.HolidayPublic})
	require.NoError(t, err)

	winter := pay.NewDate(2025, time.July, 7)
	_, err = store.AddHoliday(ctx, pay.Holiday{Date: winter, Name: "Winter Break", Type: pay.HolidaySchool})
	require.NoError(t, err)

	assert.True(t, store.IsPublicHoliday(kings))
	assert.False(t, store.IsSchoolHoliday(kings))
	assert.True(t, store.IsSchoolHoliday(winter))
	assert.False(t, store.IsPublicHoliday(winter))
	assert.False(t, store.IsPublicHoliday(pay.NewDate(2025, time.June, 10)))
}

func TestHolidays_InRangeOrderedByDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	later := pay.NewDate(2025, time.December, 25)
	earlier := pay.NewDate(2025, time.June, 9)
	_, err := store.AddHoliday(ctx, pay.Holiday{Date: later, Name: "Christmas Day", Type: pay.HolidayPublic})
	require.NoError(t, err)
	_, err = store.AddHoliday(ctx, pay.Holiday{Date: earlier, Name: "King's Birthday", Type: pay.HolidayPublic})
	require.NoError(t, err)

	got := store.HolidaysInRange(pay.NewDate(2025, time.January, 1), pay.NewDate(2025, time.December, 31))
	require.Len(t, got, 2)
	assert.Equal(t, "King's Birthday", got[0].Name)
	assert.Equal(t, "Christmas Day", got[1].Name)

	got = store.HolidaysInRange(pay.NewDate(2025, time.July, 1), pay.NewDate(2025, time.July, 31))
	assert.Empty(t, got)
}

func TestDeleteHoliday(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	date := pay.NewDate(2025, time.June, 9)
	id, err := store.AddHoliday(ctx, pay.Holiday{Date: date, Name: "King's Birthday", Type: pay.HolidayPublic})
	require.NoError(t, err)
	require.True(t, store.IsPublicHoliday(date))

	require.NoError(t, store.DeleteHoliday(ctx, id))
	assert.False(t, store.IsPublicHoliday(date))
}

// =============================================================================
// SEEDING
// =============================================================================

func TestSeedPresets_OnlyWhenEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedPresets(ctx))

	catalog, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	// A second seed run must not duplicate or overwrite.
	require.NoError(t, store.SeedPresets(ctx))
	catalog, err = store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
}

func TestSeedPresets_SkipsNonEmptyStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	custom := award.RetailAward("custom")
	require.NoError(t, store.SaveAward(ctx, custom))
	require.NoError(t, store.SeedPresets(ctx))

	catalog, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len(), "existing configuration wins over presets")
}

package service

import (
	"testing"

	"skin-diary/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, intakeTime, food string, water, rating int) model.LogEntry {
	return model.LogEntry{
		ID: "raw-" + date + intakeTime, Date: date, IntakeTime: intakeTime,
		Food: food, Water: water, SkinRating: rating, SkinReaction: "noted",
	}
}

func TestConsolidateEmpty(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
	assert.Empty(t, Consolidate([]model.LogEntry{}))
}

func TestConsolidateSingleEntryIsIdentityLike(t *testing.T) {
	in := model.LogEntry{
		ID: "1700000000", Date: "2024-03-10", Food: "Rice", Supplements: "Zinc",
		SkinReaction: "calm", Water: 4, SkinRating: 3, Photo: "img",
		IntakeTime: "12:30", ReactionTime: "18:00",
	}
	out := Consolidate([]model.LogEntry{in})
	require.Len(t, out, 1)
	got := out[0]
	assert.Equal(t, "2024-03-10", got.ID, "consolidated id is the date")
	assert.Equal(t, "Rice", got.Food)
	assert.Equal(t, "Zinc", got.Supplements)
	assert.Equal(t, "calm", got.SkinReaction)
	assert.Equal(t, 4, got.Water)
	assert.Equal(t, 3, got.SkinRating)
	assert.Equal(t, "img", got.Photo)
	assert.Equal(t, "12:30", got.IntakeTime)
	assert.Equal(t, "18:00", got.ReactionTime)
}

func TestConsolidateGroupingCompleteness(t *testing.T) {
	in := []model.LogEntry{
		entry("2024-01-01", "08:00", "Eggs", 1, 3),
		entry("2024-01-03", "09:00", "Oats", 2, 4),
		entry("2024-01-01", "12:00", "Soup", 1, 2),
		entry("2024-01-02", "", "Toast", 3, 5),
	}
	out := Consolidate(in)
	dates := make(map[string]int)
	for _, e := range out {
		dates[e.Date]++
	}
	assert.Equal(t, map[string]int{"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 1}, dates)
}

func TestConsolidateWaterSum(t *testing.T) {
	out := Consolidate([]model.LogEntry{
		entry("2024-01-01", "08:00", "a", 2, 3),
		entry("2024-01-01", "12:00", "b", 3, 3),
		entry("2024-01-01", "18:00", "c", 4, 3),
	})
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].Water)
}

func TestConsolidateRatingRoundsHalfUp(t *testing.T) {
	out := Consolidate([]model.LogEntry{
		entry("2024-01-01", "08:00", "a", 0, 3),
		entry("2024-01-01", "12:00", "b", 0, 4),
	})
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].SkinRating, "3.5 rounds up")

	out = Consolidate([]model.LogEntry{
		entry("2024-01-02", "08:00", "a", 0, 2),
		entry("2024-01-02", "12:00", "b", 0, 3),
		entry("2024-01-02", "18:00", "c", 0, 3),
	})
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].SkinRating, "2.67 rounds to 3")
}

func TestConsolidateKeepsLastPhotoOfDay(t *testing.T) {
	first := entry("2024-01-01", "08:00", "a", 0, 3)
	first.Photo = "morning"
	second := entry("2024-01-01", "12:00", "b", 0, 3)
	third := entry("2024-01-01", "18:00", "c", 0, 3)
	third.Photo = "evening"

	out := Consolidate([]model.LogEntry{first, second, third})
	require.Len(t, out, 1)
	assert.Equal(t, "evening", out[0].Photo)

	// No photo anywhere in the group means no photo in the result.
	out = Consolidate([]model.LogEntry{second})
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Photo)
}

func TestConsolidateTextOrderFollowsIntakeTime(t *testing.T) {
	oatmeal := entry("2024-01-01", "09:00", "Oatmeal", 0, 3)
	salad := entry("2024-01-01", "14:00", "Salad", 0, 3)

	forward := Consolidate([]model.LogEntry{oatmeal, salad})
	reversed := Consolidate([]model.LogEntry{salad, oatmeal})
	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)
	assert.Equal(t, "Oatmeal; Salad", forward[0].Food)
	assert.Equal(t, forward[0], reversed[0], "input order must not matter")
	assert.Equal(t, "09:00, 14:00", forward[0].IntakeTime)
}

func TestConsolidateMissingTimeSortsFirst(t *testing.T) {
	timed := entry("2024-01-01", "08:00", "Toast", 3, 5)
	untimed := entry("2024-01-01", "", "Eggs", 2, 3)

	out := Consolidate([]model.LogEntry{timed, untimed})
	require.Len(t, out, 1)
	assert.Equal(t, "Eggs; Toast", out[0].Food, "missing time sorts as 00:00")
	assert.Equal(t, 5, out[0].Water)
	assert.Equal(t, 4, out[0].SkinRating)
	assert.Equal(t, "08:00", out[0].IntakeTime, "empty times are skipped when joining")
}

func TestConsolidateSkipsBlankTextFields(t *testing.T) {
	a := entry("2024-01-01", "08:00", "  Eggs  ", 0, 3)
	a.Supplements = "   "
	b := entry("2024-01-01", "12:00", "", 0, 3)
	b.Supplements = "Omega-3"

	out := Consolidate([]model.LogEntry{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, "Eggs", out[0].Food)
	assert.Equal(t, "Omega-3", out[0].Supplements)
}

func TestConsolidateIdempotentOnUniqueDates(t *testing.T) {
	in := []model.LogEntry{
		entry("2024-01-01", "08:00", "Eggs", 2, 3),
		entry("2024-01-01", "12:00", "Soup", 1, 4),
		entry("2024-01-02", "09:00", "Oats", 3, 5),
	}
	once := Consolidate(in)
	twice := Consolidate(once)
	assert.ElementsMatch(t, once, twice)
}

package service

import (
	"math"
	"sort"
	"strings"

	"skin-diary/internal/model"
)

// Consolidate merges all entries sharing a calendar date into one entry
// per date. Text fields are joined in chronological order, water is
// summed, the skin rating is averaged, and the day's last photo wins.
// Output order is unspecified; callers sort for display. The function
// never fails and leaves malformed fields untouched — validating raw
// entries is the form layer's job.
func Consolidate(entries []model.LogEntry) []model.LogEntry {
	if len(entries) == 0 {
		return []model.LogEntry{}
	}

	byDate := make(map[string][]model.LogEntry)
	var dates []string
	for _, e := range entries {
		if _, ok := byDate[e.Date]; !ok {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	out := make([]model.LogEntry, 0, len(dates))
	for _, date := range dates {
		out = append(out, mergeDay(date, byDate[date]))
	}
	return out
}

func mergeDay(date string, day []model.LogEntry) model.LogEntry {
	// Entries without an intake time sort first, as "00:00".
	sort.SliceStable(day, func(i, j int) bool {
		return timeOrEarliest(day[i]) < timeOrEarliest(day[j])
	})

	var water, totalRating int
	var photo string
	for _, e := range day {
		water += e.Water
		totalRating += e.SkinRating
		if e.Photo != "" {
			photo = e.Photo
		}
	}

	return model.LogEntry{
		// The date doubles as a stable id: recomputing yields the same
		// id no matter which raw entries fed the day.
		ID:           date,
		Date:         date,
		Food:         joinFields(day, "; ", func(e model.LogEntry) string { return e.Food }),
		Supplements:  joinFields(day, "; ", func(e model.LogEntry) string { return e.Supplements }),
		SkinReaction: joinFields(day, "; ", func(e model.LogEntry) string { return e.SkinReaction }),
		Water:        water,
		SkinRating:   roundHalfUp(float64(totalRating) / float64(len(day))),
		Photo:        photo,
		IntakeTime:   joinFields(day, ", ", func(e model.LogEntry) string { return e.IntakeTime }),
		ReactionTime: joinFields(day, ", ", func(e model.LogEntry) string { return e.ReactionTime }),
	}
}

func timeOrEarliest(e model.LogEntry) string {
	if e.IntakeTime == "" {
		return "00:00"
	}
	return e.IntakeTime
}

func joinFields(day []model.LogEntry, sep string, get func(model.LogEntry) string) string {
	var parts []string
	for _, e := range day {
		if v := strings.TrimSpace(get(e)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

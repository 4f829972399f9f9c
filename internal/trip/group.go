package trip

import (
	"math"
	"sort"
	"time"

	"github.com/dennisjyw/NotionJourney/pkg/model"
)

const dayKeyLayout = "2006-01-02"

// GroupByDay buckets itinerary items by their calendar date and labels each
// bucket with a 1-based day index relative to the trip start date. Keys come
// from the naive string split, so equivalent dates bucket together no matter
// what offset their timestamps carry. The fixed-width YYYY-MM-DD key makes
// lexicographic order chronological.
func GroupByDay(items []model.ItineraryItem, tripStartDate string) []model.GroupedItinerary {
	groups := make(map[string][]model.ItineraryItem)
	for _, item := range items {
		key := SplitDateTime(item.Date).Date
		groups[key] = append(groups[key], item)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	start, startOK := parseDayKey(SplitDateTime(tripStartDate).Date)

	out := make([]model.GroupedItinerary, 0, len(keys))
	for _, key := range keys {
		out = append(out, model.GroupedItinerary{
			Day:   dayIndex(key, start, startOK),
			Date:  key,
			Items: groups[key],
		})
	}
	return out
}

// dayIndex computes round((item − start) / 1 day) + 1 on UTC midnights and
// clamps the result to 1. Unparsable keys land on day 1.
func dayIndex(key string, start time.Time, startOK bool) int {
	t, ok := parseDayKey(key)
	if !ok || !startOK {
		return 1
	}
	day := int(math.Round(t.Sub(start).Hours()/24)) + 1
	if day < 1 {
		return 1
	}
	return day
}

func parseDayKey(key string) (time.Time, bool) {
	t, err := time.Parse(dayKeyLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

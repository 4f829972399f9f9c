package trip

import (
	"testing"

	"github.com/dennisjyw/NotionJourney/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, date string) model.ItineraryItem {
	return model.ItineraryItem{ID: id, Type: "journey", Date: date}
}

func TestGroupByDayOffset(t *testing.T) {
	groups := GroupByDay([]model.ItineraryItem{
		item("a", "2024-03-01"),
		item("b", "2024-03-03"),
	}, "2024-03-01")

	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Day)
	assert.Equal(t, "2024-03-01", groups[0].Date)
	assert.Equal(t, 3, groups[1].Day)
	assert.Equal(t, "2024-03-03", groups[1].Date)
}

func TestGroupByDayClampsToDayOne(t *testing.T) {
	groups := GroupByDay([]model.ItineraryItem{
		item("early", "2024-03-01"),
	}, "2024-03-02")

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Day)
}

func TestGroupByDayBucketsByDateIgnoringOffsets(t *testing.T) {
	// Same authored calendar day with differing explicit offsets must share
	// one bucket.
	groups := GroupByDay([]model.ItineraryItem{
		item("a", "2024-03-01T23:30:00.000+09:00"),
		item("b", "2024-03-01T01:00:00.000-05:00"),
		item("c", "2024-03-02T09:00:00"),
	}, "2024-03-01")

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-03-01", groups[0].Date)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "a", groups[0].Items[0].ID)
	assert.Equal(t, "b", groups[0].Items[1].ID)
	assert.Equal(t, "2024-03-02", groups[1].Date)
	assert.Equal(t, 2, groups[1].Day)
}

func TestGroupByDayDateAscending(t *testing.T) {
	groups := GroupByDay([]model.ItineraryItem{
		item("c", "2024-03-05"),
		item("a", "2024-03-01"),
		item("b", "2024-03-03"),
	}, "2024-03-01")

	require.Len(t, groups, 3)
	assert.Equal(t, "2024-03-01", groups[0].Date)
	assert.Equal(t, "2024-03-03", groups[1].Date)
	assert.Equal(t, "2024-03-05", groups[2].Date)
}

func TestGroupByDayKeepsItemArrivalOrder(t *testing.T) {
	groups := GroupByDay([]model.ItineraryItem{
		item("first", "2024-03-01T08:00:00"),
		item("second", "2024-03-01T09:00:00"),
		item("third", "2024-03-01"),
	}, "2024-03-01")

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 3)
	assert.Equal(t, "first", groups[0].Items[0].ID)
	assert.Equal(t, "second", groups[0].Items[1].ID)
	assert.Equal(t, "third", groups[0].Items[2].ID)
}

func TestGroupByDayUnparsableStartDate(t *testing.T) {
	groups := GroupByDay([]model.ItineraryItem{
		item("a", "2024-03-01"),
	}, "")

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Day)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, "2024-03-01"))
}

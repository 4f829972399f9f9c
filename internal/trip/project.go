package trip

import (
	"sort"
	"time"

	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/pkg/model"
)

const (
	rowTypeConfig  = "config"
	rowTypeJourney = "journey"
)

// Config row discriminators.
const (
	configCountry  = "country"
	configCity     = "city"
	configExchange = "exchange"
	configGMT      = "gmt"
	configInfo     = "info"
	configPassword = "password"
)

// Defaults applied when a config row or field is absent. Missing data never
// fails a projection.
const (
	defaultTripTitle = "我的旅遊行程"
	defaultItemTitle = "未命名項目"
	defaultExchange  = "JPY"
	defaultTimezone  = "GMT+8"
	defaultCategory  = "other"
)

// InfoRef points at the config row whose child blocks make up the trip's
// info page. The blocks themselves are fetched separately.
type InfoRef struct {
	ID    string
	Title string
}

// configRows picks at most one row per config discriminator; when several
// rows share one, the first in source order wins.
func configRows(pages []notion.Page) map[string]*notion.Page {
	rows := make(map[string]*notion.Page)
	for i := range pages {
		p := &pages[i]
		if p.Prop("type").SelectName() != rowTypeConfig {
			continue
		}
		key := p.Prop("config").SelectName()
		if key == "" {
			continue
		}
		if _, ok := rows[key]; !ok {
			rows[key] = p
		}
	}
	return rows
}

// ProjectMetadata derives the trip metadata from the config rows of one
// query, plus the database icon when resolution produced one. The returned
// InfoRef is non-nil when an info config row exists; the caller decides
// whether and how to load its blocks.
func ProjectMetadata(pages []notion.Page, dbIcon *notion.Icon) (model.TripMetadata, *InfoRef) {
	rows := configRows(pages)

	meta := model.TripMetadata{
		Title:        defaultTripTitle,
		ExchangeRate: defaultExchange,
		Timezone:     defaultTimezone,
		Icon:         displayIconURL(dbIcon),
	}

	if row, ok := rows[configCountry]; ok {
		if title := row.Prop("title").TitleText(); title != "" {
			meta.Title = title
		}
		meta.StartDate = row.Prop("date").DateStart()
		meta.EndDate = row.Prop("date").DateEnd()
	}
	if row, ok := rows[configCity]; ok {
		meta.City = row.Prop("title").TitleText()
	}
	if row, ok := rows[configExchange]; ok {
		if rate := row.Prop("title").TitleText(); rate != "" {
			meta.ExchangeRate = rate
		}
	}
	if row, ok := rows[configGMT]; ok {
		if tz := row.Prop("title").TitleText(); tz != "" {
			meta.Timezone = tz
		}
	}
	meta.DateDisplay = FormatTripDate(meta.StartDate, meta.EndDate)

	var info *InfoRef
	if row, ok := rows[configInfo]; ok {
		info = &InfoRef{ID: row.ID, Title: row.Prop("title").TitleText()}
	}

	return meta, info
}

// Password returns the password config row's title text, or nil when no
// such row exists.
func Password(pages []notion.Page) *string {
	row, ok := configRows(pages)[configPassword]
	if !ok {
		return nil
	}
	pw := row.Prop("title").TitleText()
	return &pw
}

// ProjectItinerary maps every journey row to an itinerary item and sorts
// the result ascending by parsed date. Items without a parsable date keep
// their input order after all dated items.
func ProjectItinerary(pages []notion.Page) []model.ItineraryItem {
	items := make([]model.ItineraryItem, 0, len(pages))
	for i := range pages {
		p := &pages[i]
		if p.Prop("type").SelectName() != rowTypeJourney {
			continue
		}
		items = append(items, projectItem(p))
	}

	sort.SliceStable(items, func(i, j int) bool {
		ti, iok := parseSortTime(items[i].Date)
		tj, jok := parseSortTime(items[j].Date)
		if iok && jok {
			return ti < tj
		}
		return iok && !jok
	})

	return items
}

func projectItem(p *notion.Page) model.ItineraryItem {
	item := model.ItineraryItem{
		ID:          p.ID,
		Type:        rowTypeJourney,
		Title:       p.Prop("title").TitleText(),
		Category:    p.Prop("category").SelectName(),
		Date:        p.Prop("date").DateStart(),
		Maps:        p.Prop("maps").URL,
		Description: p.Prop("description").RichTextJoined(),
		HasContent:  true,
		Icon:        itemIcon(p.Icon),
	}
	if item.Title == "" {
		item.Title = defaultItemTitle
	}
	if item.Category == "" {
		item.Category = defaultCategory
	}
	if cover := p.Cover.URLValue(); cover != "" {
		item.Img = &cover
	}
	return item
}

// sortLayouts covers the date shapes Notion emits: full timestamps with an
// offset, local timestamps with and without seconds, and bare dates.
var sortLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseSortTime(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, layout := range sortLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

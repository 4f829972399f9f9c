package model

import "encoding/json"

type IconKind string

const (
	IconKindEmoji IconKind = "emoji"
	IconKindURL   IconKind = "url"
)

// Icon is the tagged icon variant attached to an itinerary item. Value holds
// the raw emoji glyph for IconKindEmoji and the image URL for IconKindURL.
// A missing icon is a nil *Icon, serialized as JSON null.
type Icon struct {
	Kind  IconKind `json:"kind"`
	Value string   `json:"value"`
}

// InfoPage is the optional free-text info page of a trip. Blocks carries the
// row's child content blocks verbatim as returned by the content source.
type InfoPage struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Blocks []json.RawMessage `json:"blocks"`
}

type TripMetadata struct {
	Title        string    `json:"title"`
	City         string    `json:"city"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	DateDisplay  string    `json:"dateDisplay"`
	ExchangeRate string    `json:"exchangeRate"`
	Timezone     string    `json:"timezone"`
	Icon         string    `json:"icon,omitempty"`
	InfoPage     *InfoPage `json:"infoPage,omitempty"`
}

type ItineraryItem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Maps        string  `json:"maps"`
	Img         *string `json:"img"`
	Description string  `json:"description"`
	HasContent  bool    `json:"hasContent"`
	Icon        *Icon   `json:"icon"`
}

// TripData is the payload of the main trip endpoint.
type TripData struct {
	Metadata  TripMetadata    `json:"metadata"`
	Itinerary []ItineraryItem `json:"itinerary"`
}

// GroupedItinerary is one day bucket. Day is 1-based relative to the trip
// start date and never less than 1.
type GroupedItinerary struct {
	Day   int             `json:"day"`
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

package trip

import (
	"encoding/base64"
	"fmt"

	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/pkg/model"
)

// emojiSVGTemplate embeds a raw emoji glyph into a minimal vector image so
// the frontend can show it through a plain <img> without any network fetch.
const emojiSVGTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">%s</text></svg>`

// EmojiDataURI renders an emoji glyph as a self-contained SVG data URI.
func EmojiDataURI(emoji string) string {
	svg := fmt.Sprintf(emojiSVGTemplate, emoji)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// displayIconURL converts a Notion icon into a directly displayable image
// reference: emoji icons become inline SVG data URIs, hosted and external
// icons pass through as their URL. Returns "" when there is nothing to show.
func displayIconURL(ic *notion.Icon) string {
	if ic == nil {
		return ""
	}
	switch ic.Type {
	case "emoji":
		if ic.Emoji != "" {
			return EmojiDataURI(ic.Emoji)
		}
	case "external":
		if ic.External != nil {
			return ic.External.URL
		}
	case "file":
		if ic.File != nil {
			return ic.File.URL
		}
	}
	return ""
}

// itemIcon converts a Notion icon into the item icon variant. Emoji icons
// keep the raw glyph here, unlike the metadata icon, because the card UI
// renders the character itself.
func itemIcon(ic *notion.Icon) *model.Icon {
	if ic == nil {
		return nil
	}
	switch ic.Type {
	case "emoji":
		if ic.Emoji != "" {
			return &model.Icon{Kind: model.IconKindEmoji, Value: ic.Emoji}
		}
	case "external":
		if ic.External != nil {
			return &model.Icon{Kind: model.IconKindURL, Value: ic.External.URL}
		}
	case "file":
		if ic.File != nil {
			return &model.Icon{Kind: model.IconKindURL, Value: ic.File.URL}
		}
	}
	return nil
}

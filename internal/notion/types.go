package notion

// Wire shapes for the slice of the Notion API this service reads. Only the
// property kinds the trip database actually uses are decoded; everything
// else is ignored by encoding/json.

type ExternalFile struct {
	URL string `json:"url"`
}

type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// FileRef is a Notion file reference, used for page covers.
type FileRef struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
}

// URLValue returns the underlying URL regardless of hosting kind, or "".
func (f *FileRef) URLValue() string {
	if f == nil {
		return ""
	}
	switch f.Type {
	case "external":
		if f.External != nil {
			return f.External.URL
		}
	case "file":
		if f.File != nil {
			return f.File.URL
		}
	}
	return ""
}

// Icon is a page or database icon: an emoji glyph or a file reference.
type Icon struct {
	Type     string        `json:"type"`
	Emoji    string        `json:"emoji,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type SelectValue struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Property is one loosely-typed page property. Exactly one of the payload
// fields is populated, matching Type.
type Property struct {
	Type     string       `json:"type"`
	Title    []RichText   `json:"title,omitempty"`
	RichText []RichText   `json:"rich_text,omitempty"`
	Select   *SelectValue `json:"select,omitempty"`
	Date     *DateValue   `json:"date,omitempty"`
	URL      string       `json:"url,omitempty"`
}

// TitleText returns the plain text of the first title fragment, or "".
func (p Property) TitleText() string {
	if len(p.Title) == 0 {
		return ""
	}
	return p.Title[0].PlainText
}

// RichTextJoined concatenates every rich-text fragment with no separator.
func (p Property) RichTextJoined() string {
	var out string
	for _, rt := range p.RichText {
		out += rt.PlainText
	}
	return out
}

// SelectName returns the selected option name, or "".
func (p Property) SelectName() string {
	if p.Select == nil {
		return ""
	}
	return p.Select.Name
}

// DateStart returns the range start, or "".
func (p Property) DateStart() string {
	if p.Date == nil {
		return ""
	}
	return p.Date.Start
}

// DateEnd returns the range end, or "".
func (p Property) DateEnd() string {
	if p.Date == nil {
		return ""
	}
	return p.Date.End
}

// Page is one row of a queried data source.
type Page struct {
	ID         string              `json:"id"`
	Cover      *FileRef            `json:"cover"`
	Icon       *Icon               `json:"icon"`
	Properties map[string]Property `json:"properties"`
}

// Prop returns the named property, or a zero Property if the page does not
// carry it. All Property accessors are safe on the zero value.
func (p *Page) Prop(name string) Property {
	return p.Properties[name]
}

// DataSource is one data source of a database. Current Notion API versions
// require queries to address the data source id, not the database id.
type DataSource struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Database is the database-retrieve response, reduced to what the resolver
// and the metadata projection need.
type Database struct {
	ID          string       `json:"id"`
	Icon        *Icon        `json:"icon"`
	DataSources []DataSource `json:"data_sources"`
}

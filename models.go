package apod

import "fmt"

// Metadata is the APOD document exactly as the upstream API returned it.
type Metadata map[string]interface{}

// Picture is a typed view over the well-known APOD fields.
type Picture struct {
	Date           string `json:"date"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	HDURL          string `json:"hdurl"`
	ThumbURL       string `json:"thumbnail_url"`
	MediaType      string `json:"media_type"`
	Copyright      string `json:"copyright"`
	Explanation    string `json:"explanation"`
	ServiceVersion string `json:"service_version"`
}

// Field returns the named field as a string. The second result is false
// when the field is absent, null or not a string.
func (m Metadata) Field(name string) (string, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

func (m Metadata) Picture() Picture {
	get := func(k string) string {
		s, _ := m.Field(k)
		return s
	}

	return Picture{
		Date:           get("date"),
		Title:          get("title"),
		URL:            get("url"),
		HDURL:          get("hdurl"),
		ThumbURL:       get("thumbnail_url"),
		MediaType:      get("media_type"),
		Copyright:      get("copyright"),
		Explanation:    get("explanation"),
		ServiceVersion: get("service_version"),
	}
}

func (p Picture) String() string {
	return fmt.Sprintf("%s %q (%s)", p.Date, p.Title, p.MediaType)
}

package wizard

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/CTAG07/Sitewright/pkg/content"
	"github.com/microcosm-cc/bluemonday"
)

// Field names a single editable attribute of WebsiteData.
type Field string

const (
	FieldBusinessName Field = "business_name"
	FieldBusinessType Field = "business_type"
	FieldServices     Field = "services"
	FieldDescription  Field = "description"
	FieldColorScheme  Field = "color_scheme"
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldBusinessName, FieldBusinessType, FieldServices, FieldDescription, FieldColorScheme}

var ErrUnknownField = errors.New("unknown field")

// WebsiteData is the record the builder collects. It is a value type: every
// edit produces a new record, and the copy taken when generation completes is
// never modified again.
type WebsiteData struct {
	BusinessName string               `json:"business_name"`
	BusinessType content.BusinessType `json:"business_type"`
	Services     string               `json:"services"`
	Description  string               `json:"description"`
	ColorScheme  content.ColorScheme  `json:"color_scheme"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// NewWebsiteData returns the initial, empty record.
func NewWebsiteData() WebsiteData {
	return WebsiteData{ColorScheme: content.DefaultColorScheme}
}

// With returns a copy of d with field set to value.
func (d WebsiteData) With(field Field, value string) (WebsiteData, error) {
	switch field {
	case FieldBusinessName:
		d.BusinessName = value
	case FieldBusinessType:
		d.BusinessType = content.ParseBusinessType(value)
	case FieldServices:
		d.Services = value
	case FieldDescription:
		d.Description = value
	case FieldColorScheme:
		d.ColorScheme = content.ParseColorScheme(value)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return d, nil
}

// Complete reports whether the required fields are present. A name made only
// of whitespace does not count.
func (d WebsiteData) Complete() bool {
	return strings.TrimSpace(d.BusinessName) != "" && d.BusinessType != ""
}

// Generated reports whether the record has been stamped by a generation.
func (d WebsiteData) Generated() bool {
	return !d.GeneratedAt.IsZero()
}

var strictPolicy = bluemonday.StrictPolicy()

// Clean strips any markup from user-supplied text and trims surrounding space.
// Entities escaped by the policy are decoded again, since the value is stored
// as plain text and escaped at render time.
func Clean(value string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(value)))
}

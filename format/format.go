// Package format turns article data into display text: localized timestamps
// and markup-safe strings.
package format

import (
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata"

	"golang.org/x/net/html"
)

// Formatter renders timestamps in a fixed locale and time zone
type Formatter struct {
	catalog  *Catalog
	location *time.Location
}

// NewFormatter builds a Formatter for locale and an IANA time zone name
func NewFormatter(locale, timezone string) (*Formatter, error) {
	catalog, err := NewCatalog(locale)
	if err != nil {
		return nil, err
	}
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &Formatter{catalog: catalog, location: loc}, nil
}

// Catalog exposes the UI text of the formatter's locale
func (f *Formatter) Catalog() *Catalog {
	return f.catalog
}

// FormatTimestamp renders t as day, full month name, year, hour and minute.
// The zero time renders as the localized invalid-date text.
func (f *Formatter) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return f.catalog.Text(MsgInvalidDate)
	}
	t = t.In(f.location)
	return f.catalog.Template(MsgTimestampLayout, map[string]any{
		"Day":    strconv.Itoa(t.Day()),
		"Month":  f.catalog.Text("Month" + strconv.Itoa(int(t.Month()))),
		"Year":   strconv.Itoa(t.Year()),
		"Hour":   fmt.Sprintf("%02d", t.Hour()),
		"Minute": fmt.Sprintf("%02d", t.Minute()),
	})
}

// EscapeForDisplay neutralizes markup-significant characters (& < > " ').
// Every raw character is escaped exactly once, so "&amp;" becomes "&amp;amp;".
func EscapeForDisplay(text string) string {
	return html.EscapeString(text)
}

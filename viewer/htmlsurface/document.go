// Package htmlsurface renders the viewer into a static HTML page.
package htmlsurface

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"newsviewer/format"
	"newsviewer/viewer"
)

// Document is an in-memory page implementing viewer.Surface
type Document struct {
	title      string
	backLabel  string
	cards      []viewer.Card
	message    string
	detail     viewer.Detail
	lastUpdate string
	visible    viewer.View
	scrollTop  bool
}

// New creates an empty page. Grid is the initially visible region.
func New(title, backLabel string) *Document {
	return &Document{title: title, backLabel: backLabel, visible: viewer.ViewGrid}
}

// SetCards implements viewer.Surface
func (d *Document) SetCards(cards []viewer.Card) {
	d.cards = append([]viewer.Card(nil), cards...)
	d.message = ""
}

// SetGridMessage implements viewer.Surface
func (d *Document) SetGridMessage(message string) {
	d.cards = nil
	d.message = message
}

// SetDetail implements viewer.Surface
func (d *Document) SetDetail(detail viewer.Detail) {
	d.detail = detail
}

// SetLastUpdate implements viewer.Surface
func (d *Document) SetLastUpdate(text string) {
	d.lastUpdate = text
}

// SetImage implements viewer.Surface
func (d *Document) SetImage(slot viewer.ImageSlot, src string) {
	switch slot.Region {
	case viewer.ViewGrid:
		for i := range d.cards {
			if d.cards[i].ID == slot.ArticleID {
				d.cards[i].Image = src
			}
		}
	case viewer.ViewDetail:
		if d.detail.ID == slot.ArticleID {
			d.detail.Image = src
		}
	}
}

// Show implements viewer.Surface
func (d *Document) Show(view viewer.View) {
	d.visible = view
}

// ScrollToTop implements viewer.Surface
func (d *Document) ScrollToTop() {
	d.scrollTop = true
}

// Visible is the region currently shown
func (d *Document) Visible() viewer.View {
	return d.visible
}

// GridHTML is the markup of the grid region
func (d *Document) GridHTML() string {
	if len(d.cards) == 0 {
		return fmt.Sprintf(`<p class="error-message">%s</p>`, format.EscapeForDisplay(d.message))
	}
	parts := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		parts = append(parts, c.Markup())
	}
	return strings.Join(parts, "\n")
}

// DetailHTML is the markup of the detail region. Content is text, not markup.
func (d *Document) DetailHTML() string {
	e := format.EscapeForDisplay
	var b strings.Builder
	fmt.Fprintf(&b, `<img id="article-image" src="%s" alt="%s"%s>`+"\n", e(d.detail.Image), e(d.detail.Title), viewer.FallbackAttr(d.detail.Fallback))
	fmt.Fprintf(&b, `<h1 id="article-title">%s</h1>`+"\n", e(d.detail.Title))
	fmt.Fprintf(&b, `<p id="article-date">%s</p>`+"\n", e(d.detail.Date))
	fmt.Fprintf(&b, `<div id="article-text" style="white-space: pre-line">%s</div>`, e(d.detail.Content))
	return b.String()
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body{{if .ScrollTop}} data-scroll="top"{{end}}>
<header><span id="last-update">{{.LastUpdate}}</span></header>
<main id="main-view"{{if not .GridVisible}} class="hidden"{{end}}>
<div id="articles-grid">
{{.Grid}}
</div>
</main>
<section id="article-view"{{if .GridVisible}} class="hidden"{{end}}>
<a id="back-button" href="#">{{.Back}}</a>
<article>
{{.Detail}}
</article>
</section>
</body>
</html>
`))

// Render writes the whole page
func (d *Document) Render(w io.Writer) error {
	data := struct {
		Title       string
		LastUpdate  string
		Back        string
		GridVisible bool
		ScrollTop   bool
		Grid        template.HTML
		Detail      template.HTML
	}{
		Title:       d.title,
		LastUpdate:  d.lastUpdate,
		Back:        d.backLabel,
		GridVisible: d.visible == viewer.ViewGrid,
		ScrollTop:   d.scrollTop,
		// Both regions are assembled from escaped values only
		Grid:   template.HTML(d.GridHTML()),
		Detail: template.HTML(d.DetailHTML()),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

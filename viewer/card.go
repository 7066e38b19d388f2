package viewer

import (
	"fmt"
	"html/template"
	"strings"

	"newsviewer/format"
)

// Markup renders the card as an HTML fragment. Every interpolated value is escaped.
func (c Card) Markup() string {
	var b strings.Builder
	e := format.EscapeForDisplay

	fmt.Fprintf(&b, `<div class="article-card" data-article-id="%d">`, c.ID)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <img src="%s" alt="%s" class="article-card-image"%s>`, e(c.Image), e(c.Title), FallbackAttr(c.Fallback))
	b.WriteString("\n")
	b.WriteString(`  <div class="article-card-content">` + "\n")
	fmt.Fprintf(&b, `    <h2 class="article-card-title">%s</h2>`+"\n", e(c.Title))
	fmt.Fprintf(&b, `    <p class="article-card-date">%s</p>`+"\n", e(c.Date))
	fmt.Fprintf(&b, `    <p class="article-card-summary">%s</p>`+"\n", e(c.Summary))
	fmt.Fprintf(&b, `    <a href="%s" class="article-card-link">%s</a>`+"\n", e(c.Link), e(c.LinkText))
	b.WriteString("  </div>\n</div>")
	return b.String()
}

// FallbackAttr is an onerror attribute that swaps a broken image for
// fallback once. It is empty when there is no fallback.
func FallbackAttr(fallback string) string {
	if fallback == "" {
		return ""
	}
	js := "this.onerror=null;this.src='" + template.JSEscapeString(fallback) + "'"
	return fmt.Sprintf(` onerror="%s"`, format.EscapeForDisplay(js))
}

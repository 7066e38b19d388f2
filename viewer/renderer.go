package viewer

import (
	"net/url"
	"strings"
	"time"

	"newsviewer/format"
	"newsviewer/types"
)

// Renderer projects articles onto a Surface. It never fails: bad input
// degrades to placeholders and localized fallback text.
type Renderer struct {
	surface     Surface
	formatter   *format.Formatter
	placeholder string
	base        *url.URL

	// images tracks the source shown in every rendered slot
	images map[ImageSlot]string
}

// NewRenderer creates a renderer. Relative image URLs are resolved against
// base when it is non-nil; otherwise they fall back to the placeholder.
func NewRenderer(surface Surface, formatter *format.Formatter, placeholder string, base *url.URL) *Renderer {
	return &Renderer{
		surface:     surface,
		formatter:   formatter,
		placeholder: placeholder,
		base:        base,
		images:      make(map[ImageSlot]string),
	}
}

// RenderGrid replaces the grid with one card per article, in order.
// An empty list shows the "no articles" message.
func (r *Renderer) RenderGrid(articles []types.Article) {
	r.forget(ViewGrid)

	if len(articles) == 0 {
		r.surface.SetGridMessage(r.formatter.Catalog().Text(format.MsgNoArticles))
		return
	}

	readMore := r.formatter.Catalog().Text(format.MsgReadMore)
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		img := r.imageFor(a.Image)
		r.images[ImageSlot{Region: ViewGrid, ArticleID: a.ID}] = img
		cards = append(cards, Card{
			ID:       a.ID,
			Title:    a.Title,
			Summary:  a.Summary,
			Date:     r.formatter.FormatTimestamp(a.Date.Time),
			Image:    img,
			Fallback: r.placeholder,
			Link:     "#" + CanonicalFragment(a.ID),
			LinkText: readMore,
		})
	}
	r.surface.SetCards(cards)
}

// RenderDetail fills the detail region. Content is passed as plain text.
func (r *Renderer) RenderDetail(a types.Article) {
	r.forget(ViewDetail)

	img := r.imageFor(a.Image)
	r.images[ImageSlot{Region: ViewDetail, ArticleID: a.ID}] = img
	r.surface.SetDetail(Detail{
		ID:       a.ID,
		Title:    a.Title,
		Date:     r.formatter.FormatTimestamp(a.Date.Time),
		Content:  a.Content,
		Image:    img,
		Fallback: r.placeholder,
	})
}

// RenderError shows message in the grid region in place of cards
func (r *Renderer) RenderError(message string) {
	r.forget(ViewGrid)
	r.surface.SetGridMessage(message)
}

// RenderLastUpdate fills the last-updated indicator
func (r *Renderer) RenderLastUpdate(t time.Time) {
	r.surface.SetLastUpdate(r.formatter.FormatTimestamp(t))
}

// Images lists rendered slots that still show a real (non-placeholder) image
func (r *Renderer) Images() []ImageRef {
	refs := make([]ImageRef, 0, len(r.images))
	for slot, src := range r.images {
		if src == r.placeholder {
			continue
		}
		refs = append(refs, ImageRef{Slot: slot, URL: src})
	}
	return refs
}

// ImageFailed substitutes the placeholder for one slot. Other slots are untouched.
// It reports whether anything changed.
func (r *Renderer) ImageFailed(slot ImageSlot) bool {
	src, ok := r.images[slot]
	if !ok || src == r.placeholder {
		return false
	}
	r.images[slot] = r.placeholder
	r.surface.SetImage(slot, r.placeholder)
	return true
}

func (r *Renderer) forget(region View) {
	for slot := range r.images {
		if slot.Region == region {
			delete(r.images, slot)
		}
	}
}

func (r *Renderer) imageFor(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return r.placeholder
	}
	u, err := url.Parse(raw)
	if err != nil {
		return r.placeholder
	}
	if !u.IsAbs() {
		if r.base == nil {
			return r.placeholder
		}
		u = r.base.ResolveReference(u)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return r.placeholder
	}
	return u.String()
}

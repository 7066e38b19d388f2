package viewer

import (
	"context"
	"testing"
	"time"

	"newsviewer/format"
	"newsviewer/types"
)

const testPlaceholder = "https://placeholder.test/none.png"

// fakeSurface records the last value of every region
type fakeSurface struct {
	cards       []Card
	message     string
	detail      Detail
	lastUpdate  string
	visible     View
	shown       int
	scrolls     int
	images      map[ImageSlot]string
	setCalls    int
	detailCalls int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{images: make(map[ImageSlot]string)}
}

func (s *fakeSurface) SetCards(cards []Card) {
	s.cards = append([]Card(nil), cards...)
	s.message = ""
	s.setCalls++
}

func (s *fakeSurface) SetGridMessage(message string) {
	s.cards = nil
	s.message = message
	s.setCalls++
}

func (s *fakeSurface) SetDetail(detail Detail) {
	s.detail = detail
	s.detailCalls++
}

func (s *fakeSurface) SetLastUpdate(text string) { s.lastUpdate = text }

func (s *fakeSurface) SetImage(slot ImageSlot, src string) { s.images[slot] = src }

func (s *fakeSurface) Show(view View) {
	s.visible = view
	s.shown++
}

func (s *fakeSurface) ScrollToTop() { s.scrolls++ }

func testFormatter(t *testing.T) *format.Formatter {
	t.Helper()
	f, err := format.NewFormatter("es", "UTC")
	if err != nil {
		t.Fatalf("NewFormatter error: %v", err)
	}
	return f
}

func article(id int, title string) types.Article {
	return types.Article{
		ID:      id,
		Title:   title,
		Summary: "summary " + title,
		Content: "content " + title,
		Date:    types.NewTimestamp(time.Date(2024, 1, id%28+1, 10, 0, 0, 0, time.UTC)),
		Image:   "http://img.test/" + title + ".png",
	}
}

func articles(n int) []types.Article {
	list := make([]types.Article, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, article(i, string(rune('A'+i-1))))
	}
	return list
}

func staticSource(feed *types.Feed, err error) Source {
	return SourceFunc(func(context.Context) (*types.Feed, error) {
		return feed, err
	})
}

func newTestApp(t *testing.T, fragment string, src Source) (*App, *fakeSurface) {
	t.Helper()
	surface := newFakeSurface()
	app, err := NewApp(Options{
		Source:      src,
		Surface:     surface,
		Formatter:   testFormatter(t),
		Location:    NewLocation(fragment),
		Placeholder: testPlaceholder,
	})
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}
	t.Cleanup(app.Close)
	return app, surface
}

package tui

import "newsviewer/viewer"

// Screen is the terminal display state behind viewer.Surface. It is only
// touched from the tea event loop.
type Screen struct {
	cards      []viewer.Card
	message    string
	detail     viewer.Detail
	lastUpdate string
	visible    viewer.View

	// Counters let the model notice changes it must mirror into widgets
	detailVersion int
	scrolls       int
}

// NewScreen creates a screen showing the empty grid
func NewScreen() *Screen {
	return &Screen{visible: viewer.ViewGrid}
}

// SetCards implements viewer.Surface
func (s *Screen) SetCards(cards []viewer.Card) {
	s.cards = append([]viewer.Card(nil), cards...)
	s.message = ""
}

// SetGridMessage implements viewer.Surface
func (s *Screen) SetGridMessage(message string) {
	s.cards = nil
	s.message = message
}

// SetDetail implements viewer.Surface
func (s *Screen) SetDetail(detail viewer.Detail) {
	s.detail = detail
	s.detailVersion++
}

// SetLastUpdate implements viewer.Surface
func (s *Screen) SetLastUpdate(text string) {
	s.lastUpdate = text
}

// SetImage implements viewer.Surface
func (s *Screen) SetImage(slot viewer.ImageSlot, src string) {
	switch slot.Region {
	case viewer.ViewGrid:
		for i := range s.cards {
			if s.cards[i].ID == slot.ArticleID {
				s.cards[i].Image = src
			}
		}
	case viewer.ViewDetail:
		if s.detail.ID == slot.ArticleID {
			s.detail.Image = src
		}
	}
}

// Show implements viewer.Surface
func (s *Screen) Show(view viewer.View) {
	s.visible = view
}

// ScrollToTop implements viewer.Surface
func (s *Screen) ScrollToTop() {
	s.scrolls++
}

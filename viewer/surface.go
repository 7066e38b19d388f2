package viewer

// Surface is the display the renderer projects onto. It owns two mutually
// exclusive regions (grid and detail), a last-updated indicator and a back
// control. Implementations only mutate display state; they never fail.
type Surface interface {
	// SetCards replaces the grid content with cards, in order
	SetCards(cards []Card)
	// SetGridMessage replaces the grid content with a single message
	SetGridMessage(message string)
	// SetDetail fills the detail region
	SetDetail(detail Detail)
	// SetLastUpdate fills the last-updated indicator
	SetLastUpdate(text string)
	// SetImage swaps the image shown in one slot
	SetImage(slot ImageSlot, src string)
	// Show makes view visible and hides the other region
	Show(view View)
	// ScrollToTop resets the scroll position
	ScrollToTop()
}

// Card is the summary of one article in the grid. Text fields are raw;
// Markup escapes them for HTML surfaces.
type Card struct {
	ID       int
	Title    string
	Summary  string
	Date     string
	Image    string
	Fallback string
	Link     string
	LinkText string
}

// Detail is the full view of one article. Content is plain text.
type Detail struct {
	ID       int
	Title    string
	Date     string
	Content  string
	Image    string
	Fallback string
}

// ImageSlot identifies one rendered image
type ImageSlot struct {
	Region    View
	ArticleID int
}

// ImageRef pairs a slot with the URL it currently shows
type ImageRef struct {
	Slot ImageSlot
	URL  string
}

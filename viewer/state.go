package viewer

import "newsviewer/types"

// View is one of the two mutually exclusive display regions
type View int

const (
	ViewGrid View = iota
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewGrid:
		return "grid"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// State is the application state of one page view.
// CurrentArticleID is non-nil only while the detail view is visible and always
// references an article present in Articles.
type State struct {
	Articles         []types.Article
	CurrentArticleID *int
}

// View reports which region the state selects
func (s State) View() View {
	if s.CurrentArticleID != nil {
		return ViewDetail
	}
	return ViewGrid
}

// Current returns the article shown in the detail view, if any
func (s State) Current() (types.Article, bool) {
	if s.CurrentArticleID == nil {
		return types.Article{}, false
	}
	return types.FindArticle(s.Articles, *s.CurrentArticleID)
}

package viewer

import (
	"fmt"

	"newsviewer/types"
)

// Event is an input to the router state machine
type Event interface {
	isEvent()
}

// StartupEvent is raised once, after the articles finished loading
type StartupEvent struct {
	Fragment string
}

// FragmentChangeEvent is raised for every fragment change (link, history, address bar)
type FragmentChangeEvent struct {
	Fragment string
}

// BackEvent is raised by the back control
type BackEvent struct{}

func (StartupEvent) isEvent()        {}
func (FragmentChangeEvent) isEvent() {}
func (BackEvent) isEvent()           {}

// FragmentAction tells the caller how to bring the URL in line with the view
type FragmentAction int

const (
	// FragmentKeep leaves the URL alone
	FragmentKeep FragmentAction = iota
	// FragmentAssign sets the fragment, adding a history entry
	FragmentAssign
	// FragmentClear strips the fragment by replacing the current entry
	FragmentClear
)

// Transition is the render instruction produced by Route
type Transition struct {
	View     View
	Article  types.Article
	Fragment FragmentAction
	// Value is the fragment to assign when Fragment is FragmentAssign
	Value string
	// Diagnostic is set when a detail reference could not be resolved
	Diagnostic string
}

// Route computes the next state and render instruction for an event.
// It has no side effects.
func Route(st State, ev Event) (State, Transition) {
	switch e := ev.(type) {
	case StartupEvent:
		return routeFragment(st, e.Fragment)
	case FragmentChangeEvent:
		return routeFragment(st, e.Fragment)
	case BackEvent:
		return toGrid(st, "")
	default:
		return toGrid(st, fmt.Sprintf("unknown event %T", ev))
	}
}

func routeFragment(st State, fragment string) (State, Transition) {
	fragment = NormalizeFragment(fragment)

	id, match := ParseFragment(fragment)
	switch match {
	case FragmentNone:
		return toGrid(st, "")
	case FragmentBadArticle:
		return toGrid(st, fmt.Sprintf("article fragment %q has no valid id", fragment))
	}

	article, ok := types.FindArticle(st.Articles, id)
	if !ok {
		return toGrid(st, fmt.Sprintf("article %d not found", id))
	}

	current := article.ID
	next := State{Articles: st.Articles, CurrentArticleID: &current}
	tr := Transition{View: ViewDetail, Article: article, Fragment: FragmentKeep}
	if canonical := CanonicalFragment(id); fragment != canonical {
		tr.Fragment = FragmentAssign
		tr.Value = canonical
	}
	return next, tr
}

func toGrid(st State, diagnostic string) (State, Transition) {
	return State{Articles: st.Articles}, Transition{
		View:       ViewGrid,
		Fragment:   FragmentClear,
		Diagnostic: diagnostic,
	}
}

package viewer

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"newsviewer/config"
	"newsviewer/format"
	"newsviewer/types"
)

// Options wires an App
type Options struct {
	Source    Source
	Surface   Surface
	Formatter *format.Formatter
	// Location defaults to an empty fragment
	Location *Location
	// Placeholder defaults to config.DefaultPlaceholderImage
	Placeholder string
	// BaseURL resolves relative image URLs
	BaseURL *url.URL
	// GridLimit defaults to config.GridLimit
	GridLimit int
	Logger    *zap.Logger
}

// App is one page view: it owns the state, drives the router and applies
// its render instructions. App is not safe for concurrent use; all calls must
// come from a single event loop.
type App struct {
	session  string
	state    State
	loader   *Loader
	renderer *Renderer
	surface  Surface
	location *Location
	logger   *zap.Logger

	loaded      bool
	unsubscribe func()
}

// NewApp creates a page view with empty state. Nothing is fetched until Start or Complete.
func NewApp(opts Options) (*App, error) {
	if opts.Surface == nil {
		return nil, errors.New("viewer: surface is required")
	}
	if opts.Formatter == nil {
		return nil, errors.New("viewer: formatter is required")
	}
	if opts.Location == nil {
		opts.Location = NewLocation("")
	}
	if opts.Placeholder == "" {
		opts.Placeholder = config.DefaultPlaceholderImage
	}
	if opts.GridLimit <= 0 {
		opts.GridLimit = config.GridLimit
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	session := uuid.NewString()
	return &App{
		session:  session,
		state:    State{Articles: []types.Article{}},
		loader:   NewLoader(opts.Source, opts.GridLimit),
		renderer: NewRenderer(opts.Surface, opts.Formatter, opts.Placeholder, opts.BaseURL),
		surface:  opts.Surface,
		location: opts.Location,
		logger:   opts.Logger.With(zap.String("session", session)),
	}, nil
}

// Session identifies this page view in logs
func (a *App) Session() string {
	return a.session
}

// State returns a snapshot of the application state
func (a *App) State() State {
	return a.state
}

// Location is the fragment and history of this page view
func (a *App) Location() *Location {
	return a.location
}

// Loaded reports whether the load attempt has completed
func (a *App) Loaded() bool {
	return a.loaded
}

// Start fetches and completes the load in one blocking call
func (a *App) Start(ctx context.Context) {
	feed, err := a.Fetch(ctx)
	a.Complete(feed, err)
}

// Fetch performs the network call only. It does not touch the state and may
// run off the event loop; hand its result to Complete.
func (a *App) Fetch(ctx context.Context) (*types.Feed, error) {
	return a.loader.Fetch(ctx)
}

// Complete applies the load outcome, routes the current fragment and starts
// listening for fragment changes. Only the first call has an effect.
func (a *App) Complete(feed *types.Feed, err error) {
	if a.loaded {
		a.logger.Warn("load already completed; ignoring second result")
		return
	}
	a.loaded = true

	next, err := a.loader.Apply(a.state, a.renderer, feed, err)
	a.state = next
	if err != nil {
		a.logger.Error("failed to load articles", zap.Error(err))
	} else {
		if feed != nil && feed.Skipped > 0 {
			a.logger.Warn("dropped malformed articles", zap.Int("skipped", feed.Skipped))
		}
		a.logger.Info("articles loaded", zap.Int("count", len(a.state.Articles)))
	}

	a.unsubscribe = a.location.Subscribe(func(fragment string) {
		a.handle(FragmentChangeEvent{Fragment: fragment})
	})
	a.handle(StartupEvent{Fragment: a.location.Fragment()})
	a.location.Dispatch()
}

// Back is the back control: always shows the grid
func (a *App) Back() {
	if !a.loaded {
		return
	}
	a.handle(BackEvent{})
	a.location.Dispatch()
}

// ActivateCard navigates to the detail view of article id by setting its fragment
func (a *App) ActivateCard(id int) {
	a.Navigate(CanonicalFragment(id))
}

// Navigate sets the fragment as if typed into the address bar
func (a *App) Navigate(fragment string) {
	a.location.Assign(fragment)
	a.location.Dispatch()
}

// HistoryBack steps back through the session history
func (a *App) HistoryBack() bool {
	moved := a.location.Back()
	a.location.Dispatch()
	return moved
}

// HistoryForward steps forward through the session history
func (a *App) HistoryForward() bool {
	moved := a.location.Forward()
	a.location.Dispatch()
	return moved
}

// Images lists the rendered images still worth probing
func (a *App) Images() []ImageRef {
	return a.renderer.Images()
}

// ImageFailed substitutes the placeholder for one slot
func (a *App) ImageFailed(slot ImageSlot) {
	if a.renderer.ImageFailed(slot) {
		a.logger.Debug("image unavailable, using placeholder",
			zap.Stringer("region", slot.Region),
			zap.Int("article_id", slot.ArticleID))
	}
}

// Close stops listening for fragment changes
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) handle(ev Event) {
	next, tr := Route(a.state, ev)
	a.state = next

	if tr.Diagnostic != "" {
		a.logger.Warn("cannot show article, falling back to grid", zap.String("reason", tr.Diagnostic))
	}

	if tr.View == ViewDetail {
		a.renderer.RenderDetail(tr.Article)
	}
	a.surface.Show(tr.View)
	a.surface.ScrollToTop()

	switch tr.Fragment {
	case FragmentAssign:
		a.location.Assign(tr.Value)
	case FragmentClear:
		if a.location.Fragment() != "" {
			a.location.Replace("")
		}
	}
}

// Package tui is a terminal front end for the news viewer.
package tui

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"newsviewer/format"
	"newsviewer/viewer"
)

// State represents the page view lifecycle
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Options configures the terminal viewer
type Options struct {
	Source      viewer.Source
	Formatter   *format.Formatter
	Fragment    string
	Placeholder string
	BaseURL     *url.URL
	// Probe checks rendered images; nil skips the check
	Probe  viewer.ImageProbe
	Logger *zap.Logger
}

// Model represents the TUI state. The embedded App is one page view; a
// reload replaces it.
type Model struct {
	opts   Options
	app    *viewer.App
	screen *Screen

	State   State
	cursor  int
	editing bool
	width   int
	height  int

	viewport      viewport.Model
	address       textinput.Model
	detailVersion int
	scrolls       int
}

// NewModel creates a TUI model with a fresh page view
func NewModel(opts Options) (Model, error) {
	if opts.Formatter == nil {
		return Model{}, fmt.Errorf("tui: formatter is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	address := textinput.New()
	address.Prompt = TextAddressPrompt
	address.Placeholder = viewer.CanonicalFragment(1)

	m := Model{
		opts:     opts,
		width:    defaultWidth,
		height:   defaultHeight,
		viewport: viewport.New(defaultWidth, defaultHeight-detailChrome),
		address:  address,
	}
	if err := m.newPageView(opts.Fragment); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newPageView discards the current App and starts over with empty state
func (m *Model) newPageView(fragment string) error {
	if m.app != nil {
		m.app.Close()
	}
	screen := NewScreen()
	app, err := viewer.NewApp(viewer.Options{
		Source:      m.opts.Source,
		Surface:     screen,
		Formatter:   m.opts.Formatter,
		Location:    viewer.NewLocation(fragment),
		Placeholder: m.opts.Placeholder,
		BaseURL:     m.opts.BaseURL,
		Logger:      m.opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create page view: %w", err)
	}
	m.app = app
	m.screen = screen
	m.State = StateLoading
	m.cursor = 0
	m.detailVersion = 0
	m.scrolls = 0
	m.viewport.SetContent("")
	return nil
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadArticles(m.app)
}

// App is the current page view
func (m Model) App() *viewer.App {
	return m.app
}

// Visible is the region currently shown
func (m Model) Visible() viewer.View {
	return m.screen.visible
}

// Cursor is the index of the selected grid card
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) text(id string) string {
	return m.opts.Formatter.Catalog().Text(id)
}

// sync mirrors surface changes into the bubbles widgets
func (m Model) sync() Model {
	if m.screen.detailVersion != m.detailVersion {
		m.detailVersion = m.screen.detailVersion
		m.viewport.SetContent(m.detailBody())
	}
	if m.screen.scrolls != m.scrolls {
		m.scrolls = m.screen.scrolls
		m.viewport.GotoTop()
	}
	if m.cursor >= len(m.screen.cards) {
		m.cursor = max(len(m.screen.cards)-1, 0)
	}
	return m
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"newsviewer/viewer"
)

// loadArticles creates a command that fetches the feed off the event loop
func loadArticles(app *viewer.App) tea.Cmd {
	session := app.Session()
	return func() tea.Msg {
		feed, err := app.Fetch(context.Background())
		return LoadedMsg{Session: session, Feed: feed, Err: err}
	}
}

// checkImages creates a command that probes every rendered image
func checkImages(probe viewer.ImageProbe, session string, refs []viewer.ImageRef) tea.Cmd {
	if probe == nil || len(refs) == 0 {
		return nil
	}
	return func() tea.Msg {
		failed := viewer.FailedImages(context.Background(), probe, refs)
		return ImagesCheckedMsg{Session: session, Failed: failed}
	}
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"newsviewer/viewer"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		if m.editing {
			return m.handleAddressKey(msg)
		}
		return m.handleKeyPress(msg)
	case LoadedMsg:
		return m.handleLoaded(msg)
	case ImagesCheckedMsg:
		return m.handleImagesChecked(msg)
	}
	return m, nil
}

// handleResize fits the detail viewport to the terminal
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-detailChrome, 1)
	m.viewport.SetContent(m.detailBody())
	return m, nil
}

// handleKeyPress processes keyboard input outside the address bar
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.app.Close()
		return m, tea.Quit
	case "r":
		if err := m.newPageView(m.app.Location().Fragment()); err != nil {
			return m, nil
		}
		return m, loadArticles(m.app)
	}

	if m.State != StateReady {
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.editing = true
		m.address.SetValue(m.app.Location().Fragment())
		m.address.CursorEnd()
		cmd := m.address.Focus()
		return m, cmd
	case "[":
		m.app.HistoryBack()
	case "]":
		m.app.HistoryForward()
	case "esc", "b":
		m.app.Back()
	default:
		if m.screen.visible == viewer.ViewDetail {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m = m.moveCursor(msg.String())
	}
	return m.afterNavigation()
}

// moveCursor handles grid selection keys
func (m Model) moveCursor(key string) Model {
	cards := m.screen.cards
	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor >= gridColumns {
			m.cursor -= gridColumns
		}
	case "down", "j":
		if m.cursor+gridColumns < len(cards) {
			m.cursor += gridColumns
		}
	case "enter":
		if m.cursor < len(cards) {
			m.app.ActivateCard(cards[m.cursor].ID)
		}
	}
	return m
}

// handleAddressKey edits the fragment like an address bar
func (m Model) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.app.Close()
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.address.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.address.Blur()
		m.app.Navigate(strings.TrimSpace(m.address.Value()))
		return m.afterNavigation()
	}
	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

// handleLoaded completes the page view load
func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.app.Session() {
		return m, nil
	}
	m.app.Complete(msg.Feed, msg.Err)
	m.State = StateReady
	m = m.sync()
	return m, checkImages(m.opts.Probe, m.app.Session(), m.app.Images())
}

// handleImagesChecked swaps broken images for the placeholder
func (m Model) handleImagesChecked(msg ImagesCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.app.Session() {
		return m, nil
	}
	for _, slot := range msg.Failed {
		m.app.ImageFailed(slot)
	}
	return m.sync(), nil
}

// afterNavigation syncs widgets and probes the images of a newly shown detail
func (m Model) afterNavigation() (tea.Model, tea.Cmd) {
	rendered := m.screen.detailVersion != m.detailVersion
	m = m.sync()
	if !rendered {
		return m, nil
	}
	var refs []viewer.ImageRef
	for _, ref := range m.app.Images() {
		if ref.Slot.Region == viewer.ViewDetail {
			refs = append(refs, ref)
		}
	}
	return m, checkImages(m.opts.Probe, m.app.Session(), refs)
}

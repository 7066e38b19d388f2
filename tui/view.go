package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsviewer/format"
	"newsviewer/viewer"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")

	if m.screen.lastUpdate != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("%s: %s", m.text(format.MsgLastUpdate), m.screen.lastUpdate)))
		b.WriteString("\n")
	}
	b.WriteString(m.addressBar())
	b.WriteString("\n\n")

	switch {
	case m.State == StateLoading:
		b.WriteString(StatusStyle.Render("⏳ " + m.text(format.MsgLoading)))
		b.WriteString("\n\n")
	case m.screen.visible == viewer.ViewDetail:
		b.WriteString(m.detailView())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render(m.text(format.MsgHelpDetail)))
		return b.String()
	default:
		b.WriteString(m.gridView())
		b.WriteString("\n\n")
	}

	b.WriteString(InfoStyle.Render(m.text(format.MsgHelpGrid)))
	return b.String()
}

func (m Model) addressBar() string {
	if m.editing {
		return m.address.View()
	}
	return InfoStyle.Render(TextAddressPrompt + m.app.Location().Fragment())
}

// gridView lays the cards out in rows of gridColumns
func (m Model) gridView() string {
	if len(m.screen.cards) == 0 {
		return ErrorStyle.Render(m.screen.message)
	}

	cardWidth := max(m.width/gridColumns-4, 16)
	var rows []string
	for start := 0; start < len(m.screen.cards); start += gridColumns {
		end := min(start+gridColumns, len(m.screen.cards))
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.cardView(m.screen.cards[i], cardWidth, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cardView(c viewer.Card, width int, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	body := strings.Join([]string{
		CardTitleStyle.Render(c.Title),
		InfoStyle.Render(c.Date),
		truncate(c.Summary, summaryPreview),
		InfoStyle.Render(TextImagePrefix + c.Image),
		StatusStyle.Render(c.LinkText),
	}, "\n")
	return style.Width(width).Render(body)
}

// detailView shows the header and the scrollable body
func (m Model) detailView() string {
	d := m.screen.detail
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(m.text(format.MsgBack)))
	b.WriteString("\n\n")
	b.WriteString(CardTitleStyle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(d.Date))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextImagePrefix + d.Image))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

// detailBody is the wrapped article text; line breaks are kept
func (m Model) detailBody() string {
	return lipgloss.NewStyle().Width(max(m.width, 1)).Render(m.screen.detail.Content)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + TextSummaryEnding
}

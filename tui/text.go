package tui

// UI text that is not localized
const (
	TextTitle         = "📰 Noticias"
	TextAddressPrompt = "#"
	TextImagePrefix   = "🖼  "
	TextSummaryEnding = "…"
)

// Layout
const (
	gridColumns    = 3
	defaultWidth   = 96
	defaultHeight  = 30
	detailChrome   = 9
	summaryPreview = 120
)

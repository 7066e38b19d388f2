package tui

import (
	"newsviewer/types"
	"newsviewer/viewer"
)

// Messages for the tea program. Session ties a result to the page view that
// asked for it so results from before a reload are dropped.

// LoadedMsg is sent when the article fetch finishes
type LoadedMsg struct {
	Session string
	Feed    *types.Feed
	Err     error
}

// ImagesCheckedMsg is sent when image probing finishes
type ImagesCheckedMsg struct {
	Session string
	Failed  []viewer.ImageSlot
}

package kafka

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// RefreshRequest asks the feed server to rebuild its snapshot
type RefreshRequest struct {
	Reason string `json:"reason"`
}

// Refresher is anything that can rebuild the snapshot
type Refresher interface {
	Refresh(ctx context.Context) error
}

// NewRefreshHandler turns refresh requests into snapshot refreshes. Malformed
// messages are skipped; a refresh that is already running counts as handled.
func NewRefreshHandler(refresher Refresher, inProgress error, logger *zap.Logger) *TypedMessageHandler[RefreshRequest] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TypedMessageHandler[RefreshRequest]{
		AlwaysMark: true,
		Process: func(ctx context.Context, req *RefreshRequest) error {
			reason := strings.TrimSpace(req.Reason)
			if reason == "" {
				reason = "unspecified"
			}
			logger.Info("refresh requested over kafka", zap.String("reason", reason))

			err := refresher.Refresh(ctx)
			if inProgress != nil && errors.Is(err, inProgress) {
				return nil
			}
			return err
		},
	}
}

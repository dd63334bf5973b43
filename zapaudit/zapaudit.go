// Package zapaudit adapts a zap logger into a goCell audit sink.
package zapaudit

import (
	"context"

	"go.uber.org/zap"

	"github.com/MrEthical07/goCell"
)

// Sink emits every violation event as a structured warn-level log entry.
type Sink struct {
	logger *zap.Logger
}

// New returns a [Sink] writing to logger. A nil logger yields a no-op sink.
func New(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

// Emit logs the event.
func (s *Sink) Emit(_ context.Context, event goCell.ViolationEvent) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Warn("cell access violation",
		zap.Time("at", event.Timestamp),
		zap.String("kind", event.Kind),
		zap.String("brand", event.Brand),
		zap.String("op", event.Op),
		zap.String("detail", event.Detail),
	)
}

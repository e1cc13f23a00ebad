package indicator

import (
	"github.com/clambin/workbell/internal/status"
	"log/slog"
)

type SLogIndicator struct {
	Logger *slog.Logger
}

var _ status.Indicator = &SLogIndicator{}

func (s SLogIndicator) Show(mode status.Mode) {
	s.Logger.Info("status changed", slog.String("mode", mode.String()))
}

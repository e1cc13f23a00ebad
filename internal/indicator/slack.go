package indicator

import (
	"github.com/clambin/workbell/internal/status"
	"github.com/slack-go/slack"
	"log/slog"
)

type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

// SlackIndicator posts every mode change to a Slack channel. An empty Channel posts to all channels the bot is in.
type SlackIndicator struct {
	Slack   SlackSender
	Channel string
	Logger  *slog.Logger
}

var _ status.Indicator = &SlackIndicator{}

var modeColors = map[status.Mode]string{
	status.Active:    "good",
	status.Inactive:  "#808080",
	status.Suspended: "warning",
}

func (s SlackIndicator) Show(mode status.Mode) {
	err := s.Slack.Send(s.Channel, []slack.Attachment{{
		Color: modeColors[mode],
		Title: "workbell is " + mode.String(),
	}})
	if err != nil {
		s.Logger.Warn("failed to post status to slack", slog.Any("err", err))
	}
}

package sink

import (
	"context"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/slack-go/slack"
	"time"
)

type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

// SlackSink posts the alarm to Slack.
type SlackSink struct {
	Slack   SlackSender
	Channel string
	Now     func() time.Time
}

var _ Notifier = &SlackSink{}

func (s *SlackSink) Notify(_ context.Context, kind alarm.Kind) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Slack.Send(s.Channel, []slack.Attachment{{
		Color: "good",
		Title: kind.Label(),
		Text:  "it's " + now().Format("15:04"),
	}})
}

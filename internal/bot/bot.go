// Package bot implements the workbell Slack commands.
package bot

import (
	"context"
	"fmt"
	"github.com/clambin/go-common/set"
	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/control"
	"github.com/slack-go/slack"
	"log/slog"
	"strconv"
	"strings"
)

type SlackBot interface {
	Register(name string, command slackbot.CommandFunc)
}

type Bot struct {
	Controller control.Controller
	logger     *slog.Logger
}

var (
	soundOn  = set.New("on", "yes", "true")
	soundOff = set.New("off", "no", "false")
)

func New(c control.Controller, slackBot SlackBot, logger *slog.Logger) *Bot {
	b := Bot{
		Controller: c,
		logger:     logger,
	}
	slackBot.Register("status", b.ReportStatus)
	slackBot.Register("pause", b.Pause)
	slackBot.Register("resume", b.Resume)
	slackBot.Register("hours", b.Hours)
	slackBot.Register("sound", b.Sound)
	slackBot.Register("test", b.TestSound)
	return &b
}

func (b *Bot) ReportStatus(_ context.Context, _ ...string) []slack.Attachment {
	s := b.Controller.Status()

	text := []string{"active hours: " + s.Window.String()}
	if s.ResumeAt != nil {
		text = append(text, "suspended until "+s.ResumeAt.Format("15:04"))
	}
	text = append(text, "sound: "+onOff(s.SoundEnabled))

	return []slack.Attachment{{
		Color: "good",
		Title: "workbell is " + s.Mode.String(),
		Text:  strings.Join(text, "\n"),
	}}
}

func (b *Bot) Pause(_ context.Context, args ...string) []slack.Attachment {
	if len(args) != 1 {
		return fail(fmt.Errorf("missing parameters\nUsage: pause <minutes>"))
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return fail(fmt.Errorf("invalid duration: %q", args[0]))
	}
	if err = b.Controller.Pause(minutes); err != nil {
		return fail(err)
	}
	text := "alarms paused"
	if s := b.Controller.Status(); s.ResumeAt != nil {
		text += " until " + s.ResumeAt.Format("15:04")
	}
	return succeed(text)
}

func (b *Bot) Resume(_ context.Context, _ ...string) []slack.Attachment {
	b.Controller.Resume()
	return succeed("alarms resumed")
}

// Hours sets the active window. Without arguments, it lists the preset windows, marking the current one.
func (b *Bot) Hours(_ context.Context, args ...string) []slack.Attachment {
	if len(args) == 0 {
		return b.reportHours()
	}
	w, err := alarm.ParseWindow(strings.Join(args, ""))
	if err == nil {
		err = b.Controller.SetActiveWindow(w)
	}
	if err != nil {
		return fail(fmt.Errorf("%w\nUsage: hours [<start>-<end>]", err))
	}
	return succeed("active hours set to " + w.String())
}

func (b *Bot) reportHours() []slack.Attachment {
	current := b.Controller.Status().Window
	text := make([]string, 0, len(alarm.Presets)+1)
	for _, w := range alarm.Presets {
		mark := "   "
		if w == current {
			mark = "✓ "
		}
		text = append(text, mark+w.String())
	}
	if !alarm.IsPreset(current) {
		text = append(text, "✓ "+current.String()+" (custom)")
	}
	return []slack.Attachment{{
		Color: "good",
		Title: "active hours:",
		Text:  strings.Join(text, "\n"),
	}}
}

func (b *Bot) Sound(_ context.Context, args ...string) []slack.Attachment {
	if len(args) != 1 {
		return fail(fmt.Errorf("missing parameters\nUsage: sound on|off"))
	}
	var enabled bool
	switch arg := strings.ToLower(args[0]); {
	case soundOn.Contains(arg):
		enabled = true
	case soundOff.Contains(arg):
		enabled = false
	default:
		return fail(fmt.Errorf("invalid parameter: %q\nUsage: sound on|off", args[0]))
	}
	b.Controller.SetSound(enabled)
	return succeed("sound " + onOff(enabled))
}

func (b *Bot) TestSound(ctx context.Context, args ...string) []slack.Attachment {
	if len(args) != 1 {
		return fail(fmt.Errorf("missing parameters\nUsage: test halfpast|bell"))
	}
	kind, err := alarm.ParseKind(args[0])
	if err == nil {
		err = b.Controller.TestSound(ctx, kind)
	}
	if err != nil {
		b.logger.Warn("test sound failed", slog.Any("err", err))
		return fail(err)
	}
	return succeed("played " + kind.Label())
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func succeed(text string) []slack.Attachment {
	return []slack.Attachment{{
		Color: "good",
		Text:  text,
	}}
}

func fail(err error) []slack.Attachment {
	return []slack.Attachment{{
		Color: "bad",
		Text:  err.Error(),
	}}
}

// Package run implements the "workbell run" command: it starts the scheduler and everything around it.
package run

import (
	"context"
	"fmt"
	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/go-common/taskmanager"
	"github.com/clambin/go-common/taskmanager/httpserver"
	promserver "github.com/clambin/go-common/taskmanager/prometheus"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/api"
	"github.com/clambin/workbell/internal/bot"
	"github.com/clambin/workbell/internal/collector"
	"github.com/clambin/workbell/internal/control"
	"github.com/clambin/workbell/internal/indicator"
	"github.com/clambin/workbell/internal/preferences"
	"github.com/clambin/workbell/internal/scheduler"
	"github.com/clambin/workbell/internal/sink"
	"github.com/clambin/workbell/internal/status"
	"github.com/clambin/workbell/internal/suspension"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os/signal"
	"syscall"
	"time"
)

var Cmd = cobra.Command{
	Use:   "run",
	Short: "start workbell",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return Run(ctx, viper.GetViper(), cmd.Root().Version, prometheus.DefaultRegisterer, slog.Default())
	},
}

// Run starts all workbell components and waits for them to stop. They stop when ctx is canceled, when the user
// asks workbell to exit, or when one of them fails.
func Run(ctx context.Context, cfg *viper.Viper, version string, registry prometheus.Registerer, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks, err := makeTasks(cfg, version, cancel, registry, logger)
	if err != nil {
		return err
	}

	logger.Info("workbell starting", "version", version)
	defer logger.Info("workbell stopped")

	return taskmanager.New(tasks...).Run(ctx)
}

func makeTasks(cfg *viper.Viper, version string, exit context.CancelFunc, registry prometheus.Registerer, l *slog.Logger) ([]taskmanager.Task, error) {
	schedulerInterval, err := interval(cfg, "scheduler.interval")
	if err != nil {
		return nil, err
	}
	statusInterval, err := interval(cfg, "status.interval")
	if err != nil {
		return nil, err
	}

	var tasks []taskmanager.Task

	prefs := preferences.Load(cfg.GetString("preferences.file"), l.With("component", "preferences"))
	pause := suspension.New(l.With("component", "suspension"))

	// Slack
	var slackBot *slackbot.SlackBot
	if token := cfg.GetString("slack.token"); token != "" {
		slackBot = slackbot.New(
			token,
			slackbot.WithName("workbell "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		tasks = append(tasks, slackBot)
	}

	// Sinks
	player := sink.NewSoundPlayer(
		cfg.GetString("sounds.dir"),
		map[alarm.Kind]string{
			alarm.HalfPast: cfg.GetString("sounds.halfpast"),
			alarm.Bell:     cfg.GetString("sounds.bell"),
		},
		cfg.GetString("sounds.player"),
		l.With("component", "player"),
	)
	sinks := sink.Sinks{player}
	if slackBot != nil {
		sinks = append(sinks, &sink.SlackSink{Slack: slackBot, Channel: cfg.GetString("slack.channel")})
	}
	if url := cfg.GetString("webhook.url"); url != "" {
		webhookMetrics := sink.NewWebhookMetrics("workbell", "webhook", nil)
		registry.MustRegister(webhookMetrics)
		sinks = append(sinks, sink.NewWebhookSink(url, webhookMetrics))
	}

	// Status
	indicators := indicator.Indicators{&indicator.SLogIndicator{Logger: l.With("component", "indicator")}}
	if path := cfg.GetString("status.file"); path != "" {
		indicators = append(indicators, &indicator.FileIndicator{Path: path, Logger: l.With("component", "indicator")})
	}
	if slackBot != nil {
		indicators = append(indicators, &indicator.SlackIndicator{Slack: slackBot, Channel: cfg.GetString("slack.channel"), Logger: l.With("component", "indicator")})
	}
	presenter := status.New(prefs, pause, indicators, statusInterval, l.With("component", "status"))
	pause.Refresher = presenter
	tasks = append(tasks, presenter)

	// Scheduler
	s := scheduler.New(prefs, pause, sinks, schedulerInterval, l.With("component", "scheduler"))
	s.Metrics = scheduler.NewMetrics("workbell", "scheduler")
	registry.MustRegister(s.Metrics)
	tasks = append(tasks, s)

	// Control
	c := control.New(prefs, pause, presenter, player, exit, l.With("component", "control"))
	registry.MustRegister(collector.Collector{StatusReader: c})
	if slackBot != nil {
		bot.New(c, slackBot, l.With(slog.String("component", "bot")))
	}
	apiServer := api.New(c, presenter, l.With("component", "api"))
	tasks = append(tasks, apiServer)
	if addr := cfg.GetString("control.addr"); addr != "" {
		tasks = append(tasks, httpserver.New(addr, apiServer))
	}

	// Prometheus Server
	if addr := cfg.GetString("exporter.addr"); addr != "" {
		tasks = append(tasks, promserver.New(promserver.WithAddr(addr)))
	}

	return tasks, nil
}

// interval returns the duration configured for key. Tickers can't run on a non-positive interval.
func interval(cfg *viper.Viper, key string) (time.Duration, error) {
	d := cfg.GetDuration(key)
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, cfg.GetString(key))
	}
	return d, nil
}

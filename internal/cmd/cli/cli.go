package cli

import (
	"errors"
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/workbell/internal/cmd/run"
	"github.com/clambin/workbell/internal/cmd/show"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "workbell",
		Short: "rings a bell at half past and before the hour, during working hours",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
		SilenceUsage: true,
	}
)

var args = charmer.Arguments{
	"debug":              {Default: false, Help: "Log debug messages"},
	"preferences.file":   {Default: defaultPreferencesFile(), Help: "File holding the user preferences"},
	"scheduler.interval": {Default: 30 * time.Second, Help: "Interval at which to check for alarms"},
	"status.interval":    {Default: time.Minute, Help: "Interval at which to refresh the status"},
	"status.file":        {Default: "", Help: "File to write the status to (for status bars)"},
	"sounds.dir":         {Default: "/usr/share/workbell/sounds", Help: "Directory holding the alarm sounds"},
	"sounds.halfpast":    {Default: "HalfPast.wav", Help: "Sound to play at half past the hour"},
	"sounds.bell":        {Default: "Bell.wav", Help: "Sound to play before the hour"},
	"sounds.player":      {Default: "", Help: "Command to play sounds (default: detected)"},
	"control.addr":       {Default: "127.0.0.1:8080", Help: "Address of the control API"},
	"exporter.addr":      {Default: ":9090", Help: "Address of Prometheus exporter"},
	"slack.token":        {Default: "", Help: "Slack token"},
	"slack.channel":      {Default: "", Help: "Slack channel to post to (default: all channels the bot is in)"},
	"webhook.url":        {Default: "", Help: "URL to POST alarms to"},
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	if err := charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args); err != nil {
		panic("failed to set flags: " + err.Error())
	}
	RootCmd.AddCommand(&run.Cmd, &show.Cmd)
}

func defaultPreferencesFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "workbell", "preferences.json")
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/workbell/")
		viper.AddConfigPath("$HOME/.workbell")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	if err := charmer.SetDefaults(viper.GetViper(), args); err != nil {
		panic("failed to set viper defaults: " + err.Error())
	}

	viper.SetEnvPrefix("WORKBELL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// the configuration file is optional
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
		slog.Error("failed to read config file", "err", err)
		os.Exit(1)
	}
}

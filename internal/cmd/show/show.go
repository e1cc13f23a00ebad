// Package show implements the "workbell preferences" command.
package show

import (
	"encoding/json"
	"fmt"
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/preferences"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
)

var (
	Cmd = cobra.Command{
		Use:   "preferences",
		Short: "show the stored preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEncoder(cmd.OutOrStdout(), viper.GetString("format"))
			if err != nil {
				return err
			}
			return Show(preferences.LoadReadOnly(viper.GetString("preferences.file"), slog.Default()), e)
		},
	}

	args = charmer.Arguments{
		"format": {Default: "yaml", Help: "output format (yaml or json)"},
	}
)

func init() {
	_ = charmer.SetPersistentFlags(&Cmd, viper.GetViper(), args)
}

type Encoder interface {
	Encode(any) error
}

type Store interface {
	Path() string
	Snapshot() preferences.Preferences
}

type report struct {
	File        string                  `json:"file" yaml:"file"`
	Preferences preferences.Preferences `json:"preferences" yaml:"preferences"`
	ActiveHours string                  `json:"active_hours" yaml:"active_hours"`
	Preset      bool                    `json:"preset" yaml:"preset"`
}

func Show(s Store, e Encoder) error {
	p := s.Snapshot()
	return e.Encode(report{
		File:        s.Path(),
		Preferences: p,
		ActiveHours: p.Window().String(),
		Preset:      alarm.IsPreset(p.Window()),
	})
}

func newEncoder(w io.Writer, format string) (Encoder, error) {
	switch format {
	case "yaml":
		return yaml.NewEncoder(w), nil
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e, nil
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

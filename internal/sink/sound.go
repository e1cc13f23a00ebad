package sink

import (
	"context"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// players lists the tools that can play a sound file, by OS, in order of preference.
var players = map[string][][]string{
	"linux":   {{"paplay"}, {"aplay", "-q"}},
	"darwin":  {{"afplay"}},
	"windows": {{"powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command"}},
}

// SoundPlayer plays the sound file configured for each alarm kind, using an external player.
type SoundPlayer struct {
	Dir   string
	Files map[alarm.Kind]string
	// Player overrides the OS default player. It may include arguments, e.g. "mpv --really-quiet".
	Player   string
	GOOS     string
	LookPath func(string) (string, error)
	Run      func(ctx context.Context, name string, args ...string) error
	logger   *slog.Logger
}

var _ Notifier = &SoundPlayer{}

func NewSoundPlayer(dir string, files map[alarm.Kind]string, player string, logger *slog.Logger) *SoundPlayer {
	return &SoundPlayer{
		Dir:      dir,
		Files:    files,
		Player:   player,
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Run:      runCommand,
		logger:   logger,
	}
}

func (p *SoundPlayer) Notify(ctx context.Context, kind alarm.Kind) error {
	path, err := p.Resolve(kind)
	if err != nil {
		return err
	}
	cmd, err := p.command(path)
	if err != nil {
		return err
	}
	p.logger.Debug("playing sound", slog.String("kind", kind.String()), slog.String("player", cmd[0]), slog.String("path", path))
	if err = p.Run(ctx, cmd[0], cmd[1:]...); err != nil {
		return fmt.Errorf("play %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Resolve returns the path of the sound file for the kind.
func (p *SoundPlayer) Resolve(kind alarm.Kind) (string, error) {
	name, ok := p.Files[kind]
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %q", alarm.ErrUnknownKind, kind)
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Dir, name)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}
	return path, nil
}

func (p *SoundPlayer) command(path string) ([]string, error) {
	if p.Player != "" {
		return append(strings.Fields(p.Player), path), nil
	}
	for _, player := range players[p.GOOS] {
		if _, err := p.LookPath(player[0]); err != nil {
			continue
		}
		cmd := append([]string{}, player...)
		if p.GOOS == "windows" {
			return append(cmd, powershellPlay(path)), nil
		}
		return append(cmd, path), nil
	}
	return nil, fmt.Errorf("%w on %s", ErrNoPlayer, p.GOOS)
}

func powershellPlay(path string) string {
	return "(New-Object System.Media.SoundPlayer '" + strings.ReplaceAll(path, "'", "''") + "').PlaySync()"
}

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		err = fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}

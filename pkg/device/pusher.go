// Package device pushes template media onto a connected headset through the
// Android debug bridge.
package device

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultBridge    = "adb"
	DefaultMediaDir  = "sdcard_SDK"
	DefaultRemoteDir = "/sdcard/"
)

type Config struct {
	Bridge    string
	MediaDir  string
	RemoteDir string
	// Serial selects a device when several are attached.
	Serial string
	// WorkDir is where MediaDir is looked up and the bridge runs. Empty means
	// the current working directory.
	WorkDir string
}

func DefaultConfig() Config {
	return Config{
		Bridge:    DefaultBridge,
		MediaDir:  DefaultMediaDir,
		RemoteDir: DefaultRemoteDir,
	}
}

// CommandError reports a bridge command that exited non-zero.
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed, returned %d", e.Command, e.ExitCode)
}

type Pusher struct {
	runner Runner
	cfg    Config
	out    io.Writer
	logger *slog.Logger
}

func NewPusher(runner Runner, cfg Config, out io.Writer, logger *slog.Logger) *Pusher {
	def := DefaultConfig()
	if cfg.Bridge == "" {
		cfg.Bridge = def.Bridge
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = def.MediaDir
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = def.RemoteDir
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pusher{runner: runner, cfg: cfg, out: out, logger: logger}
}

// CommandLine is the bridge invocation PushMedia runs.
func (p *Pusher) CommandLine() []string {
	cmdline := []string{p.cfg.Bridge}
	if p.cfg.Serial != "" {
		cmdline = append(cmdline, "-s", p.cfg.Serial)
	}
	return append(cmdline, "push", p.cfg.MediaDir, p.cfg.RemoteDir)
}

// PushMedia copies the media directory to the device if it exists. It
// reports whether a push was attempted. The call blocks until the bridge
// exits.
func (p *Pusher) PushMedia(ctx context.Context) (bool, error) {
	local := p.cfg.MediaDir
	if p.cfg.WorkDir != "" && !filepath.IsAbs(local) {
		local = filepath.Join(p.cfg.WorkDir, local)
	}

	info, err := os.Stat(local)
	if err != nil || !info.IsDir() {
		p.logger.Debug("no media directory, nothing to push", "dir", local)
		return false, nil
	}

	cmdline := p.CommandLine()
	fmt.Fprintf(p.out, "Executing: %s\n", strings.Join(cmdline, " "))

	result, err := p.runner.Run(ctx, cmdline[0], cmdline[1:], RunOpts{Dir: p.cfg.WorkDir, Stdout: p.out})
	if err != nil {
		return true, fmt.Errorf("failed to run %s: %w", cmdline[0], err)
	}
	if result.ExitCode != 0 {
		p.logger.Debug("bridge command failed", "exit_code", result.ExitCode, "stderr", result.Stderr)
		return true, &CommandError{
			Command:  cmdline[0],
			Args:     cmdline[1:],
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	p.logger.Info("media pushed", "dir", p.cfg.MediaDir, "remote", p.cfg.RemoteDir)
	return true, nil
}

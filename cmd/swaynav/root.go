package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/1broseidon/swaynav/internal/config"
	"github.com/1broseidon/swaynav/internal/ipc"
	"github.com/1broseidon/swaynav/internal/logging"
	"github.com/1broseidon/swaynav/internal/runtimepath"
	"github.com/1broseidon/swaynav/internal/x11"
)

// app carries the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	socket     string
	timeout    time.Duration
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger

	// x11Lookup finds the i3 socket from the X root window.
	x11Lookup func() (string, error)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:    stdout,
		stderr:    stderr,
		logger:    logging.NewNop(),
		x11Lookup: x11.I3SocketPath,
	}

	root := &cobra.Command{
		Use:   "swaynav",
		Short: "Directional focus for sway and i3 that skips tabbed and stacked siblings",
		Long: `swaynav moves focus to the window that is physically adjacent in a direction.

Inside tabbed or stacked containers the compositor's own "focus left" only cycles
between tabs. swaynav first escapes those containers with "focus parent" and then
issues the directional move, so focus lands on the neighbouring container instead.

Bind it in your sway config:

  bindsym $mod+h exec swaynav focus left`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default ~/.config/swaynav/config.yaml)")
	pf.StringVar(&a.socket, "socket", "", "Compositor IPC socket (default: $SWAYSOCK, $I3SOCK, then X11)")
	pf.DurationVar(&a.timeout, "timeout", 0, "Timeout for each IPC exchange (default from config, 2s)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newFocusCmd(a),
		newPlanCmd(a),
		newVersionCmd(a),
		newConfigCmd(a),
		newMCPCmd(a),
	)
	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return failed(fmt.Errorf("failed to load config: %w", err))
	}

	flags := cmd.Flags()
	if flags.Changed("socket") {
		cfg.Socket = a.socket
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration(a.timeout)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.New(a.stderr, cfg.SlogLevel())
	return nil
}

// connect discovers the compositor socket and opens a client on it.
func (a *app) connect(ctx context.Context) (*ipc.Client, error) {
	opts := runtimepath.Options{Explicit: a.cfg.Socket}
	if a.cfg.GetX11Fallback() {
		opts.X11 = a.x11Lookup
	}
	path, source, err := runtimepath.SocketPath(opts)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using compositor socket", "path", path, "source", string(source))

	return ipc.Dial(ctx, path,
		ipc.WithTimeout(a.cfg.GetTimeout()),
		ipc.WithLogger(a.logger),
	)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"puffy/internal/app"
	"puffy/internal/config"
	"puffy/internal/tui"
	"puffy/internal/watch"
)

type options struct {
	puffiness  int
	configPath string
	logPath    string
	debug      bool
	watch      bool
	snapshot   string
	puffy      bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "puffy <file.svg>",
		Short: "Inflate a flat SVG sticker into a cushion and orbit it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args[0])
		},
		SilenceUsage: true,
	}
	f := cmd.Flags()
	f.IntVarP(&o.puffiness, "puffiness", "v", 1, "initial inflation level (0-10 suggested)")
	f.StringVar(&o.configPath, "config", "", "config file (.toml or .yaml); default "+config.DefaultPath)
	f.StringVar(&o.logPath, "log", "", "write logs to this file")
	f.BoolVar(&o.debug, "debug", false, "log at debug level")
	f.BoolVar(&o.watch, "watch", false, "reload the file when it changes")
	f.StringVar(&o.snapshot, "snapshot", "", "render one frame to this PNG and exit")
	f.BoolVar(&o.puffy, "puffy", false, "start in the inflated view")
	return cmd
}

func run(cmd *cobra.Command, o options, path string) error {
	logger, closeLog, err := newLogger(o)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		logger.Warn("config ignored, using defaults", "err", err)
		cfg = config.Default()
	}
	if cmd.Flags().Changed("puffiness") {
		cfg.Puffiness = float32(o.puffiness)
	}

	a := app.New(cfg, logger)
	if err := a.Load(path); err != nil {
		return err
	}
	if o.puffy {
		a.EnterPuffyMode()
	}

	if o.snapshot != "" {
		return a.Snapshot(o.snapshot)
	}

	m := tui.New(a, logger)
	if o.watch {
		w, err := watch.New(path, logger)
		if errors.Log(err) == nil {
			defer w.Close()
			m = m.WithWatcher(w)
		}
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// newLogger logs to --log when set. Without it the TUI owns the terminal, so logs are
// dropped; snapshot mode has no TUI and logs to stderr.
func newLogger(o options) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch {
	case o.logPath != "":
		f, err := tea.LogToFile(o.logPath, "puffy")
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, hopts)), func() { f.Close() }, nil
	case o.snapshot != "":
		return slog.New(slog.NewTextHandler(os.Stderr, hopts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(io.Discard, hopts)), func() {}, nil
	}
}

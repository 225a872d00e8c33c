// tuikit-gallery browses the datatable and inputfield widgets story by
// story. Demo users come from the built-in set, a TOML fixture file or
// a SQLite database.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/tuikit/internal/config"
	"github.com/jask/tuikit/internal/gallery"
	"github.com/jask/tuikit/keys"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	story      string
	source     string
	dataPath   string
	logOutput  string
	list       bool
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var opts options
	flagSet := pflag.NewFlagSet("tuikit-gallery", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "config file (default: $TUIKIT_CONFIG or ~/.config/tuikit/config.toml)")
	flagSet.StringVar(&opts.story, "story", "", "open this story first, e.g. table/sortable")
	flagSet.StringVar(&opts.source, "source", "", "data source: builtin, toml or sqlite")
	flagSet.StringVar(&opts.dataPath, "data", "", "fixture file or database path for --source")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&opts.list, "list", false, "print story ids and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return opts, flagSet, err
	}
	if help, _ := flagSet.GetBool("help"); help {
		return opts, flagSet, pflag.ErrHelp
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, flagSet, nil
}

func run(args []string, stdout io.Writer) error {
	opts, flagSet, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		printHelp(flagSet)
		return nil
	}
	if err != nil {
		return err
	}

	registry := gallery.NewRegistry()
	if opts.list {
		for _, id := range registry.IDs() {
			fmt.Fprintln(stdout, id)
		}
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := 0
	if cfg.UI.Story != "" {
		if start, err = registry.Find(cfg.UI.Story); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := keys.NewRegistry()
	if err := reg.ApplyConfig(cfg.Keys.Overrides); err != nil {
		return fmt.Errorf("key overrides: %w", err)
	}

	users, err := gallery.LoadUsers(context.Background(), cfg.Data, logger)
	if err != nil {
		return err
	}

	env := gallery.NewEnv(cfg.UI, users, reg, logger)
	logger.Info("gallery starting", "story", registry.At(start).ID(), "locale", cfg.UI.Locale)
	program := tea.NewProgram(gallery.New(registry, env, start), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// applyFlags lets command-line flags win over file and env settings.
func applyFlags(cfg *config.Config, opts options) {
	if opts.source != "" {
		cfg.Data.Source = opts.source
	}
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if opts.story != "" {
		cfg.UI.Story = opts.story
	}
	if opts.logOutput != "" {
		cfg.Log.Path = opts.logOutput
	}
}

// openLogger writes JSON records to the configured file. A terminal UI
// owns stdout, so logs never go there.
func openLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if lc.Path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(lc.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tuikit-gallery: interactive stories for the tuikit widgets.

Usage:
  tuikit-gallery [flags]

Examples:
  # Start on the overview page
  tuikit-gallery

  # Jump to a story
  tuikit-gallery --story table/selectable

  # Read users from a SQLite database, creating it if needed
  tuikit-gallery --source sqlite --data ./users.db

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

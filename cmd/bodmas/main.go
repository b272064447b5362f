package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/devbumbuna/bodmas/pkg/config"
	"github.com/devbumbuna/bodmas/pkg/interp"
	"github.com/devbumbuna/bodmas/pkg/render"
	"github.com/devbumbuna/bodmas/pkg/source"
)

var version = "1.0.0"

// errLinesFailed signals that at least one line produced a diagnostic.
// The diagnostics themselves were already rendered, so main only turns
// this into the exit status.
var errLinesFailed = errors.New("one or more lines failed")

var (
	cfgFile   string
	colorFlag string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "bodmas [file]",
	Short: "A BODMAS calculator",
	Long: `bodmas evaluates integer arithmetic expressions, one per line, read
from a file or from standard input. On a terminal it runs as an
interactive prompt.

Supported: decimal integers, + - * /, parentheses.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if colorFlag != "" {
		cfg.Color = colorFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var color bool
	switch cfg.Color {
	case "always":
		color = true
	case "never":
		color = false
	default:
		color = isTerminal(os.Stdout)
	}

	reader := source.NewReader(in)
	if isTerminal(in) {
		fmt.Printf("A BODMAS calculator.\nVersion %s.\n", version)
		reader = reader.WithPrompt(os.Stdout, cfg.Prompt)
	}

	sink := render.New(os.Stdout, os.Stderr, color)
	session := interp.NewSession(sink, logger)

	ok, err := session.Run(reader)
	if err != nil {
		return err
	}
	if !ok {
		return errLinesFailed
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLinesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

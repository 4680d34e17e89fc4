package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/keychord/internal/config"
)

// app carries state shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	format   string
	logLevel string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "keychord",
		Short: "Parse and inspect key chord notation",
		Long: `keychord parses key chord notation into X11 keysyms and modifiers.

Two notations are accepted and may be mixed:
  C-S-r                 dash notation: modifier letters S C M A G, then a key
  (control\ shift\ r)   word notation in parentheses: shift control alt

Examples:
  keychord parse "a C-x (control\ Return)"
  keychord keysym Return space
  keychord match "C-x C-S-r" ctrl+x ctrl+shift+r
  keychord lua bindings.lua`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/keychord/keychord.toml)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: text, json or auto")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.newParseCmd(),
		a.newKeysymCmd(),
		a.newMatchCmd(),
		a.newLuaCmd(),
		a.newVersionCmd(),
	)
	return root
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Level:  cfg.Level(),
		Prefix: "keychord",
	})
	if cfg.File != "" {
		a.logger.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

// outputFormat resolves "auto" to text for terminals and json otherwise.
func (a *app) outputFormat() string {
	if a.cfg.Format != config.FormatAuto {
		return a.cfg.Format
	}
	if f, ok := a.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.FormatText
	}
	return config.FormatJSON
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Overrides the root hook: version must work with a broken config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "keychord %s\n", version)
			fmt.Fprintf(a.stdout, "Commit: %s\n", commit)
			fmt.Fprintf(a.stdout, "Built: %s\n", date)
			return nil
		},
	}
}

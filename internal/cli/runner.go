package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Options tune the session from root flags; zero values defer to config.yaml.
type Options struct {
	ConfigPath  string
	Theme       string
	Output      string
	LogFile     string
	LogLevel    string
	NoAltScreen bool
	NoColor     bool
}

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		ui.Fail(err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr)
			fmt.Fprintln(stderr, root.UsageString())
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opt Options

	root := &cobra.Command{
		Use:   "shoplist",
		Short: "shoplist - a tiny shopping list for the terminal",
		Long: `shoplist keeps a shopping list for the length of one session.

Keys:
  a        add an item (name up to 16 characters, quantity 1..2147483647)
  e        edit the selected item
  d        delete the selected item
  /        filter
  q        quit and print the list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetColorForcing(false, opt.NoColor || os.Getenv("NO_COLOR") != "")
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opt)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opt.ConfigPath, "config", "", "config file (default $SHOPLIST_HOME/config.yaml)")
	pf.StringVar(&opt.Theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&opt.Output, "output", "", "list printed on quit: panel, table, json or none")
	pf.StringVar(&opt.LogFile, "log-file", "", "write logs to this file (relative names go under $SHOPLIST_HOME)")
	pf.StringVar(&opt.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&opt.NoAltScreen, "no-alt-screen", false, "render inline instead of taking over the terminal")
	pf.BoolVar(&opt.NoColor, "no-color", false, "disable colors in printed output (also NO_COLOR)")

	root.AddCommand(&cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opt)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opt)
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "shoplist "+Version)
		},
	})
	return root
}

// loadConfig reads the config file and lets explicitly set flags win.
// Validation runs on the merged result, so a flag can fix a bad file value.
func loadConfig(cmd *cobra.Command, opt Options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opt.ConfigPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(opt.ConfigPath)
	}
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.UI.Theme = opt.Theme
	}
	if flags.Changed("output") {
		cfg.Output = opt.Output
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opt.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opt.LogLevel
	}
	if opt.NoAltScreen {
		off := false
		cfg.UI.AltScreen = &off
	}
	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

func runUI(cmd *cobra.Command, opt Options) error {
	cfg, err := loadConfig(cmd, opt)
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.UI.Theme)

	logPath, err := logging.ResolvePath(cfg.Log.File)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(logPath, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Info("session started", "theme", cfg.UI.Theme, "output", cfg.Output)

	app := tui.NewApp(tui.Params{
		Store:         memstore.New(),
		Logger:        log,
		Theme:         ui.Current(),
		ToastDuration: cfg.UI.ToastDuration,
	})
	items, err := tui.Run(app, tui.RunOptions{AltScreen: cfg.UseAltScreen()})
	if err != nil {
		log.Error("session failed", "error", err)
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("session ended", "items", len(items))

	return printSummary(items, cfg.Output)
}

// printSummary prints the final list and a closing status line. JSON output
// stays machine-readable, so it gets no status line.
func printSummary(items []model.ShoppingItem, format string) error {
	if err := ui.PrintSummary(items, format); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if format != ui.FormatJSON {
		ui.OK(fmt.Sprintf("%d items on the list", len(items)))
	}
	return nil
}

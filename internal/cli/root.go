package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sandeepkv93/noozes/internal/config"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/share"
	"github.com/spf13/cobra"
)

const Version = "0.3.0"

// App holds what the commands need from the outside world. Zero values are
// replaced by the real process streams, clock, clipboard and config loader.
type App struct {
	Out        io.Writer
	Err        io.Writer
	Now        func() time.Time
	Copier     share.Copier
	IsTerminal func() bool
	LoadConfig func(envFile string) (config.RuntimeConfig, error)

	cfg    config.RuntimeConfig
	logger *slog.Logger
	flags  globalFlags
}

type globalFlags struct {
	envFile string
	format  string
	json    bool
	copy    int
	share   int
	verbose bool
}

func (a *App) defaults() {
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.Err == nil {
		a.Err = os.Stderr
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.Copier == nil {
		a.Copier = share.SystemClipboard{}
	}
	if a.IsTerminal == nil {
		a.IsTerminal = stdoutIsTerminal
	}
	if a.LoadConfig == nil {
		a.LoadConfig = config.Load
	}
}

func NewRootCommand(app *App) *cobra.Command {
	app.defaults()

	root := &cobra.Command{
		Use:           "noozes",
		Short:         "Sleep cycle calculator",
		Long:          "Noozes suggests bedtimes and wake-up times aligned to 90 minute sleep cycles.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.boot()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsTerminal() && !app.flags.json && app.flags.copy == 0 && app.flags.share == 0 {
				return app.runTUI(cmd.Context())
			}
			return app.runCalculate(app.cfg.Mode(), app.cfg.DefaultTime)
		},
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	pf := root.PersistentFlags()
	pf.StringVarP(&app.flags.envFile, "env", "e", ".env", "environment file")
	pf.StringVarP(&app.flags.format, "format", "f", "", "clock format: 12h or 24h")
	pf.BoolVar(&app.flags.json, "json", false, "print the result as JSON")
	pf.IntVar(&app.flags.copy, "copy", 0, "copy suggestion N to the clipboard")
	pf.IntVar(&app.flags.share, "share", 0, "copy share text for suggestion N to the clipboard")
	pf.BoolVar(&app.flags.verbose, "verbose", false, "debug logging")

	root.AddCommand(
		newWakeupCommand(app),
		newBedtimeCommand(app),
		newNowCommand(app),
		newTUICommand(app),
		newServeCommand(app),
	)
	return root
}

// boot loads config and applies flag overrides.
func (a *App) boot() error {
	cfg, err := a.LoadConfig(a.flags.envFile)
	if err != nil {
		return err
	}
	if a.flags.format != "" {
		f, err := model.ParseClockFormat(a.flags.format)
		if err != nil {
			return err
		}
		cfg.ClockFormat = string(f)
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	a.logger = newLogger(a.Err, cfg.LogLevel, cfg.LogFormat)
	return nil
}

// Execute runs the CLI against the real process.
func Execute() error {
	return NewRootCommand(&App{}).Execute()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noozes/internal/scheduler"
	"github.com/sandeepkv93/noozes/internal/update"
	"github.com/spf13/cobra"
)

func newTUICommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd.Context())
		},
	}
}

func (a *App) runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, closeLog, err := a.tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	alarms := scheduler.NewEngineWithClock(a.cfg.AlarmBuffer, a.Now)
	alarms.Start()
	defer alarms.Stop()

	opts := update.Options{
		Now:    a.Now,
		Copier: a.Copier,
		Alarms: alarms,
		Logger: logger,
	}
	if a.cfg.DesktopNotifications {
		opts.Notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(a.cfg, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("noozes failed: %w", err)
	}
	return nil
}

// tuiLogger writes to NOOZES_LOG_FILE when set. Stderr would corrupt the
// screen, so logs are dropped otherwise.
func (a *App) tuiLogger() (*slog.Logger, func(), error) {
	if a.cfg.LogFile == "" {
		return newLogger(io.Discard, a.cfg.LogLevel, a.cfg.LogFormat), func() {}, nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, a.cfg.LogLevel, a.cfg.LogFormat), func() { _ = f.Close() }, nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/server"
	"github.com/sandeepkv93/noozes/internal/share"
	"github.com/spf13/cobra"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	timeColor    = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.FgWhite)
	noticeColor  = color.New(color.FgYellow)
)

func newWakeupCommand(app *App) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:     "wakeup [HH:MM]",
		Aliases: []string{"wake"},
		Short:   "Bedtimes for waking up at HH:MM",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCalculate(model.ModeWakeup, timeArg(args, at, app.cfg.DefaultTime))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "wake-up time as HH:MM")
	return cmd
}

func newBedtimeCommand(app *App) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:     "bedtime [HH:MM]",
		Aliases: []string{"bed"},
		Short:   "Wake-up times for going to bed at HH:MM",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCalculate(model.ModeBedtime, timeArg(args, at, app.cfg.DefaultTime))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "bedtime as HH:MM")
	return cmd
}

func newNowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "now",
		Aliases: []string{"sleep"},
		Short:   "Wake-up times if you go to sleep now",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCalculate(model.ModeNow, "")
		},
	}
}

// timeArg picks the positional time, then --at, then the configured default.
func timeArg(args []string, at string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	if at != "" {
		return at
	}
	return fallback
}

func (a *App) runCalculate(mode model.Mode, timeValue string) error {
	res, err := model.NewCalculator(a.Now).Calculate(mode, timeValue)
	if err != nil {
		a.logger.Debug("calculation rejected", "mode", mode, "time", timeValue, "err", err)
		return err
	}
	format := a.cfg.Clock()

	if a.flags.json {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(server.NewCalculateResponse(res, format)); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		a.printResult(res, format)
	}

	if a.flags.copy != 0 {
		if err := a.copySuggestion(res, format, a.flags.copy); err != nil {
			return err
		}
	}
	if a.flags.share != 0 {
		if err := a.shareSuggestion(res, format, a.flags.share); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) printResult(res model.Result, format model.ClockFormat) {
	headingColor.Fprintln(a.Out, model.Heading(res.Mode))
	dimColor.Fprintf(a.Out, "(%s)\n\n", contextLine(res, format))
	for i, s := range res.Suggestions {
		a.printf("  %d. ", i+1)
		timeColor.Fprintf(a.Out, "%-8s", model.FormatClock(s.Time, format))
		a.printf("  %s\n", model.DescribeCycles(s.Cycle))
	}
}

func contextLine(res model.Result, format model.ClockFormat) string {
	when := fmt.Sprintf("%s, %s", model.FormatClock(res.ContextTime, format), res.ContextTime.Format("Mon Jan 2"))
	switch res.Mode {
	case model.ModeWakeup:
		return "to wake up at " + when
	case model.ModeBedtime:
		return "going to bed at " + when
	default:
		return "falling asleep from " + when
	}
}

func pick(res model.Result, n int) (model.Suggestion, error) {
	if n < 1 || n > len(res.Suggestions) {
		return model.Suggestion{}, fmt.Errorf("no suggestion %d: choose 1 to %d", n, len(res.Suggestions))
	}
	return res.Suggestions[n-1], nil
}

func (a *App) copySuggestion(res model.Result, format model.ClockFormat, n int) error {
	s, err := pick(res, n)
	if err != nil {
		return err
	}
	formatted := model.FormatClock(s.Time, format)
	if err := a.Copier.Copy(formatted); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	noticeColor.Fprintf(a.Err, "%s %s\n", share.CopiedTitle, share.CopiedBody(formatted))
	return nil
}

func (a *App) shareSuggestion(res model.Result, format model.ClockFormat, n int) error {
	s, err := pick(res, n)
	if err != nil {
		return err
	}
	text := share.Text(res.Mode, model.FormatClock(s.Time, format), a.cfg.ShareURL)
	if err := a.Copier.Copy(text); err != nil {
		return fmt.Errorf("share: %w", err)
	}
	noticeColor.Fprintf(a.Err, "%s: %s\n", share.Title, text)
	return nil
}

package update

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/noozes/internal/config"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/scheduler"
	"github.com/sandeepkv93/noozes/internal/share"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Wakeup  string
	Bedtime string
	Now     string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	Mode    model.Mode
	Format  model.ClockFormat
	Result  model.Result
	Cursor  int
	Editing bool
	// editBackup restores the input when editing is cancelled.
	editBackup string
	Palette    CommandPaletteState
	Alarms     *scheduler.Engine
	AlarmLog   []scheduler.Alarm
	// Armed maps alarm IDs to their fire time for the cards on screen.
	Armed          map[string]time.Time
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	copier         share.Copier
	shareURL       string
	calc           *model.Calculator
	now            func() time.Time
	logger         *slog.Logger
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components
	timeInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// ClearStatusMsg empties the status bar once a card action's toast expires.
type ClearStatusMsg struct{}

// AppErrorMsg reports a failed card action, such as a clipboard write.

type AppErrorMsg struct {
	Err error
}

type AlarmFiredMsg struct {
	Alarm scheduler.Alarm
}

// Options are the collaborators the model cannot build itself. Zero values
// fall back to the wall clock, a no-op clipboard and a no-op notifier.
type Options struct {
	Now      func() time.Time
	Copier   share.Copier
	Notifier DesktopNotifier
	Alarms   *scheduler.Engine
	Logger   *slog.Logger
}

func NewModel() Model {
	return NewModelWithConfig(config.DefaultRuntimeConfig(), Options{})
}

func NewModelWithConfig(cfg config.RuntimeConfig, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		Mode:           cfg.Mode(),
		Format:         cfg.Clock(),
		Armed:          make(map[string]time.Time),
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		copier:         share.NoopCopier{},
		shareURL:       strings.TrimSpace(cfg.ShareURL),
		calc:           model.NewCalculator(now),
		now:            now,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Alarms:         opts.Alarms,
		Keys: GlobalKeyMap{
			Wakeup:  "1",
			Bedtime: "2",
			Now:     "3",
			Help:    "?",
			Quit:    "q",
		},
	}
	if opts.Copier != nil {
		m.copier = opts.Copier
	}
	if opts.Notifier != nil {
		m.notifier = opts.Notifier
	}
	if opts.Logger != nil {
		m.logger = opts.Logger
	}
	m.initBubbleComponents(cfg.DefaultTime)
	m.recalculate()
	return m
}

func (m *Model) initBubbleComponents(defaultTime string) {
	m.timeInput = textinput.New()
	m.timeInput.Prompt = "time> "
	m.timeInput.Placeholder = "HH:MM"
	m.timeInput.CharLimit = 5
	m.timeInput.Width = 8
	m.timeInput.SetValue(defaultTime)

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 64
	m.commandInput.Width = 40

	m.helpModel = help.New()
}

// TimeValue is the current content of the time input.
func (m Model) TimeValue() string {
	return m.timeInput.Value()
}

func isKnownMode(mode model.Mode) bool {
	return mode.IsValid()
}

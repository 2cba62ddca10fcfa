// Package share builds the text a user shares for a suggestion and puts text
// on the system clipboard.
package share

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/sandeepkv93/noozes/internal/model"
)

var ErrClipboardUnsupported = errors.New("share: clipboard not supported on this system")

const (
	Title       = "Noozes Sleep Time"
	CopiedTitle = "Copied to clipboard!"
)

// Text is the share message for a formatted suggestion time.
func Text(mode model.Mode, formatted string, url string) string {
	action := "wake up"
	if mode == model.ModeWakeup {
		action = "go to bed"
	}
	msg := fmt.Sprintf("Based on my schedule, a good time to %s is %s. Find your perfect sleep time with Noozes!", action, formatted)
	if u := strings.TrimSpace(url); u != "" {
		msg += " " + u
	}
	return msg
}

func CopiedBody(formatted string) string {
	return fmt.Sprintf("%s has been copied.", formatted)
}

type Copier interface {
	Copy(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

type NoopCopier struct{}

func (NoopCopier) Copy(string) error { return nil }

// Recorder keeps every copied string; used where a real clipboard is not
// available.
type Recorder struct {
	mu    sync.Mutex
	items []string
}

func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, text)
	return nil
}

func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ""
	}
	return r.items[len(r.items)-1]
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

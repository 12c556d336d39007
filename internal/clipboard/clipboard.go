// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard places exported fields on the system clipboard. When no
// native clipboard tool is available it can fall back to the OSC 52 escape
// sequence, which most terminal emulators (and tmux) forward to the host
// clipboard.
package clipboard // import "github.com/psu-tools/psu/internal/clipboard"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/psu-tools/psu/internal/logging"
)

// ErrUnavailable is returned when neither the native clipboard nor the
// OSC 52 fallback could take the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// System writes to the OS clipboard.
type System struct {
	// OSC52 enables the escape sequence fallback.
	OSC52 bool
	// Out receives the OSC 52 sequence. Defaults to stderr so it does not
	// interleave with the renderer's stdout frames.
	Out io.Writer

	native      func(string) error
	unsupported bool
	getenv      func(string) string
}

// New returns a clipboard backed by atotto/clipboard.
func New(osc52Fallback bool) *System {
	return &System{
		OSC52:       osc52Fallback,
		Out:         os.Stderr,
		native:      clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		getenv:      os.Getenv,
	}
}

// SetContents places text on the clipboard with a single synchronous call.
func (s *System) SetContents(text string) error {
	var nativeErr error
	if s.unsupported {
		nativeErr = errors.New("no clipboard utility found")
	} else if nativeErr = s.native(text); nativeErr == nil {
		return nil
	}

	if !s.OSC52 {
		return fmt.Errorf("%w: %v", ErrUnavailable, nativeErr)
	}

	logging.Debugf("clipboard: native write failed (%v), using OSC 52", nativeErr)
	seq := osc52.New(text)
	if s.inTmux() {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Out); err != nil {
		return fmt.Errorf("%w: %v; osc52: %v", ErrUnavailable, nativeErr, err)
	}
	return nil
}

func (s *System) inTmux() bool {
	return s.getenv("TMUX") != "" || strings.HasPrefix(s.getenv("TERM"), "tmux")
}

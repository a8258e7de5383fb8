//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Panel dimensions of the emulated Wio Terminal in landscape.
const (
	PanelWidth  = 320
	PanelHeight = 240
)

type hostHAL struct {
	logger  *hostLogger
	buttons *buttonBank
	gpio    GPIO
	fb      *hostFramebuffer
	t       *hostTime
}

// New returns a host HAL implementation that logs to stdout.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(logOut io.Writer) *hostHAL {
	buttons := newButtonBank()
	return &hostHAL{
		logger:  &hostLogger{w: logOut},
		buttons: buttons,
		gpio:    buttons.gpio(),
		fb:      newHostFramebuffer(PanelWidth, PanelHeight),
		t:       newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Surface() Surface { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

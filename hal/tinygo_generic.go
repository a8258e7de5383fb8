//go:build tinygo && baremetal && !wioterminal

package hal

import "machine"

// Panel dimensions reported by the stub surface.
const (
	PanelWidth  = 320
	PanelHeight = 240
)

type genericHAL struct {
	logger *uartLogger
	s      Surface
	t      *tinyGoTime
}

// New returns a HAL for boards without a supported panel. The dashboard still
// runs and logs over serial, but nothing is drawn and no buttons exist.
func New() HAL {
	return &genericHAL{
		logger: &uartLogger{out: machine.Serial},
		s:      &stubSurface{w: PanelWidth, h: PanelHeight},
		t:      newTinyGoTime(),
	}
}

func (h *genericHAL) Logger() Logger   { return h.logger }
func (h *genericHAL) GPIO() GPIO       { return nullGPIO{} }
func (h *genericHAL) Display() Display { return tinyGoDisplay{s: h.s} }
func (h *genericHAL) Time() Time       { return h.t }

//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	s Surface
}

func (d tinyGoDisplay) Surface() Surface { return d.s }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	out machine.Serialer
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.out.Write(b)
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

// machinePin is a button input on a real GPIO line.
type machinePin struct {
	name string
	pin  machine.Pin
}

func (p *machinePin) Name() string { return p.name }
func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return ErrNotImplemented
	}
	switch pull {
	case GPIOPullUp:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	case GPIOPullDown:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	default:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }
func (p *machinePin) Write(bool) error    { return ErrNotImplemented }

package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type virtualGPIO struct {
	pins []GPIOPin
}

func newVirtualGPIO(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &virtualGPIO{pins: pins}
}

func (g *virtualGPIO) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *virtualGPIO) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// buttonPin is an input pin whose level is driven by a host front end.
// It idles high like a button wired to ground with a pull-up.
type buttonPin struct {
	mu      sync.Mutex
	name    string
	pull    GPIOPull
	pressed bool
}

func newButtonPin(name string) *buttonPin {
	return &buttonPin{name: name, pull: GPIOPullUp}
}

func (p *buttonPin) Name() string   { return p.name }
func (p *buttonPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp | GPIOCapPullDown }

func (p *buttonPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	switch pull {
	case GPIOPullNone, GPIOPullUp, GPIOPullDown:
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}
	p.pull = pull
	return nil
}

// Read reports the electrical level: low while pressed with a pull-up, high with a pull-down.
func (p *buttonPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pull == GPIOPullDown {
		return p.pressed, nil
	}
	return !p.pressed, nil
}

func (p *buttonPin) Write(level bool) error {
	_ = level
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

func (p *buttonPin) set(pressed bool) {
	p.mu.Lock()
	p.pressed = pressed
	p.mu.Unlock()
}

// buttonBank holds one pin per Button in pin-id order.
type buttonBank [ButtonCount]*buttonPin

func newButtonBank() *buttonBank {
	var b buttonBank
	for i := range b {
		b[i] = newButtonPin("BTN_" + Button(i).String())
	}
	return &b
}

func (b *buttonBank) gpio() GPIO {
	pins := make([]GPIOPin, len(b))
	for i, p := range b {
		pins[i] = p
	}
	return newVirtualGPIO(pins)
}

func (b *buttonBank) set(btn Button, pressed bool) {
	if btn < ButtonCount {
		b[btn].set(pressed)
	}
}

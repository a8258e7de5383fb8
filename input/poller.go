package input

import (
	"fmt"

	"wifidash/hal"
	"wifidash/kernel"

	"github.com/rs/zerolog"
)

// MsgButton is the kernel message kind carrying one Event.
const MsgButton uint16 = 1

// State is the debounced state a button moved into.
type State uint8

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Event reports a debounced transition.
type Event struct {
	Button hal.Button
	State  State
}

func (e Event) encode() []byte { return []byte{byte(e.Button), byte(e.State)} }

// Decode extracts an Event from a kernel message.
func Decode(msg kernel.Message) (Event, bool) {
	p := msg.Payload()
	if msg.Kind != MsgButton || len(p) != 2 || hal.Button(p[0]) >= hal.ButtonCount || p[1] > byte(Pressed) {
		return Event{}, false
	}
	return Event{Button: hal.Button(p[0]), State: State(p[1])}, true
}

// DefaultPollTicks is the sampling period in milliseconds.
const DefaultPollTicks = 10

// Poller samples every button pin and publishes transitions.
type Poller struct {
	pins   [hal.ButtonCount]hal.GPIOPin
	deb    [hal.ButtonCount]Debouncer
	out    kernel.Capability
	period uint64
	log    zerolog.Logger
}

// NewPoller configures the button pins as pulled-up inputs. Missing pins are
// skipped; the poller still runs with whatever is wired.
func NewPoller(g hal.GPIO, out kernel.Capability, log zerolog.Logger) *Poller {
	p := &Poller{out: out, period: DefaultPollTicks, log: log}
	for i := range p.deb {
		p.deb[i] = NewDebouncer(DefaultStableReads)
	}
	if g == nil {
		log.Warn().Msg("input: no gpio")
		return p
	}
	for b := hal.Button(0); b < hal.ButtonCount; b++ {
		pin := g.Pin(int(b))
		if pin == nil {
			log.Warn().Stringer("button", b).Msg("input: pin missing")
			continue
		}
		if err := pin.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			log.Error().Err(err).Stringer("button", b).Msg("input: configure")
			continue
		}
		p.pins[b] = pin
	}
	return p
}

// Poll samples every pin once and calls emit for each debounced transition.
func (p *Poller) Poll(emit func(Event)) error {
	var firstErr error
	for b, pin := range p.pins {
		if pin == nil {
			continue
		}
		level, err := pin.Read()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("read %s: %w", hal.Button(b), err)
			}
			continue
		}
		// Pulled up: pressed reads low.
		if p.deb[b].Update(!level) {
			st := Released
			if p.deb[b].Pressed() {
				st = Pressed
			}
			emit(Event{Button: hal.Button(b), State: st})
		}
	}
	return firstErr
}

// Step polls once, forwards events to the output endpoint and sleeps one period.
func (p *Poller) Step(ctx *kernel.Context) {
	err := p.Poll(func(ev Event) {
		if res := ctx.Send(p.out, MsgButton, ev.encode()); res != kernel.SendOK {
			p.log.Warn().Stringer("button", ev.Button).Stringer("result", res).Msg("input: event dropped")
		}
	})
	if err != nil {
		p.log.Error().Err(err).Msg("input: poll")
	}
	ctx.SleepUntil(ctx.NowTick() + p.period)
}

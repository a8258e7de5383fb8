package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Surface is the live panel. Every call lands on the display immediately;
// Display() only flushes drivers that need it.
type Surface interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Display provides access to the panel surface (if available).
type Display interface {
	Surface() Surface
}

// Button names one of the physical buttons. Its value is the GPIO pin id.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonPress
	ButtonA
	ButtonB
	ButtonC

	ButtonCount
)

var buttonNames = [ButtonCount]string{"UP", "DOWN", "LEFT", "RIGHT", "PRESS", "A", "B", "C"}

func (b Button) String() string {
	if b < ButtonCount {
		return buttonNames[b]
	}
	return "?"
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the dashboard and the outside world.
//
// Buttons are GPIO inputs with pull-ups: a pressed button reads low.
type HAL interface {
	Logger() Logger
	Display() Display
	GPIO() GPIO
	Time() Time
}

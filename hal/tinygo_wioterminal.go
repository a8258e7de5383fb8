//go:build tinygo && baremetal && wioterminal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

// Panel dimensions in landscape.
const (
	PanelWidth  = 320
	PanelHeight = 240
)

type wioHAL struct {
	logger *uartLogger
	gpio   GPIO
	s      Surface
	t      *tinyGoTime
}

// New returns a Wio Terminal HAL implementation.
//
// Logs go to the USB CDC serial port. The panel is driven in landscape with
// the five-way switch on the right.
func New() HAL {
	logger := &uartLogger{out: machine.Serial}

	var s Surface
	if lcd, err := initLCD(); err == nil {
		s = lcd
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
		s = &stubSurface{w: PanelWidth, h: PanelHeight}
	}

	pins := [ButtonCount]machine.Pin{
		ButtonUp:    machine.WIO_5S_UP,
		ButtonDown:  machine.WIO_5S_DOWN,
		ButtonLeft:  machine.WIO_5S_LEFT,
		ButtonRight: machine.WIO_5S_RIGHT,
		ButtonPress: machine.WIO_5S_PRESS,
		ButtonA:     machine.WIO_KEY_A,
		ButtonB:     machine.WIO_KEY_B,
		ButtonC:     machine.WIO_KEY_C,
	}
	gp := make([]GPIOPin, ButtonCount)
	for i, p := range pins {
		gp[i] = &machinePin{name: "BTN_" + Button(i).String(), pin: p}
	}

	return &wioHAL{
		logger: logger,
		gpio:   newVirtualGPIO(gp),
		s:      s,
		t:      newTinyGoTime(),
	}
}

func initLCD() (*ili9341.Device, error) {
	err := machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	lcd := ili9341.NewSPI(machine.SPI3, machine.LCD_DC, machine.LCD_SS_PIN, machine.LCD_RESET)
	lcd.Configure(ili9341.Config{})
	if err := lcd.SetRotation(drivers.Rotation270); err != nil {
		return nil, err
	}

	backlight := machine.LCD_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight.High()
	return lcd, nil
}

func (h *wioHAL) Logger() Logger   { return h.logger }
func (h *wioHAL) GPIO() GPIO       { return h.gpio }
func (h *wioHAL) Display() Display { return tinyGoDisplay{s: h.s} }
func (h *wioHAL) Time() Time       { return h.t }

//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// keymap lists the keys that drive each button. Arrows and Enter play the
// five-way switch; 1/2/3 are the top keys from left to right.
var keymap = [ButtonCount][]ebiten.Key{
	ButtonUp:    {ebiten.KeyArrowUp, ebiten.KeyK},
	ButtonDown:  {ebiten.KeyArrowDown, ebiten.KeyJ},
	ButtonLeft:  {ebiten.KeyArrowLeft, ebiten.KeyH},
	ButtonRight: {ebiten.KeyArrowRight, ebiten.KeyL},
	ButtonPress: {ebiten.KeyEnter, ebiten.KeySpace},
	ButtonC:     {ebiten.KeyDigit1, ebiten.KeyC},
	ButtonB:     {ebiten.KeyDigit2, ebiten.KeyB},
	ButtonA:     {ebiten.KeyDigit3, ebiten.KeyA},
}

// pollKeys mirrors the current key state onto the button pins.
func pollKeys(b *buttonBank) {
	for btn, keys := range keymap {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		b.set(Button(btn), down)
	}
}

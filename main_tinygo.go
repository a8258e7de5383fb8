//go:build tinygo

package main

import (
	"wifidash/app"
	"wifidash/hal"
)

func main() {
	app.Run(hal.New())
}

//go:build !tinygo

package main

import (
	"context"
	"os"
	"os/signal"

	"wifidash/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute(ctx)
}

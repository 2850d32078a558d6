// Command ledctl is the operator CLI for the LED display coordinator: it
// dials the coordinator's Unix socket as just another producer and issues
// one-shot commands (status, test, symbol, animation, progress, clear,
// stop, shutdown).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

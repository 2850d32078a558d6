package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ledmanager/internal/display"
	"ledmanager/internal/ipc"
)

func newSymbolCommand(ctx *commandContext) *cobra.Command {
	var priority string
	var duration float64

	cmd := &cobra.Command{
		Use:   "symbol <name>",
		Short: fmt.Sprintf("Show a status symbol (one of: %s)", strings.Join(symbolNames(), ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !display.ValidSymbol(name) {
				return fmt.Errorf("unknown symbol %q; valid symbols: %s", name, strings.Join(symbolNames(), ", "))
			}
			params, err := json.Marshal(ipc.ShowSymbolParams{Symbol: name, Duration: duration})
			if err != nil {
				return err
			}
			return runAndReport(ctx, cmd, ipc.Request{Command: "show_symbol", Priority: priority, Params: params})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "LOW, MEDIUM, or HIGH")
	cmd.Flags().Float64Var(&duration, "duration", 0, "display duration in seconds (0 = coordinator default)")
	return cmd
}

func symbolNames() []string {
	symbols := display.Symbols()
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = string(s)
	}
	return names
}

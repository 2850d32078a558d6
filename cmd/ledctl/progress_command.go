package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"ledmanager/internal/ipc"
)

func newProgressCommand(ctx *commandContext) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "progress <percentage>",
		Short: "Show the legacy three-color vertical progress bar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := parsePercentage(args[0])
			if err != nil {
				return err
			}
			params, err := json.Marshal(ipc.ShowProgressParams{Percentage: pct})
			if err != nil {
				return err
			}
			return runAndReport(ctx, cmd, ipc.Request{Command: "show_progress", Priority: priority, Params: params})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "LOW", "LOW, MEDIUM, or HIGH")
	return cmd
}

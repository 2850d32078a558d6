package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ledmanager/internal/display"
	"ledmanager/internal/ipc"
)

func newLayoutCommand(ctx *commandContext) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "layout <file.json>",
		Short: "Show a task-hierarchy layout described by a JSON payload file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read layout payload: %w", err)
			}

			var payload display.LayoutPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("parse layout payload: %w", err)
			}

			params, err := json.Marshal(ipc.ShowLayoutParams{Payload: payload})
			if err != nil {
				return err
			}
			return runAndReport(ctx, cmd, ipc.Request{Command: "show_layout", Priority: priority, Params: params})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "LOW, MEDIUM, or HIGH")
	return cmd
}

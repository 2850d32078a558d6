package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledmanager/internal/ipc"
)

func newTestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the coordinator's built-in self-test sequence (blocks for its full duration)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, ipc.Request{Command: "test"})
		},
	}
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Blank the panel and stop any running animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, ipc.Request{Command: "clear"})
		},
	}
}

func newStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop any running animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, ipc.Request{Command: "stop_animation"})
		},
	}
}

func newShutdownCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown",
		Short: "Ask the coordinator to clear the panel and exit cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(ctx, cmd, ipc.Request{Command: "shutdown"})
		},
	}
}

// runAndReport sends req to the coordinator and prints (or JSON-encodes)
// the acknowledgment.
func runAndReport(ctx *commandContext, cmd *cobra.Command, req ipc.Request) error {
	return ctx.withClient(func(client *ipc.Client) error {
		resp, err := client.Call(req)
		if err != nil {
			return err
		}
		if ctx.jsonMode() {
			return writeJSON(cmd, resp)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "success: %s\n", yesNo(resp.Success))
		fmt.Fprintf(out, "message: %s\n", resp.Message)
		if resp.Error != nil && *resp.Error != "" {
			fmt.Fprintf(out, "error: %s\n", *resp.Error)
		}
		return nil
	})
}

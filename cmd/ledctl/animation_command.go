package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ledmanager/internal/display"
	"ledmanager/internal/ipc"
)

func newAnimationCommand(ctx *commandContext) *cobra.Command {
	var priority string
	var frameDelay float64

	cmd := &cobra.Command{
		Use:   "animation <name>",
		Short: fmt.Sprintf("Start an animation (one of: %s)", strings.Join(animationNames(), ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !display.ValidAnimation(name) {
				return fmt.Errorf("unknown animation %q; valid animations: %s", name, strings.Join(animationNames(), ", "))
			}
			params, err := json.Marshal(ipc.ShowAnimationParams{Animation: name, FrameDelay: frameDelay})
			if err != nil {
				return err
			}
			return runAndReport(ctx, cmd, ipc.Request{Command: "show_animation", Priority: priority, Params: params})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "LOW", "LOW, MEDIUM, or HIGH")
	cmd.Flags().Float64Var(&frameDelay, "frame-delay", 0, "per-frame delay in seconds (0 = animation default)")
	return cmd
}

func animationNames() []string {
	animations := display.Animations()
	names := make([]string, len(animations))
	for i, a := range animations {
		names[i] = string(a)
	}
	return names
}

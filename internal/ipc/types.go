package ipc

import (
	"encoding/json"
	"fmt"
	"time"

	"ledmanager/internal/coordinator"
	"ledmanager/internal/display"
	"ledmanager/internal/services"
)

// Request is one line of the wire protocol: a command name, an optional
// priority, and a kind-specific params object.
type Request struct {
	Command  string          `json:"command"`
	Priority string          `json:"priority,omitempty"`
	Params   json.RawMessage `json:"params,omitempty"`
}

// Response is one line of the wire protocol written back per request.
type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

func errorResponse(message, code string) Response {
	c := code
	return Response{Success: false, Message: message, Error: &c}
}

func fromCoordinatorResponse(resp coordinator.Response) Response {
	out := Response{Success: resp.Success, Message: resp.Message}
	if resp.Error != "" {
		e := resp.Error
		out.Error = &e
	}
	return out
}

// ShowSymbolParams is the params payload for the show_symbol command.
type ShowSymbolParams struct {
	Symbol   string  `json:"symbol"`
	Duration float64 `json:"duration,omitempty"`
	Color    []int   `json:"color,omitempty"`
}

// ShowAnimationParams is the params payload for the show_animation command.
type ShowAnimationParams struct {
	Animation  string  `json:"animation"`
	Duration   float64 `json:"duration,omitempty"`
	FrameDelay float64 `json:"frame_delay,omitempty"`
}

// ShowProgressParams is the params payload for the show_progress command.
type ShowProgressParams struct {
	Percentage float64 `json:"percentage"`
}

// ShowLayoutParams is the params payload for the show_layout command.
type ShowLayoutParams struct {
	Payload display.LayoutPayload `json:"payload"`
}

// commandKinds maps wire command names to coordinator Kind values. The map
// is the single source of truth for which command strings are recognized.
var commandKinds = map[string]coordinator.Kind{
	"show_symbol":    coordinator.KindShowSymbol,
	"show_animation": coordinator.KindShowAnimation,
	"show_progress":  coordinator.KindShowProgress,
	"show_layout":    coordinator.KindShowLayout,
	"stop_animation": coordinator.KindStopAnimation,
	"clear":          coordinator.KindClear,
	"test":           coordinator.KindTest,
	"shutdown":       coordinator.KindShutdown,
}

var priorityValues = map[string]coordinator.Priority{
	"LOW":    coordinator.PriorityLow,
	"MEDIUM": coordinator.PriorityMedium,
	"HIGH":   coordinator.PriorityHigh,
}

// decodeCommand converts a wire Request into a coordinator.Command. Returns
// a services-tagged error (InvalidCommand or InvalidParams) for anything
// decodeCommand itself can catch; deeper validation (unknown symbol/animation
// names, out-of-range layout kind) happens in coordinator.Submit.
func decodeCommand(req Request, clientID string) (*coordinator.Command, error) {
	kind, ok := commandKinds[req.Command]
	if !ok {
		return nil, services.Wrap(services.ErrInvalidCommand, "ipc", "decodeCommand",
			fmt.Sprintf("unrecognized command %q", req.Command), nil)
	}

	priority := coordinator.PriorityLow
	if req.Priority != "" {
		p, ok := priorityValues[req.Priority]
		if !ok {
			return nil, services.Wrap(services.ErrInvalidParams, "ipc", "decodeCommand",
				fmt.Sprintf("unrecognized priority %q", req.Priority), nil)
		}
		priority = p
	}

	cmd := &coordinator.Command{Kind: kind, Priority: priority, ClientID: clientID}

	switch kind {
	case coordinator.KindShowSymbol:
		var params ShowSymbolParams
		if err := unmarshalParams(req.Params, &params); err != nil {
			return nil, err
		}
		cmd.Symbol = display.Symbol(params.Symbol)
		cmd.Duration = time.Duration(params.Duration * float64(time.Second))
		if len(params.Color) == 3 {
			cmd.Color = &display.Color{
				R: uint8(clampChannel(params.Color[0])),
				G: uint8(clampChannel(params.Color[1])),
				B: uint8(clampChannel(params.Color[2])),
			}
		}

	case coordinator.KindShowAnimation:
		var params ShowAnimationParams
		if err := unmarshalParams(req.Params, &params); err != nil {
			return nil, err
		}
		cmd.Animation = display.AnimationName(params.Animation)
		cmd.FrameDelay = time.Duration(params.FrameDelay * float64(time.Second))

	case coordinator.KindShowProgress:
		var params ShowProgressParams
		if err := unmarshalParams(req.Params, &params); err != nil {
			return nil, err
		}
		cmd.Percentage = display.ClampPercentage(params.Percentage)

	case coordinator.KindShowLayout:
		var params ShowLayoutParams
		if err := unmarshalParams(req.Params, &params); err != nil {
			return nil, err
		}
		cmd.Layout = params.Payload
	}

	return cmd, nil
}

func unmarshalParams(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return services.Wrap(services.ErrInvalidParams, "ipc", "decodeCommand",
			"malformed params", err)
	}
	return nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

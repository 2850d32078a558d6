package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCommand      = errors.New("invalid command")
	ErrInvalidParams       = errors.New("invalid params")
	ErrQueueFull           = errors.New("queue full")
	ErrNotRunning          = errors.New("not running")
	ErrHardwareUnavailable = errors.New("hardware unavailable")
	ErrSocketBindFailed    = errors.New("socket bind failed")
	ErrHardwareInit        = errors.New("hardware init failed")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later wire-code classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrInvalidCommand
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ErrorCode maps an error to the wire-protocol error code string a response
// should carry. Errors that do not match a known sentinel map to
// "InvalidCommand" since the server only ever emits the codes the wire
// protocol enumerates.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidParams):
		return "InvalidParams"
	case errors.Is(err, ErrQueueFull):
		return "QueueFull"
	case errors.Is(err, ErrNotRunning):
		return "NotRunning"
	case errors.Is(err, ErrHardwareUnavailable):
		return "HardwareUnavailable"
	case errors.Is(err, ErrInvalidCommand):
		return "InvalidCommand"
	default:
		return "InvalidCommand"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

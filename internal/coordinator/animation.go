package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ledmanager/internal/display"
	"ledmanager/internal/logging"
	"ledmanager/internal/panel"
)

// animationShutdownTimeout bounds how long Stop waits for a frame in
// progress to finish before giving up and logging a leak.
const animationShutdownTimeout = 200 * time.Millisecond

// AnimationEngine owns the single active animation goroutine. Start
// cancels and joins any previously running animation before spawning the
// new one, so there is never more than one animation goroutine live at a
// time. Stop races the goroutine's completion against a bounded timer
// instead of waiting unboundedly.
type AnimationEngine struct {
	driver panel.Driver
	logger *slog.Logger

	mu         sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
	onComplete func()
}

// NewAnimationEngine constructs an engine that presents frames through
// driver.
func NewAnimationEngine(driver panel.Driver, logger *slog.Logger) *AnimationEngine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AnimationEngine{driver: driver, logger: logger}
}

// Start cancels any running animation and spawns a new goroutine rendering
// animation frames at frameDelay. onComplete, if non-nil, is invoked exactly
// once when the goroutine exits, whether by natural completion or
// cancellation — the coordinator uses this to clear its running-priority
// slot.
func (e *AnimationEngine) Start(animation display.AnimationName, frameDelay time.Duration, onComplete func()) {
	e.Stop()

	if frameDelay <= 0 {
		frameDelay = defaultFrameDelay(animation)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.mu.Lock()
	e.cancel = cancel
	e.done = done
	e.onComplete = onComplete
	e.mu.Unlock()

	go e.run(ctx, done, animation, frameDelay, onComplete)
}

// Stop cancels the running animation, if any, and waits up to
// animationShutdownTimeout for its frame in progress to finish. If the
// timeout elapses the leak is logged and Stop returns anyway; the caller is
// free to proceed with the next command.
func (e *AnimationEngine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	done := e.done
	e.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()

	if done != nil {
		select {
		case <-done:
		case <-time.After(animationShutdownTimeout):
			e.logger.Warn("animation shutdown timed out; leaked goroutine suspected",
				logging.String(logging.FieldEventType, "animation_shutdown_timeout"),
			)
		}
	}

	e.mu.Lock()
	if e.cancel != nil {
		e.cancel = nil
		e.done = nil
	}
	e.mu.Unlock()
}

// clearHandleIfCurrent drops the engine's cancel/done handle once a run
// goroutine exits on its own (a finite animation like boot reaching its
// last frame), so IsRunning reflects reality without needing an explicit
// Stop call first.
func (e *AnimationEngine) clearHandleIfCurrent(done chan struct{}) {
	e.mu.Lock()
	if e.done == done {
		e.cancel = nil
		e.done = nil
	}
	e.mu.Unlock()
}

// IsRunning reports whether an animation goroutine is currently active.
func (e *AnimationEngine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

func (e *AnimationEngine) run(ctx context.Context, done chan struct{}, animation display.AnimationName, frameDelay time.Duration, onComplete func()) {
	defer close(done)
	defer func() {
		if onComplete != nil {
			onComplete()
		}
	}()
	defer e.clearHandleIfCurrent(done)

	finite := animation == display.AnimationBoot
	frame := 0

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		e.driver.Present(renderAnimationFrame(animation, frame))

		if finite && frame >= display.BootFrameCount-1 {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(frameDelay):
		}
		frame++
	}
}

func renderAnimationFrame(animation display.AnimationName, frame int) *display.Framebuffer {
	switch animation {
	case display.AnimationBoot:
		return display.RenderBootFrame(frame)
	case display.AnimationWiFiSearching:
		return display.RenderWiFiSearchingFrame(frame)
	case display.AnimationActivity:
		return display.RenderActivityFrame(frame)
	case display.AnimationIdle:
		return display.RenderIdleFrame(frame)
	default:
		return display.NewFramebuffer()
	}
}

func defaultFrameDelay(animation display.AnimationName) time.Duration {
	switch animation {
	case display.AnimationBoot:
		return 50 * time.Millisecond
	case display.AnimationWiFiSearching:
		return 400 * time.Millisecond
	case display.AnimationActivity:
		return 500 * time.Millisecond
	case display.AnimationIdle:
		return 300 * time.Millisecond
	default:
		return 500 * time.Millisecond
	}
}

package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ledmanager/internal/config"
	"ledmanager/internal/display"
	"ledmanager/internal/logging"
	"ledmanager/internal/panel"
	"ledmanager/internal/services"
)

// defaultSymbolDuration is how long the worker blocks after presenting a
// symbol so lower-priority commands don't immediately overwrite it.
const defaultSymbolDuration = 2 * time.Second

// Coordinator is the single worker that owns the queue, the active-animation
// handle, and the framebuffer-write right. Nothing else in the process
// calls panel.Driver.Present. A single worker-loop shape, generalized from
// "fetch next queue item by status lane" to "pop next command by priority".
type Coordinator struct {
	cfg    *config.Config
	logger *slog.Logger
	driver panel.Driver
	queue  *Queue
	engine *AnimationEngine

	mu              sync.Mutex
	runningPriority *Priority
	running         bool
	cancel          context.CancelFunc
	wg              sync.WaitGroup
	shutdownOnce    sync.Once
	shutdown        chan struct{}
}

// New constructs a Coordinator around driver. The queue bound comes from
// cfg.Server.QueueCapacity.
func New(cfg *config.Config, driver panel.Driver, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = logging.NewNop()
	}
	capacity := 0
	if cfg != nil {
		capacity = cfg.Server.QueueCapacity
	}
	c := &Coordinator{
		cfg:      cfg,
		logger:   logger,
		driver:   driver,
		queue:    NewQueue(capacity),
		shutdown: make(chan struct{}),
	}
	c.engine = NewAnimationEngine(driver, logger)
	return c
}

// Start spawns the worker goroutine. It is an error to call Start twice
// without an intervening Stop.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return errors.New("coordinator already running")
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true
	c.wg.Add(1)
	c.mu.Unlock()

	go c.runWorker(runCtx)
	return nil
}

// Stop cancels the worker loop and waits for it to exit.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	cancel := c.cancel
	c.running = false
	c.cancel = nil
	c.mu.Unlock()

	cancel()
	c.queue.Close()
	c.wg.Wait()
	c.engine.Stop()
}

// Done is closed once the worker loop has processed a Shutdown command and
// exited. The IPC server watches this to stop accepting new connections.
func (c *Coordinator) Done() <-chan struct{} {
	return c.shutdown
}

// Submit enqueues cmd. If the command's normalized priority exceeds the
// priority of whatever animation is currently running, the engine is
// stopped here, before the worker picks the command up; the worker also
// stops the engine before dispatching the next command regardless, so this
// is strictly an optimization to cut preemption latency. StopAnimation is
// left to the worker so it can report whether an animation was running.
func (c *Coordinator) Submit(cmd *Command) error {
	if cmd == nil {
		return services.Wrap(services.ErrInvalidCommand, "coordinator", "Submit", "nil command", nil)
	}
	if err := validateCommand(cmd); err != nil {
		return err
	}

	if err := c.queue.Push(cmd); err != nil {
		return err
	}

	normalized := cmd.normalizedPriority()
	c.mu.Lock()
	running := c.runningPriority
	c.mu.Unlock()
	if running != nil && normalized > *running && cmd.Kind != KindStopAnimation {
		c.engine.Stop()
	}

	return nil
}

func validateCommand(cmd *Command) error {
	switch cmd.Kind {
	case KindShowSymbol:
		if !display.ValidSymbol(string(cmd.Symbol)) {
			return services.Wrap(services.ErrInvalidParams, "coordinator", "Submit", "unknown symbol", nil)
		}
	case KindShowAnimation:
		if !display.ValidAnimation(string(cmd.Animation)) {
			return services.Wrap(services.ErrInvalidParams, "coordinator", "Submit", "unknown animation", nil)
		}
	case KindShowProgress:
	case KindShowLayout:
		switch cmd.Layout.Layout {
		case display.LayoutSingleView, display.LayoutSprintView, display.LayoutUserStoryLayout:
		default:
			return services.Wrap(services.ErrInvalidParams, "coordinator", "Submit", "unknown layout", nil)
		}
	case KindStopAnimation, KindClear, KindTest, KindShutdown:
	default:
		return services.Wrap(services.ErrInvalidCommand, "coordinator", "Submit", "unknown command kind", nil)
	}
	return nil
}

func (c *Coordinator) runWorker(ctx context.Context) {
	defer c.wg.Done()

	for {
		cmd, err := c.queue.Pop(ctx)
		if err != nil {
			return
		}
		if c.dispatch(ctx, cmd) {
			c.shutdownOnce.Do(func() { close(c.shutdown) })
			return
		}
	}
}

// dispatch processes one command and returns true if the worker loop should
// exit (Shutdown was dispatched).
func (c *Coordinator) dispatch(ctx context.Context, cmd *Command) bool {
	logger := c.logger.With(
		logging.String(logging.FieldClientID, cmd.ClientID),
		logging.String(logging.FieldCommand, string(cmd.Kind)),
	)

	switch cmd.Kind {
	case KindShowSymbol:
		c.stopAnimation()
		c.driver.Present(display.RenderSymbol(cmd.Symbol, cmd.Color))
		cmd.reply(Response{Success: true, Message: "symbol displayed"})
		duration := cmd.Duration
		if duration <= 0 {
			duration = defaultSymbolDuration
		}
		c.blockFor(ctx, duration)

	case KindShowProgress:
		c.stopAnimation()
		c.driver.Present(display.RenderProgressBar(cmd.Percentage))
		cmd.reply(Response{Success: true, Message: "progress displayed"})

	case KindShowLayout:
		c.stopAnimation()
		c.driver.Present(renderLayout(cmd.Layout))
		cmd.reply(Response{Success: true, Message: "layout displayed"})

	case KindShowAnimation:
		c.startAnimation(cmd)
		cmd.reply(Response{Success: true, Message: "animation started"})

	case KindStopAnimation:
		wasRunning := c.engine.IsRunning()
		c.stopAnimation()
		if wasRunning {
			cmd.reply(Response{Success: true, Message: "animation stopped"})
		} else {
			cmd.reply(Response{Success: true, Message: "no animation running", Error: "NotRunning"})
		}

	case KindClear:
		c.stopAnimation()
		c.driver.Clear()
		cmd.reply(Response{Success: true, Message: "cleared"})

	case KindTest:
		c.runTestSequence(ctx)
		cmd.reply(Response{Success: true, Message: "self-test completed"})

	case KindShutdown:
		c.stopAnimation()
		c.driver.Clear()
		cmd.reply(Response{Success: true, Message: "shutting down"})
		logger.Info("shutdown command dispatched; worker loop exiting",
			logging.String(logging.FieldEventType, "coordinator_shutdown"),
		)
		return true

	default:
		cmd.reply(Response{Success: false, Message: "unrecognized command", Error: services.ErrorCode(services.ErrInvalidCommand)})
	}

	return false
}

func (c *Coordinator) stopAnimation() {
	c.engine.Stop()
	c.setRunningPriority(nil)
}

func (c *Coordinator) startAnimation(cmd *Command) {
	priority := cmd.normalizedPriority()
	c.setRunningPriority(&priority)
	c.engine.Start(cmd.Animation, cmd.FrameDelay, func() {
		c.clearRunningPriorityIfMatches(priority)
	})
}

func (c *Coordinator) setRunningPriority(p *Priority) {
	c.mu.Lock()
	c.runningPriority = p
	c.mu.Unlock()
}

func (c *Coordinator) clearRunningPriorityIfMatches(p Priority) {
	c.mu.Lock()
	if c.runningPriority != nil && *c.runningPriority == p {
		c.runningPriority = nil
	}
	c.mu.Unlock()
}

func (c *Coordinator) blockFor(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func renderLayout(payload display.LayoutPayload) *display.Framebuffer {
	switch payload.Layout {
	case display.LayoutSprintView:
		return display.RenderSprintView(payload)
	case display.LayoutUserStoryLayout:
		return display.RenderUserStoryLayout(payload)
	default:
		return display.RenderSingleView(payload)
	}
}

// runTestSequence executes the built-in diagnostic: every symbol, then
// every animation, then a progress sweep, then clear.
func (c *Coordinator) runTestSequence(ctx context.Context) {
	symbolDuration := 2 * time.Second
	animationDuration := 2500 * time.Millisecond
	if c.cfg != nil {
		if c.cfg.Diagnostics.TestSymbolDurationSeconds > 0 {
			symbolDuration = time.Duration(c.cfg.Diagnostics.TestSymbolDurationSeconds * float64(time.Second))
		}
		if c.cfg.Diagnostics.TestAnimationDurationSeconds > 0 {
			animationDuration = time.Duration(c.cfg.Diagnostics.TestAnimationDurationSeconds * float64(time.Second))
		}
	}

	for _, symbol := range display.Symbols() {
		if ctx.Err() != nil {
			return
		}
		c.stopAnimation()
		c.driver.Present(display.RenderSymbol(symbol, nil))
		c.blockFor(ctx, symbolDuration)
	}

	for _, animation := range display.Animations() {
		if ctx.Err() != nil {
			return
		}
		done := make(chan struct{})
		c.setRunningPriority(ptrPriority(PriorityHigh))
		c.engine.Start(animation, 0, func() { close(done) })
		c.blockFor(ctx, animationDuration)
		c.stopAnimation()
		select {
		case <-done:
		default:
		}
	}

	for _, pct := range []float64{0, 25, 50, 75, 100} {
		if ctx.Err() != nil {
			return
		}
		c.driver.Present(display.RenderProgressBar(pct))
		c.blockFor(ctx, 500*time.Millisecond)
	}

	c.driver.Clear()
}

func ptrPriority(p Priority) *Priority {
	return &p
}

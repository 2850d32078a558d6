package coordinator

import (
	"context"
	"testing"
	"time"

	"ledmanager/internal/config"
	"ledmanager/internal/display"
	"ledmanager/internal/panel"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *panel.Mock) {
	t.Helper()
	mock := panel.NewMock(nil, nil)
	cfg := &config.Config{Server: config.Server{QueueCapacity: 16}}
	c := New(cfg, mock, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(c.Stop)
	return c, mock
}

func submitAndWait(t *testing.T, c *Coordinator, cmd *Command) Response {
	t.Helper()
	cmd.Ack = make(chan Response, 1)
	if err := c.Submit(cmd); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	select {
	case resp := <-cmd.Ack:
		return resp
	case <-time.After(2 * time.Second):
		t.Fatalf("command was never acknowledged")
		return Response{}
	}
}

func TestCoordinatorShowSymbolPresentsFrame(t *testing.T) {
	c, mock := newTestCoordinator(t)
	resp := submitAndWait(t, c, &Command{
		Kind:     KindShowSymbol,
		Symbol:   display.SymbolCheck,
		Duration: 10 * time.Millisecond,
	})
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if mock.PresentCount() == 0 {
		t.Fatalf("expected symbol to be presented")
	}
}

func TestCoordinatorRejectsUnknownSymbol(t *testing.T) {
	c, _ := newTestCoordinator(t)
	cmd := &Command{Kind: KindShowSymbol, Symbol: display.Symbol("not-a-symbol"), Ack: make(chan Response, 1)}
	err := c.Submit(cmd)
	if err == nil {
		t.Fatalf("expected validation error for unknown symbol")
	}
}

func TestCoordinatorStopAnimationWhenIdleIsStillSuccess(t *testing.T) {
	c, _ := newTestCoordinator(t)
	resp := submitAndWait(t, c, &Command{Kind: KindStopAnimation})
	if !resp.Success {
		t.Fatalf("expected success:true even when nothing is running, got %+v", resp)
	}
	if resp.Error != "NotRunning" {
		t.Fatalf("expected informational NotRunning error, got %q", resp.Error)
	}
}

func TestCoordinatorStopAnimationWhileRunningReportsNoError(t *testing.T) {
	c, _ := newTestCoordinator(t)
	submitAndWait(t, c, &Command{Kind: KindShowAnimation, Animation: display.AnimationIdle, FrameDelay: 5 * time.Millisecond})
	resp := submitAndWait(t, c, &Command{Kind: KindStopAnimation})
	if !resp.Success || resp.Error != "" {
		t.Fatalf("expected clean stop, got %+v", resp)
	}
}

func TestCoordinatorHighPriorityPreemptsRunningAnimation(t *testing.T) {
	c, mock := newTestCoordinator(t)

	animCmd := &Command{
		Kind:       KindShowAnimation,
		Animation:  display.AnimationIdle,
		Priority:   PriorityLow,
		FrameDelay: 5 * time.Millisecond,
		Ack:        make(chan Response, 1),
	}
	if err := c.Submit(animCmd); err != nil {
		t.Fatalf("Submit animation: %v", err)
	}
	<-animCmd.Ack
	time.Sleep(20 * time.Millisecond)

	resp := submitAndWait(t, c, &Command{
		Kind:     KindShowSymbol,
		Symbol:   display.SymbolError,
		Priority: PriorityHigh,
		Duration: 10 * time.Millisecond,
	})
	if !resp.Success {
		t.Fatalf("expected high priority symbol to succeed, got %+v", resp)
	}
	if mock.LastFrame() == nil {
		t.Fatalf("expected a frame to have been presented")
	}
}

func TestCoordinatorShutdownStopsWorker(t *testing.T) {
	mock := panel.NewMock(nil, nil)
	cfg := &config.Config{Server: config.Server{QueueCapacity: 4}}
	c := New(cfg, mock, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp := submitAndWait(t, c, &Command{Kind: KindShutdown})
	if !resp.Success {
		t.Fatalf("expected shutdown to succeed, got %+v", resp)
	}

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatalf("worker loop did not exit after Shutdown")
	}
}

func TestCoordinatorClearPresentsBlack(t *testing.T) {
	c, mock := newTestCoordinator(t)
	resp := submitAndWait(t, c, &Command{Kind: KindClear})
	if !resp.Success {
		t.Fatalf("expected clear to succeed, got %+v", resp)
	}
	frame := mock.LastFrame()
	if frame == nil {
		t.Fatalf("expected a frame after Clear")
	}
	if !frame.Equal(display.NewFramebuffer()) {
		t.Fatalf("expected Clear to present an all-black framebuffer")
	}
}

func TestCoordinatorShowLayoutDispatchesSingleView(t *testing.T) {
	c, mock := newTestCoordinator(t)
	resp := submitAndWait(t, c, &Command{
		Kind: KindShowLayout,
		Layout: display.LayoutPayload{
			Layout:  display.LayoutSingleView,
			Project: display.Project{Name: "demo", Percentage: 50},
		},
	})
	if !resp.Success {
		t.Fatalf("expected layout dispatch to succeed, got %+v", resp)
	}
	if mock.PresentCount() == 0 {
		t.Fatalf("expected a frame to be presented for ShowLayout")
	}
}

package coordinator

import (
	"testing"
	"time"

	"ledmanager/internal/display"
	"ledmanager/internal/panel"
)

func TestAnimationEngineStartPresentsFrames(t *testing.T) {
	mock := panel.NewMock(nil, nil)
	engine := NewAnimationEngine(mock, nil)

	engine.Start(display.AnimationIdle, 5*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	engine.Stop()

	if mock.PresentCount() == 0 {
		t.Fatalf("expected at least one frame presented")
	}
}

func TestAnimationEngineStartStopsPreviousAnimation(t *testing.T) {
	mock := panel.NewMock(nil, nil)
	engine := NewAnimationEngine(mock, nil)

	firstDone := make(chan struct{})
	engine.Start(display.AnimationIdle, 5*time.Millisecond, func() { close(firstDone) })
	time.Sleep(10 * time.Millisecond)

	secondDone := make(chan struct{})
	engine.Start(display.AnimationActivity, 5*time.Millisecond, func() { close(secondDone) })

	select {
	case <-firstDone:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("starting a new animation did not stop the previous one")
	}

	engine.Stop()
	select {
	case <-secondDone:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("Stop did not complete the second animation's onComplete")
	}
}

func TestAnimationEngineBootAnimationCompletesNaturally(t *testing.T) {
	mock := panel.NewMock(nil, nil)
	engine := NewAnimationEngine(mock, nil)

	done := make(chan struct{})
	engine.Start(display.AnimationBoot, time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("boot animation never completed on its own")
	}

	if !engine.IsRunning() {
		// expected: finite animation already exited, no running goroutine
	} else {
		t.Fatalf("expected engine to report not running after natural completion")
	}
}

func TestAnimationEngineIsRunning(t *testing.T) {
	mock := panel.NewMock(nil, nil)
	engine := NewAnimationEngine(mock, nil)

	if engine.IsRunning() {
		t.Fatalf("expected IsRunning false before Start")
	}
	engine.Start(display.AnimationIdle, 10*time.Millisecond, nil)
	if !engine.IsRunning() {
		t.Fatalf("expected IsRunning true after Start")
	}
	engine.Stop()
	if engine.IsRunning() {
		t.Fatalf("expected IsRunning false after Stop")
	}
}

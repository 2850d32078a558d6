package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueuePopOrdersByPriorityThenFIFO(t *testing.T) {
	q := NewQueue(0)
	low1 := &Command{Kind: KindShowSymbol, Priority: PriorityLow}
	low2 := &Command{Kind: KindShowSymbol, Priority: PriorityLow}
	high := &Command{Kind: KindShowSymbol, Priority: PriorityHigh}
	medium := &Command{Kind: KindShowSymbol, Priority: PriorityMedium}

	for _, cmd := range []*Command{low1, low2, high, medium} {
		if err := q.Push(cmd); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	ctx := context.Background()
	order := []*Command{}
	for i := 0; i < 4; i++ {
		cmd, err := q.Pop(ctx)
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		order = append(order, cmd)
	}

	if order[0] != high {
		t.Fatalf("expected high priority command first")
	}
	if order[1] != medium {
		t.Fatalf("expected medium priority command second")
	}
	if order[2] != low1 || order[3] != low2 {
		t.Fatalf("expected low-priority commands in submission order")
	}
}

func TestQueueStopAnimationNormalizesToHighPriority(t *testing.T) {
	q := NewQueue(0)
	low := &Command{Kind: KindShowSymbol, Priority: PriorityLow}
	stop := &Command{Kind: KindStopAnimation, Priority: PriorityLow}

	if err := q.Push(low); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := q.Push(stop); err != nil {
		t.Fatalf("Push: %v", err)
	}

	cmd, err := q.Pop(context.Background())
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if cmd != stop {
		t.Fatalf("expected StopAnimation to preempt despite low caller-supplied priority")
	}
}

func TestQueuePushRejectsAtCapacity(t *testing.T) {
	q := NewQueue(1)
	if err := q.Push(&Command{Kind: KindShowSymbol}); err != nil {
		t.Fatalf("first push: %v", err)
	}
	err := q.Push(&Command{Kind: KindShowSymbol})
	if err == nil {
		t.Fatalf("expected queue full error")
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := NewQueue(0)
	resultCh := make(chan *Command, 1)

	go func() {
		cmd, err := q.Pop(context.Background())
		if err != nil {
			return
		}
		resultCh <- cmd
	}()

	select {
	case <-resultCh:
		t.Fatalf("Pop returned before any command was pushed")
	case <-time.After(50 * time.Millisecond):
	}

	cmd := &Command{Kind: KindClear}
	if err := q.Push(cmd); err != nil {
		t.Fatalf("Push: %v", err)
	}

	select {
	case got := <-resultCh:
		if got != cmd {
			t.Fatalf("Pop returned wrong command")
		}
	case <-time.After(time.Second):
		t.Fatalf("Pop never returned after Push")
	}
}

func TestQueuePopUnblocksOnContextCancel(t *testing.T) {
	q := NewQueue(0)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := q.Pop(ctx)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Pop did not unblock on context cancellation")
	}
}

func TestQueuePopUnblocksOnClose(t *testing.T) {
	q := NewQueue(0)
	errCh := make(chan error, 1)
	go func() {
		_, err := q.Pop(context.Background())
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatalf("expected error after Close")
		}
	case <-time.After(time.Second):
		t.Fatalf("Pop did not unblock on Close")
	}
}

func TestQueueLenAndPeekPriority(t *testing.T) {
	q := NewQueue(0)
	if _, ok := q.PeekPriority(); ok {
		t.Fatalf("expected no priority on empty queue")
	}
	_ = q.Push(&Command{Kind: KindShowSymbol, Priority: PriorityMedium})
	if l := q.Len(); l != 1 {
		t.Fatalf("Len = %d, want 1", l)
	}
	priority, ok := q.PeekPriority()
	if !ok || priority != PriorityMedium {
		t.Fatalf("PeekPriority = %v, %v, want Medium, true", priority, ok)
	}
}

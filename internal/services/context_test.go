package services_test

import (
	"context"
	"testing"

	"ledmanager/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithClientID(ctx, "conn-1")
	ctx = services.WithCommand(ctx, "show_symbol")
	ctx = services.WithCorrelationID(ctx, "req-123")

	if id, ok := services.ClientIDFromContext(ctx); !ok || id != "conn-1" {
		t.Fatalf("unexpected client id: %v %v", id, ok)
	}
	if cmd, ok := services.CommandFromContext(ctx); !ok || cmd != "show_symbol" {
		t.Fatalf("unexpected command: %v %v", cmd, ok)
	}
	if rid, ok := services.CorrelationIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected correlation id: %v %v", rid, ok)
	}
}

func TestCommandBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCommand(ctx, "")
	if _, ok := services.CommandFromContext(ctx); ok {
		t.Fatal("expected no command value")
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledmanager/internal/config"
	"ledmanager/internal/daemon"
	"ledmanager/internal/logging"
	"ledmanager/internal/panel"
)

type cliTestEnv struct {
	cfg        *config.Config
	daemon     *daemon.Daemon
	socketPath string
	cancel     context.CancelFunc
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.LogDir = filepath.Join(base, "logs")
	cfgVal.Server.SocketPath = filepath.Join(base, "led-manager.sock")
	cfg := &cfgVal
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	mock := panel.NewMock(nil, nil)
	d, err := daemon.New(cfg, mock, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := d.Start(ctx); err != nil {
		cancel()
		t.Fatalf("daemon.Start: %v", err)
	}

	env := &cliTestEnv{cfg: cfg, daemon: d, socketPath: cfg.SocketPath(), cancel: cancel}
	t.Cleanup(func() {
		d.Stop()
		cancel()
	})
	return env
}

func (env *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	full := append([]string{"--socket", env.socketPath}, args...)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCLIClear(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := env.run(t, "clear")
	if err != nil {
		t.Fatalf("clear: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "success: yes") {
		t.Fatalf("expected success in output, got: %s", out)
	}
}

func TestCLISymbolRejectsUnknownName(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := env.run(t, "show", "symbol", "not-a-real-symbol")
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestCLIProgress(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := env.run(t, "show", "progress", "50")
	if err != nil {
		t.Fatalf("progress: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "success: yes") {
		t.Fatalf("expected success in output, got: %s", out)
	}
}

func TestCLILayout(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := t.TempDir()
	payloadPath := filepath.Join(dir, "layout.json")
	payload := `{"layout":"SingleView","project":{"name":"demo","percentage":42}}`
	if err := os.WriteFile(payloadPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	out, err := env.run(t, "show", "layout", payloadPath)
	if err != nil {
		t.Fatalf("layout: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "success: yes") {
		t.Fatalf("expected success in output, got: %s", out)
	}
}

func TestCLIStopAnimationWhenIdleIsInformational(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := env.run(t, "stop")
	if err != nil {
		t.Fatalf("stop: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "NotRunning") {
		t.Fatalf("expected NotRunning note in output, got: %s", out)
	}
}

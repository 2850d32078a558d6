// Command ledmanagerd is the LED display coordinator daemon: it owns the
// HUB75E panel (or its mock), the priority command queue, the animation
// engine, and the Unix-socket IPC server, and arbitrates access to all of
// them on behalf of concurrent producers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ledmanager/internal/config"
	"ledmanager/internal/daemon"
	"ledmanager/internal/logging"
	"ledmanager/internal/panel"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on clean shutdown (Shutdown command
// or SIGTERM/SIGINT), 1 on unrecoverable startup failure (socket bind or
// hardware init outside mock mode).
func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, resolvedPath, existed, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledmanagerd: load config: %v\n", err)
		return 1
	}
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "ledmanagerd: %v\n", err)
		return 1
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledmanagerd: init logger: %v\n", err)
		return 1
	}

	if existed {
		logger.Info("loaded configuration", logging.String("path", resolvedPath))
	} else {
		logger.Info("no configuration file found; using defaults", logging.String("checked_path", resolvedPath))
	}

	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays,
		logging.RetentionTarget{Dir: cfg.LogDir, Pattern: "led-manager*.log"},
	)

	driver, err := panel.New(cfg.Panel, cfg.MockMode, logger, os.Stdout)
	if err != nil {
		logger.Error("initialize panel driver", logging.Error(err))
		return 1
	}

	d, err := daemon.New(cfg, driver, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		return 1
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("start daemon", logging.Error(err))
		return 1
	}

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case <-d.Done():
		logger.Info("coordinator processed a shutdown command")
	}

	d.Stop()
	return 0
}

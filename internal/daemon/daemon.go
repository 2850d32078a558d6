package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"
	"log/slog"

	"ledmanager/internal/config"
	"ledmanager/internal/coordinator"
	"ledmanager/internal/ipc"
	"ledmanager/internal/logging"
	"ledmanager/internal/panel"
)

// Daemon ties the Coordinator worker and the IPC server into a single
// lifecycle and enforces single-instance execution via an flock lock file,
// the same kind of lock file a long-running daemon uses to guard a resource
// that only one process may own at a time.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	driver panel.Driver
	coord  *coordinator.Coordinator
	server *ipc.Server

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
}

// Status is a point-in-time snapshot of daemon runtime state.
type Status struct {
	Running    bool
	SocketPath string
	LockPath   string
	MockMode   bool
}

// New constructs a Daemon. The driver is constructed by the caller
// (cmd/ledmanagerd) so tests can substitute panel.NewMock without this package importing hardware-specific concerns
// beyond the panel.Driver interface.
func New(cfg *config.Config, driver panel.Driver, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || driver == nil {
		return nil, errors.New("daemon requires config and a panel driver")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := filepath.Join(cfg.LogDir, "ledmanagerd.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		driver:   driver,
		coord:    coordinator.New(cfg, driver, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the single-instance lock, starts the coordinator worker,
// and binds and serves the IPC socket. On any failure after acquiring the
// lock, Start unwinds what it already started.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another ledmanagerd instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.coord.Start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("start coordinator: %w", err)
	}

	server, err := ipc.NewServer(runCtx, d.cfg.SocketPath(), os.FileMode(d.cfg.Server.SocketPerm), d.coord, d.logger)
	if err != nil {
		d.coord.Stop()
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("start IPC server: %w", err)
	}
	server.Serve()

	d.server = server
	d.cancel = cancel
	d.running.Store(true)
	d.logger.Info("ledmanagerd started",
		logging.String("socket", d.cfg.SocketPath()),
		logging.String("lock", d.lockPath),
		logging.Bool("mock_mode", d.cfg.MockMode),
	)
	return nil
}

// Stop stops the IPC server and coordinator worker and releases the lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.server != nil {
		d.server.Close()
		d.server = nil
	}
	d.coord.Stop()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("ledmanagerd stopped")
}

// Close is an alias for Stop kept for symmetry with io.Closer-shaped
// callers (cmd/ledmanagerd's defer chain).
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Done is closed once the coordinator worker has processed a Shutdown
// command and exited its loop.
func (d *Daemon) Done() <-chan struct{} {
	return d.coord.Done()
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	return Status{
		Running:    d.running.Load(),
		SocketPath: d.cfg.SocketPath(),
		LockPath:   d.lockPath,
		MockMode:   d.cfg.MockMode,
	}
}

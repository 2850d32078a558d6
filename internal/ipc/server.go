package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"ledmanager/internal/coordinator"
	"ledmanager/internal/logging"
	"ledmanager/internal/services"
)

// maxRequestLine bounds a single request line so a misbehaving client can't
// exhaust memory by streaming an unterminated line.
const maxRequestLine = 1 << 20

// Server accepts connections on a Unix domain socket and decodes
// newline-delimited JSON Commands into the coordinator queue. Accept-loop
// and per-connection goroutine shape, with the codec done via bufio.Scanner
// and json.Encoder in place of net/rpc/jsonrpc since the wire protocol here is
// a flat request/response pair per line, not an RPC method call.
type Server struct {
	path   string
	perm   os.FileMode
	coord  *coordinator.Coordinator
	logger *slog.Logger

	listener net.Listener

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// NewServer binds the Unix socket at path. perm is applied to the socket
// file so unprivileged producers can connect.
func NewServer(ctx context.Context, path string, perm os.FileMode, coord *coordinator.Coordinator, logger *slog.Logger) (*Server, error) {
	if coord == nil {
		return nil, errors.New("ipc server requires a coordinator")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, services.Wrap(services.ErrSocketBindFailed, "ipc", "NewServer", "remove existing socket", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, services.Wrap(services.ErrSocketBindFailed, "ipc", "NewServer", "listen on socket", err)
	}
	if perm != 0 {
		if err := os.Chmod(path, perm); err != nil {
			listener.Close()
			return nil, services.Wrap(services.ErrSocketBindFailed, "ipc", "NewServer", "chmod socket", err)
		}
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:     path,
		perm:     perm,
		coord:    coord,
		logger:   logger,
		listener: listener,
		ctx:      serverCtx,
		cancel:   cancel,
	}, nil
}

// Serve starts accepting connections until the context is canceled or the
// coordinator dispatches a Shutdown command. It returns immediately; the
// accept loop runs in a background goroutine.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-s.coord.Done():
			s.cancel()
			s.listener.Close()
		case <-s.ctx.Done():
		}
	}()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed",
					logging.Error(err),
					logging.String(logging.FieldEventType, "ipc_accept_failed"),
				)
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.handleConn(c)
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		if s.listener != nil {
			_ = s.listener.Close()
		}
	})
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldEventType, "ipc_socket_cleanup_failed"),
		)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	clientID := uuid.NewString()
	logger := s.logger.With(logging.String(logging.FieldClientID, clientID))

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 4096), maxRequestLine)
	encoder := json.NewEncoder(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			logger.Warn("malformed request line; closing connection",
				logging.Error(err),
				logging.String(logging.FieldEventType, "ipc_malformed_request"),
			)
			_ = encoder.Encode(errorResponse("malformed JSON request", "InvalidParams"))
			return
		}

		resp := s.process(req, clientID, logger)
		if err := encoder.Encode(resp); err != nil {
			logger.Debug("failed to write response; connection likely closed",
				logging.Error(err),
			)
			return
		}
	}
}

func (s *Server) process(req Request, clientID string, logger *slog.Logger) Response {
	cmd, err := decodeCommand(req, clientID)
	if err != nil {
		logger.Debug("rejecting request", logging.Error(err), logging.String(logging.FieldCommand, req.Command))
		return errorResponse(err.Error(), services.ErrorCode(err))
	}

	cmd.Ack = make(chan coordinator.Response, 1)
	if err := s.coord.Submit(cmd); err != nil {
		logger.Debug("submit rejected", logging.Error(err), logging.String(logging.FieldCommand, req.Command))
		return errorResponse(err.Error(), services.ErrorCode(err))
	}

	resp, ok := <-cmd.Ack
	if !ok {
		return errorResponse("coordinator closed without acknowledging command", "InvalidCommand")
	}
	return fromCoordinatorResponse(resp)
}

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eternalApril/respkit/internal/resp"
)

const shutdownTimeout = 5 * time.Second

// Server accepts connections and runs one command loop per connection.
// Commands on a single connection are processed strictly in arrival
// order with at most one in flight; distinct connections run
// concurrently.
type Server struct {
	addr    string
	handler Handler
	auth    Authenticator // optional; nil skips the Authenticating state
	log     *zap.Logger
	ln      net.Listener
	wg      sync.WaitGroup
}

// New creates a server dispatching to the given handler. auth may be nil
func New(addr string, handler Handler, auth Authenticator, log *zap.Logger) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		auth:    auth,
		log:     log,
	}
}

// Listen binds the listening socket. Separate from Serve so callers can
// learn the bound address before accepting (tests use port 0)
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr returns the bound listen address
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Serve accepts connections until ctx is canceled, then closes the
// listener and waits for in-flight connections to drain
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		s.ln.Close() //nolint:errcheck
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Error("accept error", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(conn)
		}()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all connections closed gracefully")
	case <-time.After(shutdownTimeout):
		s.log.Warn("shutdown timed out, forcing exit", zap.Duration("timeout", shutdownTimeout))
	}

	return nil
}

// serveConn handles a connection for a single client
func (s *Server) serveConn(conn net.Conn) {
	if s.log.Core().Enabled(zap.DebugLevel) {
		s.log.Debug("client connected", zap.String("addr", conn.RemoteAddr().String()))
	}

	peer := NewPeer(conn)
	defer func() {
		peer.Close() //nolint:errcheck
		if s.log.Core().Enabled(zap.DebugLevel) {
			s.log.Debug("client disconnected", zap.String("addr", conn.RemoteAddr().String()))
		}
	}()

	if s.auth != nil {
		peer.state = stateAuthenticating
	} else {
		peer.state = stateReady
	}

	// One arena per connection, reclaimed between commands: command and
	// reply trees never outlive the iteration that built them.
	var arena resp.Arena

	for {
		arena.Reset()

		cmd, err := peer.ReadCommand(&arena)
		if err != nil {
			// Wire corruption or transport loss; data past this
			// point cannot be trusted, so the connection goes down.
			if err != io.EOF {
				s.log.Warn("read command failed", zap.Error(err))
			}
			return
		}

		var reply resp.Value
		if peer.state == stateAuthenticating {
			var verdict AuthVerdict
			reply, verdict = s.auth.CheckAuth(cmd, &arena)

			switch verdict {
			case AuthAccept:
				peer.state = stateReady
			case AuthClose:
				if reply.Type != 0 {
					peer.Send(reply) //nolint:errcheck
					peer.Flush()     //nolint:errcheck
				}
				return
			}
		} else {
			reply = s.handler.Handle(cmd, &arena)
		}

		if err = peer.Send(reply); err != nil {
			s.log.Error("error writing response", zap.Error(err))
			return
		}

		// Flush once the pipelined burst is drained
		if peer.InputBuffered() == 0 {
			if err := peer.Flush(); err != nil {
				return
			}
		}
	}
}

// Package server accepts connections from a listener and drives each one
// through a single request/response cycle on a fixed-size worker pool.
package server

import (
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"tinyhttp/http"
)

// HandleFunc resolves one parsed request to a response. Returning an error is
// a route-level failure: the connection is closed with nothing written.
type HandleFunc func(req *http.Request) (*http.Response, error)

// Server owns the worker pool and the accept loop. Every accepted connection
// becomes exactly one task (read, parse, route, compress, serialize, write,
// close) and one worker owns it for its entire life. There are no deadlines
// and no cancellation, so a stalled client holds its worker slot until it
// goes away.
type Server struct {
	l      net.Listener
	handle HandleFunc

	parser *http.Parser
	logger *slog.Logger
	clock  clock.Clock
	opts   Options

	tasks  chan task
	wg     sync.WaitGroup
	closed atomic.Bool
	nextID atomic.Uint64
}

type task struct {
	conn net.Conn
	id   uint64
}

func New(
	l net.Listener,
	logger *slog.Logger,
	clk clock.Clock,
	handle HandleFunc,
	opts Options,
) *Server {
	opts.withDefaults()

	return &Server{
		l:      l,
		handle: handle,
		parser: http.NewParser(logger),
		logger: logger,
		clock:  clk,
		opts:   opts,
		tasks:  make(chan task),
	}
}

// Start launches the pool workers and the accept loop and returns.
func (s *Server) Start() {
	for i := 0; i < s.opts.PoolSize; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	s.wg.Add(1)
	go s.acceptLoop()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	defer close(s.tasks)

	for {
		conn, err := s.l.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			s.logger.Error("error while attempting to establish a connection", "error", err)
			continue
		}

		// Connection ids are diagnostic only; nothing keys off them.
		// The send blocks while every worker is busy, so intake stalls
		// instead of queueing unbounded work.
		s.tasks <- task{conn: conn, id: s.nextID.Add(1)}
	}
}

func (s *Server) worker() {
	defer s.wg.Done()

	for t := range s.tasks {
		if err := s.serveConn(t.conn, t.id); err != nil {
			s.logger.Error("error while handling connection", "conn", t.id, "error", err)
		}
	}
}

// Close stops accepting, lets in-flight cycles finish, and waits for the
// pool to drain.
func (s *Server) Close() error {
	s.closed.Store(true)
	err := s.l.Close()
	s.wg.Wait()
	return errors.Wrap(err, "closing listener")
}

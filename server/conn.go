package server

import (
	"net"

	"github.com/pkg/errors"

	"tinyhttp/http"
)

// serveConn runs the whole lifecycle of one connection: a single blocking
// read into a fresh buffer, parse, route, optional gzip, serialize, close.
// A short read is treated as the entire request; there is no retry of
// partial reads or writes.
func (s *Server) serveConn(conn net.Conn, id uint64) error {
	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Error("error when closing connection", "conn", id, "error", err)
		}
	}()

	s.logger.Info("accepted connection", "conn", id)
	start := s.clock.Now()

	buf := make([]byte, s.opts.ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return errors.Wrap(err, "failed to read from client")
	}

	s.logger.Debug("read request", "conn", id, "bytes", n)

	req, err := s.parser.Parse(buf[:n])
	if err != nil {
		return errors.Wrap(err, "failed to parse request")
	}

	res, err := s.handle(req)
	if err != nil {
		// Route-level failure. Nothing has been written yet and nothing
		// will be: the close below is all the client gets.
		return errors.Wrap(err, "failed to handle request")
	}

	if http.AcceptsGzip(req.Headers) {
		if err := http.Compress(res); err != nil {
			return errors.Wrap(err, "failed to compress response")
		}
	}

	if err := http.NewResponseEncoder(conn).Encode(res); err != nil {
		return errors.Wrap(err, "failed to write to client")
	}

	s.logger.Debug("cycle finished", "conn", id, "duration", s.clock.Since(start))
	s.logger.Info("closing connection", "conn", id)
	return nil
}

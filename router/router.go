// Package router maps parsed requests onto the server's fixed route table.
package router

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"tinyhttp/filestore"
	"tinyhttp/http"
)

// Router resolves a request to a response descriptor. It is pure apart from
// at most one file gateway call for the /files routes.
type Router struct {
	files  *filestore.Store
	logger *slog.Logger
}

func New(files *filestore.Store, logger *slog.Logger) *Router {
	return &Router{files: files, logger: logger}
}

// Route never returns a nil response with a nil error. A returned error is a
// route-level failure: the dispatcher closes the connection without writing
// a byte, there is no error status on the wire.
func (rt *Router) Route(req *http.Request) (*http.Response, error) {
	url := req.Line.URL

	switch {
	case url == "/":
		return http.Empty(), nil

	case url == "/user-agent":
		agent, ok := http.UserAgent(req.Headers)
		if !ok {
			return nil, errors.New("request does not have a User-Agent header")
		}
		return http.Text(agent), nil
	}

	if suffix, ok := strings.CutPrefix(url, "/echo/"); ok {
		return http.Text(suffix), nil
	}

	if name, ok := strings.CutPrefix(url, "/files/"); ok {
		return rt.routeFile(req, name)
	}

	return http.NotFound(), nil
}

func (rt *Router) routeFile(req *http.Request, name string) (*http.Response, error) {
	if req.Line.Method == http.MethodPost {
		if req.Body == nil {
			return nil, errors.New("POST request to /files must have a body")
		}

		err := rt.files.Write(name, req.Body)
		switch {
		case errors.Is(err, filestore.ErrInvalidName):
			// A name that won't stay inside the store's directory is treated
			// as a resource that doesn't exist, same as the read side.
			return http.NotFound(), nil
		case err != nil:
			return nil, errors.Wrap(err, "writing file to disk")
		}

		return http.Created(), nil
	}

	data, err := rt.files.Read(name)
	if err != nil {
		rt.logger.Warn("failed to read file", "name", name, "error", err)
		return http.NotFound(), nil
	}

	return http.Binary(data), nil
}

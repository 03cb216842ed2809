package http

import (
	"strconv"

	"github.com/pkg/errors"
)

// Header is one recognized header, modeled as a closed tagged variant.
// Each variant knows its own wire form; inbound parsing goes through
// parseRegistry, so supporting a new header is one type plus one table row.
type Header interface {
	// Text returns the header's wire form without the trailing CRLF.
	Text() string

	header()
}

type ContentTypeHeader struct{ Type ContentType }

type ContentLengthHeader struct{ Length int }

type UserAgentHeader struct{ Agent string }

// AcceptEncodingHeader carries no value. gzip is the only coding the server
// understands, so accepting the header at all means gzip was negotiated.
type AcceptEncodingHeader struct{}

// ContentEncodingHeader likewise always means gzip.
type ContentEncodingHeader struct{}

func (h ContentTypeHeader) Text() string   { return "Content-Type: " + h.Type.String() }
func (h ContentLengthHeader) Text() string { return "Content-Length: " + strconv.Itoa(h.Length) }
func (h UserAgentHeader) Text() string     { return "User-Agent: " + h.Agent }
func (AcceptEncodingHeader) Text() string  { return "Accept-Encoding: gzip" }
func (ContentEncodingHeader) Text() string { return "Content-Encoding: gzip" }

func (ContentTypeHeader) header()     {}
func (ContentLengthHeader) header()   {}
func (UserAgentHeader) header()       {}
func (AcceptEncodingHeader) header()  {}
func (ContentEncodingHeader) header() {}

// parseRegistry maps lowercased inbound field names to their variant parsers.
// Names outside the table are dropped by the parser, not rejected.
var parseRegistry = map[string]func(value string) (Header, error){
	"user-agent": func(value string) (Header, error) {
		return UserAgentHeader{Agent: value}, nil
	},
	"accept-encoding": func(value string) (Header, error) {
		if value != "gzip" {
			return nil, errors.Errorf("unknown encoding %q, only gzip is supported", value)
		}
		return AcceptEncodingHeader{}, nil
	},
}

// UserAgent returns the value of the first User-Agent header, if any.
func UserAgent(headers []Header) (string, bool) {
	for _, h := range headers {
		if ua, ok := h.(UserAgentHeader); ok {
			return ua.Agent, true
		}
	}
	return "", false
}

// AcceptsGzip reports whether the request negotiated gzip.
func AcceptsGzip(headers []Header) bool {
	for _, h := range headers {
		if _, ok := h.(AcceptEncodingHeader); ok {
			return true
		}
	}
	return false
}

package http

import (
	"strings"

	"github.com/pkg/errors"
)

// Method is the closed set of request methods the server understands.
type Method uint8

const (
	MethodGet Method = iota
	MethodPost
)

// ParseMethod matches tok case-insensitively against the supported methods.
// Any other token fails the whole request, not just the line.
func ParseMethod(tok string) (Method, error) {
	switch strings.ToLower(tok) {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	}
	return 0, errors.Errorf("%q is not a supported HTTP method", tok)
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	}
	return "UNKNOWN"
}

// ContentType is the closed set of media types the server emits.
type ContentType uint8

const (
	TextPlain ContentType = iota
	ApplicationOctetStream
)

func (ct ContentType) String() string {
	switch ct {
	case ApplicationOctetStream:
		return "application/octet-stream"
	default:
		return "text/plain"
	}
}

type RequestLine struct {
	Method Method

	// URL is taken verbatim from the request line.
	// No percent-decoding, no query string handling.
	URL string
}

type Request struct {
	Line    RequestLine
	Headers []Header

	// Body is nil when the request carried none.
	Body []byte
}

// Status is a response status code. Only codes present in statusText can be
// serialized; anything else is a programming error surfaced by the encoder.
type Status uint

const (
	StatusOK       Status = 200
	StatusCreated  Status = 201
	StatusNotFound Status = 404
)

var statusText = map[Status]string{
	StatusOK:       "200 OK",
	StatusCreated:  "201 Created",
	StatusNotFound: "404 Not Found",
}

type Response struct {
	Status  Status
	Headers []Header
	Body    []byte
}

// Empty is the bare 200 used for "/".
func Empty() *Response {
	return &Response{Status: StatusOK}
}

func NotFound() *Response {
	return &Response{Status: StatusNotFound}
}

func Created() *Response {
	return &Response{Status: StatusCreated}
}

// Text builds a 200 text/plain response carrying s.
func Text(s string) *Response {
	return &Response{
		Status: StatusOK,
		Headers: []Header{
			ContentTypeHeader{Type: TextPlain},
			ContentLengthHeader{Length: len(s)},
		},
		Body: []byte(s),
	}
}

// Binary builds a 200 application/octet-stream response carrying data.
func Binary(data []byte) *Response {
	return &Response{
		Status: StatusOK,
		Headers: []Header{
			ContentTypeHeader{Type: ApplicationOctetStream},
			ContentLengthHeader{Length: len(data)},
		},
		Body: data,
	}
}

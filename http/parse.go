package http

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

var (
	crlf       = []byte("\r\n")
	headersEnd = []byte("\r\n\r\n")
)

var (
	ErrMissingRequestLine   = errors.New("request has no request line")
	ErrMalformedRequestLine = errors.New("request line is malformed")
)

// Parser turns one raw request buffer into a [Request]. It performs no I/O;
// the logger only records headers that were dropped on the floor.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse parses raw as a whole request: request line, headers until the first
// empty line, then the remaining bytes verbatim as the body.
//
// A bad request line fails the entire request. A bad header line only loses
// that header: it is logged and skipped, matching the closed-whitelist model
// where unknown names are expected traffic, not errors.
func (p *Parser) Parse(raw []byte) (*Request, error) {
	head := raw
	var body []byte
	if before, after, found := bytes.Cut(raw, headersEnd); found {
		head = before
		if len(after) > 0 {
			body = after
		}
	}

	lines := strings.Split(string(head), string(crlf))

	line, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, errors.Wrap(err, "parsing request line")
	}

	headers := make([]Header, 0, len(lines)-1)
	for _, fieldLine := range lines[1:] {
		if fieldLine == "" {
			// Only possible as a trailing artifact of the split.
			continue
		}

		h, err := parseField(fieldLine)
		if err != nil {
			p.logger.Warn("skipping unparsable header", "error", err)
			continue
		}
		headers = append(headers, h)
	}

	return &Request{Line: line, Headers: headers, Body: body}, nil
}

// parseRequestLine parses "METHOD SP URL SP VERSION". The version token is
// tolerated but ignored; the URL is kept verbatim.
func parseRequestLine(line string) (RequestLine, error) {
	if line == "" {
		return RequestLine{}, ErrMissingRequestLine
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return RequestLine{}, ErrMalformedRequestLine
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return RequestLine{}, err
	}

	if len(parts) < 2 {
		return RequestLine{}, errors.Wrap(ErrMalformedRequestLine, "missing URL")
	}

	return RequestLine{Method: method, URL: parts[1]}, nil
}

// parseField parses a single "Name: Value" line against the header registry.
func parseField(fieldLine string) (Header, error) {
	name, value, found := strings.Cut(fieldLine, ":")
	if !found {
		return nil, errors.Errorf("no colon in field line %q", fieldLine)
	}

	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	parse, ok := parseRegistry[name]
	if !ok {
		return nil, errors.Errorf("unknown header %q", name)
	}

	return parse(value)
}

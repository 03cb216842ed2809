package http

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ResponseEncoder writes responses in their wire form. Header order is
// preserved exactly as stored on the response.
type ResponseEncoder struct {
	bw *bufio.Writer
}

func NewResponseEncoder(w io.Writer) *ResponseEncoder {
	return &ResponseEncoder{bw: bufio.NewWriter(w)}
}

func (re *ResponseEncoder) Encode(res *Response) error {
	text, ok := statusText[res.Status]
	if !ok {
		// The router can only produce registered statuses, so reaching this
		// is a contract violation, reported rather than panicking.
		return errors.Errorf("status code %d has no wire form", res.Status)
	}

	if err := re.writeLine([]byte("HTTP/1.1 " + text)); err != nil {
		return errors.Wrap(err, "writing status line")
	}

	for _, h := range res.Headers {
		if err := re.writeLine([]byte(h.Text())); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}

	// An empty line terminates the header section.
	if err := re.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing header terminator")
	}

	if res.Body != nil {
		if _, err := re.bw.Write(res.Body); err != nil {
			return errors.Wrap(err, "writing body")
		}
	}

	return errors.Wrap(re.bw.Flush(), "flushing response")
}

func (re *ResponseEncoder) writeLine(line []byte) error {
	if _, err := re.bw.Write(line); err != nil {
		return err
	}
	_, err := re.bw.Write(crlf)
	return err
}

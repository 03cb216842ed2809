package http

import (
	"bytes"
	"compress/gzip"

	"github.com/pkg/errors"
)

// Compress applies the negotiated gzip coding to res in place: it appends a
// Content-Encoding header, replaces the body with its gzipped form, and
// rewrites Content-Length to match. The whole body is buffered; nothing here
// streams.
//
// Calling it on a response that already carries a coding is an error, as is a
// response that has a body but no Content-Length to fix up.
func Compress(res *Response) error {
	for _, h := range res.Headers {
		if _, ok := h.(ContentEncodingHeader); ok {
			return errors.New("response already has a content coding applied")
		}
	}

	res.Headers = append(res.Headers, ContentEncodingHeader{})

	if res.Body == nil {
		return nil
	}

	buf := bytes.NewBuffer(nil)
	gz := gzip.NewWriter(buf)
	if _, err := gz.Write(res.Body); err != nil {
		return errors.Wrap(err, "compressing body")
	}
	if err := gz.Close(); err != nil {
		return errors.Wrap(err, "finishing gzip stream")
	}
	res.Body = buf.Bytes()

	for i, h := range res.Headers {
		if _, ok := h.(ContentLengthHeader); ok {
			res.Headers[i] = ContentLengthHeader{Length: len(res.Body)}
			return nil
		}
	}

	return errors.New("response with a body is missing its Content-Length header")
}

package http

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type HeaderTestSuite struct {
	suite.Suite
}

func TestHeaderTestSuite(t *testing.T) {
	suite.Run(t, new(HeaderTestSuite))
}

func (s *HeaderTestSuite) TestText() {
	testcases := []struct {
		desc     string
		header   Header
		expected string
	}{
		{
			desc:     "content type text",
			header:   ContentTypeHeader{Type: TextPlain},
			expected: "Content-Type: text/plain",
		},
		{
			desc:     "content type octet stream",
			header:   ContentTypeHeader{Type: ApplicationOctetStream},
			expected: "Content-Type: application/octet-stream",
		},
		{
			desc:     "content length",
			header:   ContentLengthHeader{Length: 42},
			expected: "Content-Length: 42",
		},
		{
			desc:     "user agent",
			header:   UserAgentHeader{Agent: "curl/8.5.0"},
			expected: "User-Agent: curl/8.5.0",
		},
		{
			desc:     "accept encoding",
			header:   AcceptEncodingHeader{},
			expected: "Accept-Encoding: gzip",
		},
		{
			desc:     "content encoding",
			header:   ContentEncodingHeader{},
			expected: "Content-Encoding: gzip",
		},
	}
	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			s.Equal(tc.expected, tc.header.Text())
		})
	}
}

func (s *HeaderTestSuite) TestUserAgent() {
	agent, ok := UserAgent([]Header{
		AcceptEncodingHeader{},
		UserAgentHeader{Agent: "first"},
		UserAgentHeader{Agent: "second"},
	})
	s.True(ok)
	s.Equal("first", agent)

	_, ok = UserAgent([]Header{AcceptEncodingHeader{}})
	s.False(ok)

	_, ok = UserAgent(nil)
	s.False(ok)
}

func (s *HeaderTestSuite) TestAcceptsGzip() {
	s.True(AcceptsGzip([]Header{UserAgentHeader{Agent: "x"}, AcceptEncodingHeader{}}))
	s.False(AcceptsGzip([]Header{UserAgentHeader{Agent: "x"}}))
	s.False(AcceptsGzip(nil))
}

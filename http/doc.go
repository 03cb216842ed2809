// Package http implements the subset of HTTP/1.1 this server speaks:
// a closed set of methods and headers, one message per connection.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http

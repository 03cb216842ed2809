package server

// A big pool of cheap workers and one page-sized read per connection.
const (
	DefaultPoolSize       = 500
	DefaultReadBufferSize = 4096
)

// Options configure a Server. The zero value picks the defaults.
type Options struct {
	// PoolSize is the number of pool workers, which is also the number of
	// connections being served at once.
	PoolSize int

	// ReadBufferSize bounds the single read a connection gets. A request
	// larger than this is truncated at the buffer edge, not rejected.
	ReadBufferSize int
}

func (o *Options) withDefaults() {
	if o.PoolSize <= 0 {
		o.PoolSize = DefaultPoolSize
	}
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = DefaultReadBufferSize
	}
}

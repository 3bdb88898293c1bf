package builder

import "time"

// Option configures a Server during construction. This is the functional
// options sibling of the fluent builder: same validation, different surface.
type Option func(*Server)

// New constructs a validated Server from defaults plus options.
func New(opts ...Option) (*Server, error) {
	srv := Server{
		host:         DefaultHost,
		port:         DefaultPort,
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
		maxConns:     DefaultMaxConns,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&srv)
		}
	}
	if err := validate(&srv); err != nil {
		return nil, err
	}
	return &srv, nil
}

// WithHost sets the listen host.
func WithHost(host string) Option {
	return func(s *Server) { s.host = host }
}

// WithPort sets the listen port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithReadTimeout sets the request read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.readTimeout = d }
}

// WithWriteTimeout sets the response write timeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) { s.writeTimeout = d }
}

// WithMaxConns caps concurrent connections.
func WithMaxConns(n int) Option {
	return func(s *Server) { s.maxConns = n }
}

// WithTLS enables TLS with the given certificate and key files.
func WithTLS(certFile, keyFile string) Option {
	return func(s *Server) {
		s.tlsCert = certFile
		s.tlsKey = keyFile
	}
}

package builder

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Server is an immutable, validated server configuration. Instances are only
// obtainable through ServerBuilder.Build or New, so a Server in hand is
// always a valid one.
type Server struct {
	host         string
	port         int
	readTimeout  time.Duration
	writeTimeout time.Duration
	maxConns     int
	tlsCert      string
	tlsKey       string
}

func (s *Server) Host() string                { return s.host }
func (s *Server) Port() int                   { return s.port }
func (s *Server) ReadTimeout() time.Duration  { return s.readTimeout }
func (s *Server) WriteTimeout() time.Duration { return s.writeTimeout }
func (s *Server) MaxConns() int               { return s.maxConns }
func (s *Server) TLSEnabled() bool            { return s.tlsCert != "" }

// TLSFiles returns the certificate and key paths. Both are empty when TLS is
// disabled.
func (s *Server) TLSFiles() (cert, key string) { return s.tlsCert, s.tlsKey }

// Addr returns the host:port listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Default construction values.
const (
	DefaultHost         = "localhost"
	DefaultPort         = 8080
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultMaxConns     = 1024
)

// ServerBuilder accumulates configuration through chained setters. Setters
// never fail; all validation happens in Build so cross-field rules can be
// checked against the complete configuration.
type ServerBuilder struct {
	srv Server
}

// NewServer creates a builder preloaded with defaults.
func NewServer() *ServerBuilder {
	return &ServerBuilder{
		srv: Server{
			host:         DefaultHost,
			port:         DefaultPort,
			readTimeout:  DefaultReadTimeout,
			writeTimeout: DefaultWriteTimeout,
			maxConns:     DefaultMaxConns,
		},
	}
}

// Host sets the listen host.
func (b *ServerBuilder) Host(host string) *ServerBuilder {
	b.srv.host = host
	return b
}

// Port sets the listen port.
func (b *ServerBuilder) Port(port int) *ServerBuilder {
	b.srv.port = port
	return b
}

// ReadTimeout sets the maximum duration for reading a request.
func (b *ServerBuilder) ReadTimeout(d time.Duration) *ServerBuilder {
	b.srv.readTimeout = d
	return b
}

// WriteTimeout sets the maximum duration for writing a response.
func (b *ServerBuilder) WriteTimeout(d time.Duration) *ServerBuilder {
	b.srv.writeTimeout = d
	return b
}

// MaxConns caps concurrent connections.
func (b *ServerBuilder) MaxConns(n int) *ServerBuilder {
	b.srv.maxConns = n
	return b
}

// TLS enables TLS with the given certificate and key files. Both must be
// provided; Build rejects a certificate without its key and vice versa.
func (b *ServerBuilder) TLS(certFile, keyFile string) *ServerBuilder {
	b.srv.tlsCert = certFile
	b.srv.tlsKey = keyFile
	return b
}

// Build validates the accumulated configuration and returns the immutable
// Server. All field failures are reported together, joined under
// ErrInvalidConfig, so callers fix everything in one pass.
func (b *ServerBuilder) Build() (*Server, error) {
	if err := validate(&b.srv); err != nil {
		return nil, err
	}
	srv := b.srv
	return &srv, nil
}

// MustBuild works like Build but panics on invalid configuration.
func (b *ServerBuilder) MustBuild() *Server {
	srv, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
	return srv
}

func validate(s *Server) error {
	var errs []error

	if s.host == "" {
		errs = append(errs, &FieldError{Field: "host", Reason: "cannot be empty"})
	}
	if s.port < 1 || s.port > 65535 {
		errs = append(errs, &FieldError{Field: "port", Reason: fmt.Sprintf("must be in 1..65535, got %d", s.port)})
	}
	if s.readTimeout <= 0 {
		errs = append(errs, &FieldError{Field: "readTimeout", Reason: "must be positive"})
	}
	if s.writeTimeout <= 0 {
		errs = append(errs, &FieldError{Field: "writeTimeout", Reason: "must be positive"})
	}
	if s.maxConns <= 0 {
		errs = append(errs, &FieldError{Field: "maxConns", Reason: "must be positive"})
	}
	if (s.tlsCert == "") != (s.tlsKey == "") {
		errs = append(errs, &FieldError{Field: "tls", Reason: "certificate and key must be provided together"})
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

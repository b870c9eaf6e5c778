package driver

import (
	"github.com/anekos/irmagi/link"
	"github.com/anekos/irmagi/signal"
)

// Session owns the serial link for one device and is the single place
// reconnect logic lives. Every operation runs through Retry: a failed
// attempt closes the link, reopens it wholesale (the banner skip runs
// again), and retries exactly once.
//
// Session provides no internal mutual exclusion; a caller issuing
// operations from multiple goroutines must serialize them externally.
type Session struct {
	dial   func() (Conn, error)
	config Config
	conn   Conn
	drv    *Driver
}

// Open opens a session against the serial device at path.
//
// Example:
//
//	sess, err := driver.Open("/dev/ttyUSB0",
//	    driver.WithLogger(myLogger),
//	    driver.WithReadTimeout(10*time.Second),
//	)
func Open(path string, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dial := func() (Conn, error) {
		return link.Open(path, link.WithTimeout(cfg.ReadTimeout))
	}
	return newSession(dial, cfg)
}

// newSession wires a session over an arbitrary dial function; the
// exported Open dials the serial port.
func newSession(dial func() (Conn, error), cfg Config) (*Session, error) {
	s := &Session{dial: dial, config: cfg}
	if err := s.connect(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) connect() error {
	conn, err := s.dial()
	if err != nil {
		return err
	}
	s.conn = conn
	s.drv = newDriver(conn, s.config)
	return nil
}

// reconnect replaces the link wholesale. Any reference to the previous
// link is stale after this and must not be retried against.
func (s *Session) reconnect() error {
	if s.config.Logger != nil {
		s.config.Logger.Info("reopening serial link")
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
	return s.connect()
}

// retryOp resolves the driver at each attempt so the retried call runs
// against the freshly opened link, never the stale one.
func retryOp[T any](s *Session, fn func(*Driver) (T, error)) (T, error) {
	return Retry(s.config.RetryCooldown,
		func() (T, error) { return fn(s.drv) },
		s.reconnect,
	)
}

// Capture runs Driver.Capture with the retry/reopen policy.
func (s *Session) Capture() (*CaptureResult, error) {
	return retryOp(s, func(d *Driver) (*CaptureResult, error) { return d.Capture() })
}

// Dump runs Driver.Dump with the retry/reopen policy.
func (s *Session) Dump() (*signal.Waveform, error) {
	return retryOp(s, func(d *Driver) (*signal.Waveform, error) { return d.Dump() })
}

// Play runs Driver.Play with the retry/reopen policy.
func (s *Session) Play() error {
	_, err := retryOp(s, func(d *Driver) (struct{}, error) { return struct{}{}, d.Play() })
	return err
}

// Record runs Driver.Record with the retry/reopen policy.
func (s *Session) Record(w *signal.Waveform) error {
	_, err := retryOp(s, func(d *Driver) (struct{}, error) { return struct{}{}, d.Record(w) })
	return err
}

// Reset runs Driver.Reset with the retry/reopen policy.
func (s *Session) Reset(mode int) error {
	_, err := retryOp(s, func(d *Driver) (struct{}, error) { return struct{}{}, d.Reset(mode) })
	return err
}

// Close releases the link.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

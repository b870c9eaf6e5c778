// Package link owns the raw serial channel to the irmagi device: it
// opens the port, drains the power-on banner, and exposes the line and
// fixed-length byte primitives the protocol driver is built on.
//
// A Link carries a single response timeout used for every read. It is
// not safe for concurrent use by more than one in-flight operation;
// callers serialize access and replace the Link wholesale on reconnect.
package link

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/tarm/serial"
)

const (
	// DefaultBaud is the device's fixed serial speed (9600-8-1-N).
	DefaultBaud = 9600

	// DefaultTimeout is the response-read window.
	DefaultTimeout = 5 * time.Second

	// pollInterval bounds each underlying port read so that the Link's
	// own deadline, not the port, decides when a read has timed out.
	// It also bounds the banner drain, which must never block.
	pollInterval = 50 * time.Millisecond
)

// Link is the open serial session to one device.
type Link struct {
	port    io.ReadWriteCloser
	timeout time.Duration
}

// Option configures a Link.
type Option func(*Link)

// WithTimeout sets the response-read timeout. Reads that see no data
// within this window fail with a TimeoutError.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Link) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// New wraps an already open channel. Reads from the port must not block
// indefinitely when no data is pending; serial ports opened by Open
// satisfy this via their read timeout. Mostly useful for tests.
func New(port io.ReadWriteCloser, opts ...Option) *Link {
	l := &Link{port: port, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open opens the serial device at path with the device's fixed framing
// (9600 baud, 8 data bits, 1 stop bit, no parity) and immediately drains
// the power-on banner.
func Open(path string, opts ...Option) (*Link, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        path,
		Baud:        DefaultBaud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: pollInterval,
	})
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	l := New(port, opts...)
	l.SkipBanner()
	return l, nil
}

// SkipBanner consumes and discards at most one pending line, the banner
// the device emits on power-up. If nothing is pending it returns after a
// single empty poll without consuming anything; it never waits for a
// line to arrive.
func (l *Link) SkipBanner() {
	buf := make([]byte, 1)
	for {
		n, err := l.port.Read(buf)
		if n == 0 || err != nil {
			return
		}
		if buf[0] == '\n' {
			return
		}
	}
}

// WriteLine sends one command line, appending the line break.
func (l *Link) WriteLine(text string) error {
	_, err := l.port.Write([]byte(text + "\n"))
	return err
}

// ReadLine reads one response line, blocking up to the configured
// timeout for the terminator. The trailing carriage return, if any, is
// stripped.
func (l *Link) ReadLine() (string, error) {
	deadline := time.Now().Add(l.timeout)
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := l.port.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(string(line), "\r"), nil
			}
			line = append(line, buf[0])
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if !time.Now().Before(deadline) {
			return "", &TimeoutError{Op: "read line", Timeout: l.timeout}
		}
	}
}

// ReadBytes reads exactly n bytes, blocking up to the configured timeout.
func (l *Link) ReadBytes(n int) ([]byte, error) {
	deadline := time.Now().Add(l.timeout)
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		k, err := l.port.Read(buf[:n-len(out)])
		if k > 0 {
			out = append(out, buf[:k]...)
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			return nil, &TimeoutError{Op: "read bytes", Timeout: l.timeout}
		}
	}
	return out, nil
}

// Close releases the serial port.
func (l *Link) Close() error {
	return l.port.Close()
}

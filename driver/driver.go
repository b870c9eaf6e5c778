package driver

import (
	"strings"

	"github.com/anekos/irmagi/protocol"
	"github.com/anekos/irmagi/signal"
)

// Conn is the line-oriented channel the driver talks over.
// *link.Link implements it; tests substitute scripted fakes.
type Conn interface {
	WriteLine(text string) error
	ReadLine() (string, error)
	ReadBytes(n int) ([]byte, error)
	Close() error
}

// Driver issues the five device operations as command/response exchanges
// over an injected Conn. It owns no reconnect logic and never swallows
// errors; Session layers the retry/reopen policy on top.
//
// A Driver is not safe for concurrent use: the device multiplexes
// nothing, so every command/response pair must run to completion before
// the next command is issued.
type Driver struct {
	conn   Conn
	config Config
}

// New creates a Driver over the given connection.
//
// Example:
//
//	l, _ := link.Open("/dev/ttyUSB0")
//	drv := driver.New(l, driver.WithLogger(myLogger))
func New(conn Conn, opts ...Option) *Driver {
	if conn == nil {
		panic("conn cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newDriver(conn, cfg)
}

func newDriver(conn Conn, cfg Config) *Driver {
	return &Driver{conn: conn, config: cfg}
}

// CaptureResult is the two-outcome result of a capture: either the
// device reported a captured size, or it answered with something else
// and the raw response is the diagnostic. A failed capture is not an
// error; link-level failures are.
type CaptureResult struct {
	// OK reports whether the device acknowledged a completed capture
	OK bool

	// Size is the number of captured bytes; valid only when OK
	Size int

	// Response is the raw device response when OK is false
	Response string
}

// Capture starts an IR capture and waits for the device to report the
// captured size.
func (d *Driver) Capture() (*CaptureResult, error) {
	if err := d.conn.WriteLine(protocol.FormatCapture()); err != nil {
		return nil, err
	}
	line, err := d.conn.ReadLine()
	if err != nil {
		return nil, err
	}

	size, ok := protocol.ParseCaptureResponse(line)
	if !ok {
		d.logDebug("capture refused", "response", line)
		return &CaptureResult{Response: line}, nil
	}

	d.logInfo("capture complete", "size", size)
	return &CaptureResult{OK: true, Size: size}, nil
}

// Reset resets the device in the given mode (0 is the ordinary reset)
// and checks for the OK acknowledgement.
func (d *Driver) Reset(mode int) error {
	if err := d.conn.WriteLine(protocol.FormatReset(mode)); err != nil {
		return err
	}
	line, err := d.conn.ReadLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != protocol.ResponseOK {
		return &protocol.UnexpectedResponseError{Operation: "reset", Response: line}
	}
	d.logDebug("device reset", "mode", mode)
	return nil
}

// Play replays the buffer currently held by the device. The device's
// acknowledgement line is read and discarded.
func (d *Driver) Play() error {
	if err := d.conn.WriteLine(protocol.FormatPlay()); err != nil {
		return err
	}
	if _, err := d.conn.ReadLine(); err != nil {
		return err
	}
	d.logInfo("playback triggered")
	return nil
}

// Dump decodes the device's buffer into a Waveform: scale from register
// 6, total size from register 1, then block by block one byte-read per
// offset. The device's trailing zero-length block (when the size is an
// exact multiple of the block size) is still selected and skipped.
func (d *Driver) Dump() (*signal.Waveform, error) {
	if err := d.conn.WriteLine(protocol.FormatQuery(protocol.RegScale)); err != nil {
		return nil, err
	}
	line, err := d.conn.ReadLine()
	if err != nil {
		return nil, err
	}
	scale, err := protocol.ParseScale(line)
	if err != nil {
		return nil, err
	}

	if err := d.conn.WriteLine(protocol.FormatQuery(protocol.RegBufferSize)); err != nil {
		return nil, err
	}
	line, err = d.conn.ReadLine()
	if err != nil {
		return nil, err
	}
	size, err := protocol.ParseBufferSize(line)
	if err != nil {
		return nil, err
	}

	blocks := protocol.BlockCount(size)
	data := make([]signal.Block, 0, blocks)
	for b := 0; b < blocks; b++ {
		if err := d.conn.WriteLine(protocol.FormatSelectBlock(b)); err != nil {
			return nil, err
		}

		length := protocol.BlockLength(size, b)
		block := make(signal.Block, 0, length)
		for offset := 0; offset < length; offset++ {
			if err := d.conn.WriteLine(protocol.FormatReadByte(offset)); err != nil {
				return nil, err
			}
			raw, err := d.conn.ReadBytes(protocol.DataByteSize)
			if err != nil {
				return nil, err
			}
			value, err := protocol.ParseDataByte(raw)
			if err != nil {
				return nil, err
			}
			block = append(block, value)
		}
		data = append(data, block)
	}

	d.logInfo("dump complete", "size", size, "blocks", blocks, "scale", scale)
	return &signal.Waveform{Scale: scale, Data: data}, nil
}

// Record encodes a Waveform back into the device: declare the total
// size and scale, discard the single setup acknowledgement, then write
// every byte block by block. The write command carries no block index,
// so the driver reissues a block select before each block rather than
// trusting the device's current block pointer.
func (d *Driver) Record(w *signal.Waveform) error {
	if err := d.conn.WriteLine(protocol.FormatDeclareSize(w.Size())); err != nil {
		return err
	}
	if err := d.conn.WriteLine(protocol.FormatSetScale(w.Scale)); err != nil {
		return err
	}
	if _, err := d.conn.ReadLine(); err != nil {
		return err
	}

	for i, block := range w.Data {
		if err := d.conn.WriteLine(protocol.FormatSelectBlock(i)); err != nil {
			return err
		}
		for j, value := range block {
			if err := d.conn.WriteLine(protocol.FormatWriteByte(j, value)); err != nil {
				return err
			}
		}
	}

	d.logInfo("record complete", "size", w.Size(), "blocks", len(w.Data), "scale", w.Scale)
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (d *Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Driver) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

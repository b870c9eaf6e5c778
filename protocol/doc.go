// Package protocol implements the wire format of the irmagi IR
// capture/playback device.
//
// # Protocol Overview
//
// The device speaks a line-oriented ASCII protocol over a serial link:
// every command is a single character verb, optionally followed by
// comma-separated arguments, terminated by a line break. Responses are
// decimal or hexadecimal text, never raw binary.
//
//	c             start capture
//	i,1           query buffer size (hex)
//	i,6           query scale (decimal)
//	b,<n>         select block n
//	d,<n>         read byte at offset n (response: 2 hex chars + 1 filler)
//	w,<n>,<v>     write byte value v at offset n of the selected block
//	n,<size>      declare total buffer size (hex) before recording
//	k,<scale>     set scale before recording
//	p             play back the current buffer
//	r,<n>         reset the device in mode n
//
// # Command Builders
//
// Use the Format* functions to build command lines (without the
// terminating line break, which the link layer appends):
//
//	cmd := protocol.FormatWriteByte(0, 0x2A) // "w,0,42"
//
// # Response Parsers
//
// Use the Parse* functions for command-specific responses:
//
//	size, err := protocol.ParseBufferSize(line)
//	scale, err := protocol.ParseScale(line)
//	value, err := protocol.ParseDataByte(raw)
//
// ParseCaptureResponse is the one two-outcome parser: a capture either
// succeeds with a size or fails with the raw response line as the
// diagnostic payload:
//
//	if size, ok := protocol.ParseCaptureResponse(line); !ok {
//	    // line is the failure diagnostic
//	}
//
// # Block Layout
//
// Device memory is addressed as fixed 64-byte blocks. BlockCount and
// BlockLength encode the device's block iteration policy, including the
// trailing zero-length block it expects when the buffer size is an exact
// multiple of the block size.
package protocol

package protocol

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseCaptureResponse extracts the captured size from a capture
// response line. A successful capture answers with three literal dots,
// a space, and the decimal byte count. Any other line means the capture
// failed; the caller should surface the raw line as the diagnostic.
func ParseCaptureResponse(line string) (size int, ok bool) {
	rest, found := strings.CutPrefix(line, capturePrefix)
	if !found {
		return 0, false
	}
	size, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || size < 0 {
		return 0, false
	}
	return size, true
}

// ParseBufferSize parses a RegBufferSize response: the total buffer
// length as 16-bit hexadecimal text.
func ParseBufferSize(line string) (int, error) {
	size, err := strconv.ParseUint(strings.TrimSpace(line), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("malformed buffer size %q: %w", line, err)
	}
	return int(size), nil
}

// ParseScale parses a RegScale response: the timing-base divisor as
// decimal text.
func ParseScale(line string) (int, error) {
	scale, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("malformed scale %q: %w", line, err)
	}
	return scale, nil
}

// ParseDataByte decodes one CmdReadByte response: exactly two hex digits
// followed by one filler character that is discarded.
func ParseDataByte(raw []byte) (byte, error) {
	if len(raw) != DataByteSize {
		return 0, fmt.Errorf("data byte response is %d bytes, expected %d", len(raw), DataByteSize)
	}
	var decoded [1]byte
	if _, err := hex.Decode(decoded[:], raw[:2]); err != nil {
		return 0, fmt.Errorf("malformed data byte %q: %w", raw, err)
	}
	return decoded[0], nil
}

// BlockCount returns the number of blocks the device iterates for a
// buffer of the given size. The count is size/BlockSize+1: when the size
// is an exact multiple of BlockSize the device still expects a trailing
// block of declared length zero to be selected and skipped.
func BlockCount(size int) int {
	return size/BlockSize + 1
}

// BlockLength returns the declared length of the block at index within
// a buffer of the given size: BlockSize for every block but the last,
// and the remainder (possibly zero) for the last.
func BlockLength(size, index int) int {
	if index == BlockCount(size)-1 {
		return size % BlockSize
	}
	return BlockSize
}

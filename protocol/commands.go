package protocol

import (
	"fmt"
	"strconv"
)

// FormatCapture builds the capture command.
//
// Wire form:
//
//	c
func FormatCapture() string {
	return CmdCapture
}

// FormatQuery builds a register query command. The register number is
// decimal; see RegBufferSize and RegScale for the response framing of
// the two registers the driver uses.
//
// Wire form:
//
//	i,<register>
func FormatQuery(register int) string {
	return fmt.Sprintf("%s,%d", CmdQuery, register)
}

// FormatSelectBlock builds a block-select command. The block index is
// decimal. Selection is driver-owned state: the write command carries no
// block index, so the driver reissues a select before each block.
//
// Wire form:
//
//	b,<index>
func FormatSelectBlock(index int) string {
	return fmt.Sprintf("%s,%d", CmdSelectBlock, index)
}

// FormatReadByte builds a byte-read command for an offset within the
// selected block. The device answers with DataByteSize bytes.
//
// Wire form:
//
//	d,<offset>
func FormatReadByte(offset int) string {
	return fmt.Sprintf("%s,%d", CmdReadByte, offset)
}

// FormatWriteByte builds a byte-write command for an offset within the
// selected block. Offset and value are both decimal.
//
// Wire form:
//
//	w,<offset>,<value>
func FormatWriteByte(offset int, value byte) string {
	return fmt.Sprintf("%s,%d,%d", CmdWriteByte, offset, value)
}

// FormatDeclareSize builds the buffer-size declaration sent before
// recording. The size is hexadecimal, matching the framing of
// RegBufferSize responses.
//
// Wire form:
//
//	n,<size-hex>
func FormatDeclareSize(size int) string {
	return fmt.Sprintf("%s,%s", CmdDeclareSize, strconv.FormatInt(int64(size), 16))
}

// FormatSetScale builds the scale assignment sent before recording.
// The scale is decimal.
//
// Wire form:
//
//	k,<scale>
func FormatSetScale(scale int) string {
	return fmt.Sprintf("%s,%d", CmdSetScale, scale)
}

// FormatPlay builds the playback command.
//
// Wire form:
//
//	p
func FormatPlay() string {
	return CmdPlay
}

// FormatReset builds the reset command for the given mode (0 is the
// ordinary reset).
//
// Wire form:
//
//	r,<mode>
func FormatReset(mode int) string {
	return fmt.Sprintf("%s,%d", CmdReset, mode)
}

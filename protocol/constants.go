package protocol

// Command verbs. Every command is a single ASCII character, optionally
// followed by comma-separated arguments, terminated by a line break.
const (
	// CmdCapture starts an IR capture
	CmdCapture = "c"

	// CmdQuery reads a device register
	CmdQuery = "i"

	// CmdSelectBlock selects the active memory block
	CmdSelectBlock = "b"

	// CmdReadByte reads one byte at an offset of the selected block
	CmdReadByte = "d"

	// CmdWriteByte writes one byte at an offset of the selected block
	CmdWriteByte = "w"

	// CmdDeclareSize declares the total buffer size before recording
	CmdDeclareSize = "n"

	// CmdSetScale sets the timing-base divisor before recording
	CmdSetScale = "k"

	// CmdPlay plays back the current buffer
	CmdPlay = "p"

	// CmdReset resets the device
	CmdReset = "r"
)

// Registers readable through the i command.
const (
	// RegBufferSize is the total buffer length, reported as hexadecimal text
	RegBufferSize = 1

	// RegScale is the timing-base divisor, reported as decimal text
	RegScale = 6
)

const (
	// BlockSize is the fixed capacity of a device memory block in bytes
	BlockSize = 64

	// DataByteSize is the wire size of one CmdReadByte response:
	// two hex digits plus one filler character
	DataByteSize = 3

	// ResponseOK is the acknowledgement the device sends after a reset
	ResponseOK = "OK"

	// capturePrefix starts every successful capture response; the decimal
	// captured size follows it
	capturePrefix = "... "
)

package signal

import (
	"encoding/json"
	"fmt"
)

// Block is one device memory block worth of waveform data.
// Blocks marshal to JSON as plain integer arrays rather than base64,
// matching the profile file format.
type Block []byte

// MarshalJSON implements json.Marshaler.
func (b Block) MarshalJSON() ([]byte, error) {
	values := make([]int, len(b))
	for i, v := range b {
		values[i] = int(v)
	}
	return json.Marshal(values)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Block) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	block := make(Block, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("block value %d at index %d is out of byte range", v, i)
		}
		block[i] = byte(v)
	}
	*b = block
	return nil
}

// Waveform is one captured or playable IR signal: a timing-base divisor
// plus the device buffer contents split into blocks. The last block may
// be shorter than the others, or empty when the buffer length is an
// exact multiple of the block size.
//
// A Waveform is treated as an immutable value once produced; it is the
// unit exchanged with the device and persisted as a profile.
type Waveform struct {
	Scale int     `json:"scale"`
	Data  []Block `json:"data"`
}

// Size returns the total number of data bytes across all blocks. This is
// the buffer length the device reports and the length declared back to
// it before recording.
func (w *Waveform) Size() int {
	total := 0
	for _, block := range w.Data {
		total += len(block)
	}
	return total
}

// Equal reports whether two waveforms carry the same scale and the same
// byte content with identical block boundaries.
func (w *Waveform) Equal(other *Waveform) bool {
	if w.Scale != other.Scale || len(w.Data) != len(other.Data) {
		return false
	}
	for i, block := range w.Data {
		if len(block) != len(other.Data[i]) {
			return false
		}
		for j, v := range block {
			if v != other.Data[i][j] {
				return false
			}
		}
	}
	return true
}

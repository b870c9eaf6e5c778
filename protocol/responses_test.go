package protocol

import "testing"

func TestParseCaptureResponse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantSize int
		wantOK   bool
	}{
		{name: "captured 42 bytes", line: "... 42", wantSize: 42, wantOK: true},
		{name: "captured zero bytes", line: "... 0", wantSize: 0, wantOK: true},
		{name: "error response", line: "ERR", wantOK: false},
		{name: "empty line", line: "", wantOK: false},
		{name: "dots without count", line: "... ", wantOK: false},
		{name: "non-decimal count", line: "... x", wantOK: false},
		{name: "two dots only", line: ".. 42", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := ParseCaptureResponse(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && size != tt.wantSize {
				t.Errorf("size = %d, want %d", size, tt.wantSize)
			}
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    int
		wantErr bool
	}{
		{name: "zero", line: "0", want: 0},
		{name: "hex digits", line: "12c", want: 300},
		{name: "upper case hex", line: "FF", want: 255},
		{name: "trailing newline residue", line: " 40 ", want: 64},
		{name: "garbage", line: "what", wantErr: true},
		{name: "empty", line: "", wantErr: true},
		{name: "beyond 16 bits", line: "10000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBufferSize(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    int
		wantErr bool
	}{
		{name: "decimal", line: "10", want: 10},
		{name: "padded", line: " 7 ", want: 7},
		{name: "hex digits rejected", line: "1f", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScale(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("scale = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDataByte(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    byte
		wantErr bool
	}{
		{name: "lower case", raw: []byte("2a-"), want: 0x2A},
		{name: "zero padded", raw: []byte("01,"), want: 0x01},
		{name: "filler is ignored", raw: []byte("ffz"), want: 0xFF},
		{name: "too short", raw: []byte("2a"), wantErr: true},
		{name: "too long", raw: []byte("2a--"), wantErr: true},
		{name: "non-hex digits", raw: []byte("zz-"), wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDataByte(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("value = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestBlockCount(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{size: 0, want: 1},
		{size: 1, want: 1},
		{size: 63, want: 1},
		{size: 64, want: 2},
		{size: 65, want: 2},
		{size: 128, want: 3},
	}

	for _, tt := range tests {
		if got := BlockCount(tt.size); got != tt.want {
			t.Errorf("BlockCount(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestBlockLength(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		index int
		want  int
	}{
		{name: "empty buffer single block", size: 0, index: 0, want: 0},
		{name: "partial only block", size: 3, index: 0, want: 3},
		{name: "full first block", size: 65, index: 0, want: 64},
		{name: "short last block", size: 65, index: 1, want: 1},
		{name: "exact multiple trailing block", size: 64, index: 1, want: 0},
		{name: "exact multiple first block", size: 64, index: 0, want: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockLength(tt.size, tt.index); got != tt.want {
				t.Errorf("BlockLength(%d, %d) = %d, want %d", tt.size, tt.index, got, tt.want)
			}
		})
	}
}

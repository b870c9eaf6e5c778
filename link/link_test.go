package link

import (
	"io"
	"testing"
	"time"
)

// fakePort serves scripted input and records writes. Read returns
// io.EOF with no data once the script is exhausted, mirroring a serial
// port read timeout with nothing pending.
type fakePort struct {
	input  []byte
	output []byte
	closed bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.input) == 0 {
		return 0, io.EOF
	}
	n := copy(b, p.input)
	p.input = p.input[n:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.output = append(p.output, b...)
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestWriteLine(t *testing.T) {
	port := &fakePort{}
	l := New(port)

	if err := l.WriteLine("i,1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := string(port.output); got != "i,1\n" {
		t.Errorf("wrote %q, want %q", got, "i,1\n")
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain line", input: "OK\n", want: "OK"},
		{name: "crlf terminator", input: "OK\r\n", want: "OK"},
		{name: "empty line", input: "\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(&fakePort{input: []byte(tt.input)})

			got, err := l.ReadLine()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLineTimeout(t *testing.T) {
	l := New(&fakePort{}, WithTimeout(20*time.Millisecond))

	_, err := l.ReadLine()
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !IsTimeout(err) {
		t.Errorf("error = %v, want TimeoutError", err)
	}
}

func TestReadLineUnterminated(t *testing.T) {
	// A partial line without a terminator must still time out rather
	// than return early.
	l := New(&fakePort{input: []byte("OK")}, WithTimeout(20*time.Millisecond))

	_, err := l.ReadLine()
	if !IsTimeout(err) {
		t.Errorf("error = %v, want TimeoutError", err)
	}
}

func TestReadBytes(t *testing.T) {
	l := New(&fakePort{input: []byte("2a-rest")})

	got, err := l.ReadBytes(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "2a-" {
		t.Errorf("bytes = %q, want %q", got, "2a-")
	}
}

func TestReadBytesTimeout(t *testing.T) {
	l := New(&fakePort{input: []byte("2a")}, WithTimeout(20*time.Millisecond))

	_, err := l.ReadBytes(3)
	if !IsTimeout(err) {
		t.Errorf("error = %v, want TimeoutError", err)
	}
}

func TestSkipBanner(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		remaining string
	}{
		{name: "banner present", input: "irmagi ready\nOK\n", remaining: "OK\n"},
		{name: "nothing pending", input: "", remaining: ""},
		{name: "consumes at most one line", input: "a\nb\nc\n", remaining: "b\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &fakePort{input: []byte(tt.input)}
			l := New(port)

			l.SkipBanner()

			if got := string(port.input); got != tt.remaining {
				t.Errorf("remaining input = %q, want %q", got, tt.remaining)
			}
		})
	}
}

package lzop

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts WriterOptions
	}{
		{"no name", WriterOptions{}},
		{"with name", WriterOptions{Name: "archive.bin"}},
		{"with extra", WriterOptions{Name: "x", Extra: []byte("hello extra")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			wrote, err := writeHeader(&buf, tt.opts)
			if err != nil {
				t.Fatalf("writeHeader: %v", err)
			}

			got, err := readHeader(&buf, true)
			if err != nil {
				t.Fatalf("readHeader: %v", err)
			}

			if got.Version != wrote.Version || got.LibVersion != wrote.LibVersion {
				t.Errorf("version mismatch: got %+v want %+v", got, wrote)
			}
			if got.Method != Method1 {
				t.Errorf("method = %d, want %d", got.Method, Method1)
			}
			if got.Name != tt.opts.Name {
				t.Errorf("name = %q, want %q", got.Name, tt.opts.Name)
			}
			if string(got.Extra) != string(tt.opts.Extra) {
				t.Errorf("extra = %q, want %q", got.Extra, tt.opts.Extra)
			}
			if got.Flags&flagAdler32D == 0 || got.Flags&flagAdler32C == 0 {
				t.Errorf("flags %#x missing ADLER32_D|ADLER32_C", got.Flags)
			}
		})
	}
}

func TestHeaderNameDefaultFlag(t *testing.T) {
	var buf bytes.Buffer
	if _, err := writeHeader(&buf, WriterOptions{}); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	h, err := readHeader(&buf, true)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.Flags&flagNameDefault == 0 {
		t.Errorf("expected NAME_DEFAULT flag when Name is empty")
	}
}

func TestHeaderBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 1, 2, 3, 4, 5, 6, 7, 8})
	_, err := readHeader(buf, true)
	fe, ok := err.(*FormatError)
	if !ok || fe.Kind != KindBadMagic {
		t.Fatalf("readHeader bad magic: got %v, want KindBadMagic", err)
	}
}

func TestHeaderChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	if _, err := writeHeader(&buf, WriterOptions{Name: "f"}); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	raw := buf.Bytes()
	// Flip every bit of the header checksum's last byte.
	raw[len(raw)-1] ^= 0xFF

	if _, err := readHeader(bytes.NewReader(raw), true); err == nil {
		t.Fatalf("expected checksum mismatch, got nil")
	} else if fe, ok := err.(*FormatError); !ok || fe.Kind != KindChecksumMismatch {
		t.Fatalf("got %v, want KindChecksumMismatch", err)
	}

	if _, err := readHeader(bytes.NewReader(raw), false); err != nil {
		t.Fatalf("verification disabled: unexpected error %v", err)
	}
}

func TestHeaderRejectsCRC32(t *testing.T) {
	var buf bytes.Buffer
	if _, err := writeHeader(&buf, WriterOptions{}); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	raw := buf.Bytes()

	// Flags field starts after the 9-byte magic, version u16, libver u16,
	// extract-version u16, method u8, level u8. H_CRC32 is bit 0x1000,
	// which big-endian lands in the third of the flags field's four bytes.
	flagsOff := 9 + 2 + 2 + 2 + 1 + 1
	raw[flagsOff+2] |= 0x10 // set H_CRC32 (0x1000) in the big-endian u32

	// Recompute nothing: we only need the parser to reject before checksum
	// verification is reached, so use verify=false to isolate the feature
	// check from the now-stale checksum.
	_, err := readHeader(bytes.NewReader(raw), false)
	fe, ok := err.(*FormatError)
	if !ok || fe.Kind != KindUnsupportedFeature {
		t.Fatalf("got %v, want KindUnsupportedFeature", err)
	}
}

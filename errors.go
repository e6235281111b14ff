package lzop

import "fmt"

// Kind enumerates the fatal-decode conditions a malformed lzop stream can
// trigger, so callers can branch on *FormatError programmatically instead of
// matching error strings.
type Kind int

const (
	// KindBadMagic means the stream did not start with the 9-byte lzop
	// signature.
	KindBadMagic Kind = iota
	// KindUnsupportedVersion means the declared extract-version falls
	// outside [0x0900, LzopVersion].
	KindUnsupportedVersion
	// KindUnsupportedFeature means the header declares H_CRC32, an
	// unsupported H_FILTER, or MULTIPART.
	KindUnsupportedFeature
	// KindBadMethod means the header's method is not one of {1, 2, 3}.
	KindBadMethod
	// KindChecksumMismatch means a header, extra-field, or block checksum
	// failed verification.
	KindChecksumMismatch
	// KindBlockTooLarge means a block's declared uncompressed length
	// exceeds MaxBlockSize.
	KindBlockTooLarge
	// KindDecompressFailure means the external LZO primitive reported an
	// error or returned a plaintext of the wrong length.
	KindDecompressFailure
	// KindTruncated means the underlying source ended before a required
	// field or payload was fully read.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindBadMagic:
		return "bad magic"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindUnsupportedFeature:
		return "unsupported feature"
	case KindBadMethod:
		return "bad method"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindBlockTooLarge:
		return "block too large"
	case KindDecompressFailure:
		return "decompress failure"
	case KindTruncated:
		return "truncated stream"
	default:
		return "unknown"
	}
}

// FormatError reports a fatal condition found while parsing or emitting an
// lzop stream.
type FormatError struct {
	Kind Kind
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return "lzop: " + e.Kind.String()
	}
	return fmt.Sprintf("lzop: %s: %s", e.Kind, e.Msg)
}

func newFormatError(kind Kind, msg string) *FormatError {
	return &FormatError{Kind: kind, Msg: msg}
}

// Caller-programming-error sentinels: these report misuse of the API, not
// data corruption, so they stay plain sentinel errors (mirrors
// compress.ErrInvalidFrame / compress.ErrInvalidBlockSize in the teacher).
var (
	// ErrClosedStream is returned by any operation issued after Close.
	ErrClosedStream = fmt.Errorf("lzop: operation on closed stream")
	// ErrIllegalSeek is returned for a seek from the end, or a backward
	// seek on a Writer.
	ErrIllegalSeek = fmt.Errorf("lzop: illegal seek")
)

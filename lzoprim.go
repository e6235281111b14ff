package lzop

import (
	"fmt"

	lzo "github.com/dgryski/go-lzo"
)

// compressBlock invokes the external LZO1X-1 primitive on plaintext,
// returning a compressed representation of at most
// len(plaintext) + len(plaintext)/16 + 64 + 3 bytes, per spec §6. The LZO
// algorithm itself is explicitly out of scope for this package: this is a
// thin adapter over github.com/dgryski/go-lzo, the same package the
// reference `lzopack` programs in the example pack wrap.
func compressBlock(plaintext []byte) ([]byte, error) {
	algo := lzo.LzoAlgorithm(lzo.BestSpeed)
	z, err := lzo.NewCompressor(algo)
	if err != nil {
		return nil, fmt.Errorf("lzop: lzo compressor init: %w", err)
	}
	out, err := z.Compress(plaintext)
	if err != nil {
		return nil, fmt.Errorf("lzop: lzo compress: %w", err)
	}
	return out, nil
}

// decompressBlock invokes the external LZO1X primitive on compressed,
// expecting exactly wantLen bytes of plaintext back. Per spec §6, any
// mismatch in length or a primitive-reported failure is a
// KindDecompressFailure *FormatError.
func decompressBlock(compressed []byte, wantLen int) ([]byte, error) {
	z, err := lzo.NewCompressor(lzo.Lzo1x_1)
	if err != nil {
		return nil, fmt.Errorf("lzop: lzo compressor init: %w", err)
	}
	dst := make([]byte, wantLen)
	n, err := z.Decompress(compressed, dst)
	if err != nil {
		return nil, newFormatError(KindDecompressFailure, err.Error())
	}
	if n != wantLen {
		return nil, newFormatError(KindDecompressFailure,
			fmt.Sprintf("got %d bytes, want %d", n, wantLen))
	}
	return dst, nil
}

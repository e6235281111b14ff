package lzop

import "hash/adler32"

// checksumEngine is the stateful Adler-32 accumulator the header codec
// drives while it consumes or produces header bytes. Block checksums do not
// share an engine instance with the header or with each other — each block
// checksum is its own fresh engine, matching the "reset to 1 at the start of
// each header and at the start of each block's checksum computation"
// invariant in the format.
//
// Implemented on top of hash/adler32: it is the canonical RFC 1950
// implementation and is what the same-domain reference implementation
// (asdfsx-lzo/indexer.go) uses directly rather than hand-rolling one; see
// DESIGN.md.
type checksumEngine struct {
	h hash32
}

// hash32 is the subset of hash.Hash32 this package needs; declared locally
// so checksumEngine's zero value is unusable and callers must go through
// newChecksumEngine, matching the "initial value is 1" contract explicitly.
type hash32 interface {
	Write(p []byte) (int, error)
	Sum32() uint32
	Reset()
}

// newChecksumEngine returns an engine whose state is the Adler-32 initial
// value, 1.
func newChecksumEngine() *checksumEngine {
	return &checksumEngine{h: adler32.New()}
}

// update folds bytes into the running checksum, in order.
func (c *checksumEngine) update(p []byte) {
	c.h.Write(p) // adler32's Write never returns an error
}

// sum returns the current 32-bit checksum without resetting the state.
func (c *checksumEngine) sum() uint32 {
	return c.h.Sum32()
}

// reset returns the engine to its initial state (1).
func (c *checksumEngine) reset() {
	c.h.Reset()
}

// adler32Of is a convenience for one-shot checksums (block d-adler/c-adler),
// always starting from state 1.
func adler32Of(p []byte) uint32 {
	return adler32.Checksum(p)
}

package lzop

import (
	"encoding/binary"
	"io"
)

// Primitive big-endian integer codec. Every field in the lzop format is
// big-endian, in both the header and the block framing, so one set of
// helpers serves both; header callers wrap the source/sink in a
// checksum-tracking io.Reader/io.Writer first (see trackedReader/
// trackedWriter below), block callers use these directly.

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func writeU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// checksumWriter adapts a *checksumEngine to io.Writer so it can sit behind
// an io.TeeReader (read side) or io.MultiWriter (write side), the same
// tee/multi-writer idiom asdfsx-lzo/indexer.go uses for its own Adler-32 and
// CRC-32 accumulators.
type checksumWriter struct {
	e *checksumEngine
}

func (c checksumWriter) Write(p []byte) (int, error) {
	c.e.update(p)
	return len(p), nil
}

// trackedReader returns an io.Reader that feeds every byte it yields into
// engine, for the duration the header codec drives it.
func trackedReader(r io.Reader, engine *checksumEngine) io.Reader {
	return io.TeeReader(r, checksumWriter{engine})
}

// trackedWriter returns an io.Writer that feeds every byte written through
// it into engine, in addition to forwarding to w.
func trackedWriter(w io.Writer, engine *checksumEngine) io.Writer {
	return io.MultiWriter(w, checksumWriter{engine})
}

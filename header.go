package lzop

import (
	"errors"
	"io"
	"time"
)

// errNameTooLong is returned by writeHeader when the caller's name does not
// fit in the header's single-byte length prefix (spec: L < 255).
var errNameTooLong = errors.New("lzop: name length must be < 255")

// readHeader consumes the magic plus one header record from r, verifying
// checksums when verify is true. It implements spec §4.3 "Read" exactly,
// including the detail that the header-checksum and extra-checksum fields
// themselves are read raw (untracked) while everything else in the header
// is fed into one continuously-running Adler-32 engine.
func readHeader(r io.Reader, verify bool) (*Header, error) {
	var magic [9]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, newFormatError(KindTruncated, "reading magic: "+err.Error())
	}
	if magic != Magic {
		return nil, newFormatError(KindBadMagic, "")
	}

	eng := newChecksumEngine()
	tr := trackedReader(r, eng)
	h := &Header{}

	var err error
	if h.Version, err = readU16(tr); err != nil {
		return nil, truncated(err)
	}
	if h.LibVersion, err = readU16(tr); err != nil {
		return nil, truncated(err)
	}

	if h.Version > 0x0940 {
		if h.ExtractVersion, err = readU16(tr); err != nil {
			return nil, truncated(err)
		}
		if h.ExtractVersion > LzopVersion || h.ExtractVersion < 0x0900 {
			return nil, newFormatError(KindUnsupportedVersion, "")
		}
	}

	method, err := readU8(tr)
	if err != nil {
		return nil, truncated(err)
	}
	h.Method = method
	if method != Method1 && method != Method2 && method != Method3 {
		return nil, newFormatError(KindBadMethod, "")
	}

	if h.Version >= 0x0940 {
		if h.Level, err = readU8(tr); err != nil {
			return nil, truncated(err)
		}
	}

	if h.Flags, err = readU32(tr); err != nil {
		return nil, truncated(err)
	}
	h.Flags &= flagMask
	if h.Flags&flagHCRC32 != 0 {
		return nil, newFormatError(KindUnsupportedFeature, "H_CRC32 header checksum is not supported")
	}
	if h.Flags&flagMultipart != 0 {
		return nil, newFormatError(KindUnsupportedFeature, "multipart archives are not supported")
	}
	if h.Flags&flagHFilter != 0 {
		if h.Filter, err = readU32(tr); err != nil {
			return nil, truncated(err)
		}
		return nil, newFormatError(KindUnsupportedFeature, "header filters are not supported")
	}

	if h.Mode, err = readU32(tr); err != nil {
		return nil, truncated(err)
	}
	mtimeLow, err := readU32(tr)
	if err != nil {
		return nil, truncated(err)
	}
	var mtimeHigh uint32
	if h.Version >= 0x0940 {
		if mtimeHigh, err = readU32(tr); err != nil {
			return nil, truncated(err)
		}
	}
	h.ModTime = time.Unix(int64(mtimeHigh)<<32|int64(mtimeLow), 0).UTC()

	nameLen, err := readU8(tr)
	if err != nil {
		return nil, truncated(err)
	}
	if nameLen > 0 {
		buf := make([]byte, nameLen)
		if _, err := io.ReadFull(tr, buf); err != nil {
			return nil, truncated(err)
		}
		h.Name = string(buf)
	}

	c1 := eng.sum()
	headerChecksum, err := readU32(r) // raw: not tracked
	if err != nil {
		return nil, truncated(err)
	}
	if verify && headerChecksum != c1 {
		return nil, newFormatError(KindChecksumMismatch, "header checksum")
	}

	if h.Flags&flagHExtraField != 0 {
		extraLen, err := readU32(tr)
		if err != nil {
			return nil, truncated(err)
		}
		buf := make([]byte, extraLen)
		if extraLen > 0 {
			if _, err := io.ReadFull(tr, buf); err != nil {
				return nil, truncated(err)
			}
		}
		h.Extra = buf
		c2 := eng.sum()
		extraChecksum, err := readU32(r) // raw: not tracked
		if err != nil {
			return nil, truncated(err)
		}
		if verify && extraChecksum != c2 {
			return nil, newFormatError(KindChecksumMismatch, "extra field checksum")
		}
	}

	return h, nil
}

// writeHeader emits the magic plus one header record derived from opts,
// following spec §4.3 "Write" exactly: version=LzopVersion, libver=
// LzoLibVersion, extract-version=LzoLibVersion, method=1, level=1,
// flags=ADLER32_D|ADLER32_C (plus NAME_DEFAULT when opts.Name is empty and
// H_EXTRA_FIELD when opts.Extra is non-empty), and whatever opts
// supplies for the remaining opaque fields.
func writeHeader(w io.Writer, opts WriterOptions) (*Header, error) {
	if len(opts.Name) >= 255 {
		return nil, errNameTooLong
	}

	if _, err := w.Write(Magic[:]); err != nil {
		return nil, err
	}

	eng := newChecksumEngine()
	tw := trackedWriter(w, eng)

	h := &Header{
		Version:        LzopVersion,
		LibVersion:     LzoLibVersion,
		ExtractVersion: LzoLibVersion,
		Method:         Method1,
		Level:          1,
		Flags:          flagAdler32D | flagAdler32C,
		Mode:           opts.Mode,
		ModTime:        opts.ModTime,
		Name:           opts.Name,
		Extra:          opts.Extra,
	}
	if h.Name == "" {
		h.Flags |= flagNameDefault
	}
	if len(h.Extra) > 0 {
		h.Flags |= flagHExtraField
	}

	if err := writeU16(tw, h.Version); err != nil {
		return nil, err
	}
	if err := writeU16(tw, h.LibVersion); err != nil {
		return nil, err
	}
	if err := writeU16(tw, h.ExtractVersion); err != nil {
		return nil, err
	}
	if err := writeU8(tw, h.Method); err != nil {
		return nil, err
	}
	if err := writeU8(tw, h.Level); err != nil {
		return nil, err
	}
	if err := writeU32(tw, h.Flags); err != nil {
		return nil, err
	}
	if err := writeU32(tw, h.Mode); err != nil {
		return nil, err
	}
	var mtimeLow, mtimeHigh uint32
	if !h.ModTime.IsZero() {
		u := h.ModTime.Unix()
		mtimeLow = uint32(u)
		mtimeHigh = uint32(u >> 32)
	}
	if err := writeU32(tw, mtimeLow); err != nil {
		return nil, err
	}
	if err := writeU32(tw, mtimeHigh); err != nil {
		return nil, err
	}
	if err := writeU8(tw, uint8(len(h.Name))); err != nil {
		return nil, err
	}
	if len(h.Name) > 0 {
		if _, err := tw.Write([]byte(h.Name)); err != nil {
			return nil, err
		}
	}

	if err := writeU32(w, eng.sum()); err != nil { // raw: not tracked
		return nil, err
	}

	if len(h.Extra) > 0 {
		// The extra-field checksum continues the same running engine used
		// for the main header checksum (see readHeader), rather than a
		// fresh one.
		if err := writeU32(tw, uint32(len(h.Extra))); err != nil {
			return nil, err
		}
		if _, err := tw.Write(h.Extra); err != nil {
			return nil, err
		}
		if err := writeU32(w, eng.sum()); err != nil { // raw: not tracked
			return nil, err
		}
	}

	return h, nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return newFormatError(KindTruncated, err.Error())
	}
	return err
}

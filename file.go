package lzop

import "os"

// OpenReader opens the file at path and returns a Reader over it. The
// Reader owns the file and closes it when Close is called, per spec §5
// "Ownership".
func OpenReader(path string, opts ReaderOptions) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := newReader(f, true, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// CreateWriter creates (or truncates) the file at path and returns a Writer
// over it. The Writer owns the file and closes it when Close is called.
func CreateWriter(path string, opts WriterOptions) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(f, true, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

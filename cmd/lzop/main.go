// Command lzop is a minimal CLI driver around the lzop package: compress a
// file to <input>.lzo, or decompress a .lzo file back to its original name.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-lzop/lzop"
)

func main() {
	decompress := flag.Bool("d", false, "decompress")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: lzop [-d] file")
	}
	in := flag.Arg(0)

	var err error
	if *decompress {
		err = runDecompress(in)
	} else {
		err = runCompress(in)
	}
	if err != nil {
		log.Fatalf("lzop: %v", err)
	}
}

func runCompress(in string) error {
	out := in + ".lzo"

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := lzop.CreateWriter(out, lzop.WriterOptions{Name: filepath.Base(in)})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func runDecompress(in string) error {
	out := strings.TrimSuffix(in, ".lzo")
	if out == in {
		out = in + ".uncompressed"
	}

	r, err := lzop.OpenReader(in, lzop.NewReaderOptions())
	if err != nil {
		return err
	}
	defer r.Close()

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, r)
	return err
}

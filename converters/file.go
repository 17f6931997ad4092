package converters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/lpath/core"
)

// Compression selects the codec of a graph file.
type Compression int

const (
	// None is a plain text file.
	None Compression = iota
	// Gzip is RFC 1952 gzip (".gz").
	Gzip
	// Zstd is Zstandard (".zst", ".zstd").
	Zstd
)

// CompressionFor picks the codec from the file extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	default:
		return None
	}
}

// ReadGraphFile reads a graph file, decompressing it according to its
// extension (see CompressionFor).
func ReadGraphFile(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch CompressionFor(path) {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("converters: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("converters: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadGraph(r, directed)
}

// WriteGraphFile writes g to path in the text format, compressed according
// to the extension. The file is created or truncated.
func WriteGraphFile(path string, g *core.Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("converters: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("converters: close %s: %w", path, cerr)
		}
	}()

	var wc io.WriteCloser
	switch CompressionFor(path) {
	case Gzip:
		wc = gzip.NewWriter(f)
	case Zstd:
		if wc, err = zstd.NewWriter(f); err != nil {
			return fmt.Errorf("converters: zstd %s: %w", path, err)
		}
	default:
		return WriteGraph(f, g)
	}
	if err = WriteGraph(wc, g); err != nil {
		_ = wc.Close()
		return err
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("converters: flush %s: %w", path, err)
	}

	return nil
}

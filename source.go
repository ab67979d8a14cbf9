package nuclidedata

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dataset identifies one of the reference data files a Source can
// provide.
type Dataset int

const (
	// DatasetElements is the NIST elemental data (atomic weights and
	// isotopic compositions).
	DatasetElements Dataset = iota
	// DatasetWalletCards is the NNDC Nuclear Wallet Cards file.
	DatasetWalletCards
	// DatasetMatIndex is the ENDF neutron library MAT listing.
	DatasetMatIndex
)

// String returns the dataset name for diagnostics.
func (d Dataset) String() string {
	switch d {
	case DatasetElements:
		return "elements"
	case DatasetWalletCards:
		return "wallet-cards"
	case DatasetMatIndex:
		return "mat-index"
	default:
		return "unknown"
	}
}

// DefaultNames are the conventional file names tried for each dataset,
// in order. Names ending in ".gz" are decompressed transparently.
var DefaultNames = map[Dataset][]string{
	DatasetElements:    {"nist-nuclide-data.txt", "nist-nuclide-data.txt.gz"},
	DatasetWalletCards: {"nuclear-wallet-cards.txt.gz", "nuclear-wallet-cards.txt"},
	DatasetMatIndex:    {"n-ENDF-B-VII.1.endf.list"},
}

// Source locates reference data files by dataset role.
type Source interface {
	// Open returns the dataset content, already decompressed, plus the
	// path it came from for diagnostics, or fs.ErrNotExist.
	Open(d Dataset) (io.ReadCloser, string, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	names map[Dataset][]string
}

func defaultSourceConfig() sourceConfig {
	names := make(map[Dataset][]string, len(DefaultNames))
	for d, ns := range DefaultNames {
		names[d] = append([]string(nil), ns...)
	}
	return sourceConfig{names: names}
}

// WithDatasetNames overrides the file names tried for a dataset.
func WithDatasetNames(d Dataset, names ...string) SourceOption {
	return func(c *sourceConfig) { c.names[d] = names }
}

// --- Dir Source (single directory) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source that looks the datasets up in a single
// directory under their conventional names.
func Dir(path string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...SourceOption) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) Open(d Dataset) (io.ReadCloser, string, error) {
	for _, name := range s.config.names[d] {
		fullPath := filepath.Join(s.path, name)
		f, err := os.Open(fullPath)
		if err == nil {
			return maybeGzip(f, fullPath)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fullPath, err
		}
	}
	return nil, "", fs.ErrNotExist
}

// --- Files Source (explicit paths) ---

type filesSource struct {
	paths map[Dataset]string
}

// Files creates a Source from explicit file paths. Empty paths mark a
// dataset as not provided; matPath in particular may be "".
func Files(elementsPath, walletPath, matPath string) Source {
	paths := make(map[Dataset]string)
	if elementsPath != "" {
		paths[DatasetElements] = elementsPath
	}
	if walletPath != "" {
		paths[DatasetWalletCards] = walletPath
	}
	if matPath != "" {
		paths[DatasetMatIndex] = matPath
	}
	return &filesSource{paths: paths}
}

func (s *filesSource) Open(d Dataset) (io.ReadCloser, string, error) {
	path, ok := s.paths[d]
	if !ok {
		return nil, "", fs.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return maybeGzip(f, path)
}

// --- FS Source (for embed.FS, testing, http filesystems) ---

type fsSource struct {
	name   string
	fsys   fs.FS
	config sourceConfig
}

// FS creates a Source backed by an fs.FS (e.g. embed.FS). The name is
// used for error messages and path reporting.
func FS(name string, fsys fs.FS, opts ...SourceOption) Source {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &fsSource{name: name, fsys: fsys, config: cfg}
}

func (s *fsSource) Open(d Dataset) (io.ReadCloser, string, error) {
	for _, name := range s.config.names[d] {
		f, err := s.fsys.Open(name)
		if err == nil {
			return maybeGzip(f, s.name+":"+name)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, s.name + ":" + name, err
		}
	}
	return nil, "", fs.ErrNotExist
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one.
// Open() tries each source in order, returning the first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) Open(d Dataset) (io.ReadCloser, string, error) {
	for _, src := range s.sources {
		r, path, err := src.Open(d)
		if err == nil {
			return r, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	return nil, "", fs.ErrNotExist
}

// --- Helpers ---

// maybeGzip wraps the reader in a gzip decompressor when the path says
// so. The returned closer closes both readers.
func maybeGzip(rc io.ReadCloser, path string) (io.ReadCloser, string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return rc, path, nil
	}
	zr, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, path, fmt.Errorf("opening %s: %w", path, err)
	}
	return &gzipReadCloser{zr: zr, inner: rc}, path, nil
}

type gzipReadCloser struct {
	zr    *gzip.Reader
	inner io.ReadCloser
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	err := g.zr.Close()
	if cerr := g.inner.Close(); err == nil {
		err = cerr
	}
	return err
}

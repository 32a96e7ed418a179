package catalogs

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/moviemap/internal/embedded"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
)

// Format identifies the encoding of a dataset.
type Format string

// Supported dataset formats.
const (
	FormatUnknown Format = ""
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// FormatFromPath infers the dataset format from a file extension.
func FormatFromPath(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Load reads the dataset bundled with the binary.
func Load() (*Catalog, error) {
	name := path.Join(constants.DatasetDir, constants.DatasetName)
	return loadFS(embedded.FS, name, "embedded:"+constants.DatasetName)
}

// LoadFS reads a dataset from any filesystem. The format follows the file
// extension of name.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	return loadFS(fsys, name, "fs:"+name)
}

// LoadFile reads a dataset from disk.
func LoadFile(filename string) (*Catalog, error) {
	dir, base := filepath.Split(filepath.Clean(filename))
	if dir == "" {
		dir = "."
	}
	return loadFS(os.DirFS(dir), base, "file:"+filename)
}

func loadFS(fsys fs.FS, name, source string) (*Catalog, error) {
	start := time.Now()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &errors.NotFoundError{Resource: "dataset", ID: name, Err: err}
		}
		return nil, errors.WrapIO("read", name, err)
	}

	movies, err := decode(data, FormatFromPath(name), name)
	if err != nil {
		return nil, err
	}

	cat, err := New(movies, WithSource(source), WithLoadedAt(start))
	if err != nil {
		return nil, wrapSchema(FormatFromPath(name), name, err)
	}
	return cat, nil
}

// Parse decodes a dataset held in memory.
// Every failure satisfies errors.IsDecodeError.
func Parse(data []byte, format Format, opts ...Option) (*Catalog, error) {
	movies, err := decode(data, format, "")
	if err != nil {
		return nil, err
	}

	cat, err := New(movies, append([]Option{WithSource("bytes")}, opts...)...)
	if err != nil {
		return nil, wrapSchema(format, "", err)
	}
	return cat, nil
}

// decode unmarshals an array of movie records. The document must be a
// non-empty array; an absent array is not an empty catalog.
func decode(data []byte, format Format, file string) ([]Movie, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.NewParseError(format.String(), file, "dataset is empty", nil)
	}

	var movies []Movie
	switch format {
	case FormatJSON:
		if trimmed[0] != '[' {
			return nil, errors.NewParseError(format.String(), file, "dataset must be an array of movie records", nil)
		}
		if err := json.Unmarshal(trimmed, &movies); err != nil {
			return nil, errors.WrapParse(format.String(), file, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(trimmed, &movies); err != nil {
			return nil, errors.WrapParse(format.String(), file, err)
		}
		if movies == nil {
			return nil, errors.NewParseError(format.String(), file, "dataset must be a sequence of movie records", nil)
		}
	default:
		return nil, errors.NewParseError(format.String(), file, "unsupported dataset format", nil)
	}
	return movies, nil
}

// wrapSchema reports a record-level violation as a decode failure.
func wrapSchema(format Format, file string, err error) error {
	return errors.NewParseError(format.String(), file, err.Error(), err)
}

package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/periodix/pkg/errors"
)

// Format identifies a dataset file encoding.
type Format string

// Supported dataset formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// file is the on-disk envelope shared by every format:
//
//	elements:
//	  - symbol: H
//	    name: Hydrogen
//	    mass: "1.00794"
//	    column: 1
//	    row: 1
type file struct {
	Elements Dataset `json:"elements" yaml:"elements" toml:"elements"`
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported dataset file extension: %q", filepath.Ext(path))
	}
}

// Load reads and validates a dataset file. The format is chosen from the
// file extension.
func Load(path string) (Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read dataset %s", path)
	}

	d, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode dataset %s", path)
	}
	return d, nil
}

// Decode reads a dataset envelope in the given format and validates it.
//
// A JSON document may also be a bare flat array using the stride-five layout
// accepted by [FromFlat].
func Decode(r io.Reader, format Format) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f file
	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var flat []any
			if err := json.Unmarshal(trimmed, &flat); err != nil {
				return nil, err
			}
			d, err := FromFlat(flat)
			if err != nil {
				return nil, err
			}
			return d, d.Validate()
		}
		err = json.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported dataset format: %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := f.Elements.Validate(); err != nil {
		return nil, err
	}
	return f.Elements, nil
}

// Encode writes d in the given format using the same envelope [Decode] reads.
func Encode(w io.Writer, d Dataset, format Format) error {
	f := file{Elements: d}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported dataset format: %q", format)
	}
}

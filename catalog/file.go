package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/namer"
	"github.com/neuronlabs/trackable/registry"
)

// Format is the catalog file format.
type Format string

// Supported catalog file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses the format 'name'.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Newf(class.CatalogFileFormat, "unsupported catalog format: '%s'", name)
}

// FormatOf gets the format of the catalog file from its extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// File is the catalog file content.
type File struct {
	Entries []Entry `toml:"entries" yaml:"entries" json:"entries"`
}

// ReadFile reads the catalog entries from the file at 'path'. Unknown keys are not allowed.
func ReadFile(path string) ([]Entry, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(class.CatalogFileRead, err, "reading catalog file failed")
	}
	f, err := decode(format, data)
	if err != nil {
		return nil, errors.Wrap(class.CatalogFileFormat, err, "decoding catalog file failed").
			WithDetailf("catalog file: '%s'", path)
	}
	return f.Entries, nil
}

// LoadFile reads the catalog file at 'path' and registers its declarations within the registry 'r'.
// All the entries are validated before any of them is registered. Codeless error declarations
// are returned but never registered.
func LoadFile(r *registry.Registry, path string) ([]registry.Definition, error) {
	entries, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var (
		definitions []registry.Definition
		errs        errors.MultiError
	)
	for i := range entries {
		d, err := entries[i].Definition()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		definitions = append(definitions, d)
	}
	if err = errs.ErrorOrNil(); err != nil {
		logger.Errorf("Catalog file: '%s' contains invalid declarations: %v", path, err)
		return nil, err
	}

	for _, d := range definitions {
		if d.Code() == "" {
			continue
		}
		if err = r.Register(d); err != nil {
			logger.Errorf("Registering declaration: '%s' from file: '%s' failed: %v", d.Name(), path, err)
			return nil, err
		}
	}
	logger.Debugf("Loaded: %d declarations from catalog file: '%s'", len(definitions), path)
	return definitions, nil
}

// Export writes the 'entries' in the provided 'format'. The entry names are converted
// with the naming convention 'naming'.
func Export(w io.Writer, format Format, naming string, entries []Entry) error {
	n, err := namer.Get(naming)
	if err != nil {
		return err
	}
	f := File{Entries: make([]Entry, len(entries))}
	for i, e := range entries {
		e.Name = n(e.Name)
		f.Entries[i] = e
	}

	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(f); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(f)
	default:
		return errors.Newf(class.CatalogFileFormat, "unsupported catalog format: '%s'", format)
	}
	if err != nil {
		return errors.Wrap(class.CatalogFileEncode, err, "encoding catalog failed")
	}
	return nil
}

func decode(format Format, data []byte) (*File, error) {
	f := &File{}
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf(class.CatalogFileFormat, "unknown catalog keys: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && err != io.EOF {
			return nil, err
		}
	case FormatJSON:
		dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

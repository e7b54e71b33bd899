package samples

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/jsontypings/pkg/errors"
)

// Format is the encoding of a sample document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from a file extension. Anything that is
// not .yaml or .yml is read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat parses a format name. The empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: json, yaml)", s)
	}
}

// Document is the raw content of one sample file.
type Document struct {
	Name   string `json:"name"`
	Format Format `json:"format"`
	Data   []byte `json:"data"`
}

// Input is the set of documents read from one path.
type Input struct {
	// Path is the file or directory the documents were read from.
	Path string

	// Dir is true when Path is a directory. In that case every document is
	// one sample and top-level arrays are not split.
	Dir bool

	Documents []Document
}

// Split returns one file-mode Input per document, in order.
func (in Input) Split() []Input {
	out := make([]Input, len(in.Documents))
	for i, doc := range in.Documents {
		out[i] = Input{Path: doc.Name, Documents: []Document{doc}}
	}
	return out
}

// Bytes returns the total size of all documents.
func (in Input) Bytes() int {
	n := 0
	for _, doc := range in.Documents {
		n += len(doc.Data)
	}
	return n
}

var extensions = []string{".json", ".yaml", ".yml"}

// ReadPath reads the sample documents at path. A missing path yields an
// [errors.ErrCodeFileNotFound] error.
func ReadPath(path string) (Input, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "sample path %s", path)
	}
	if err != nil {
		return Input{}, err
	}

	if !info.IsDir() {
		doc, err := ReadFile(path)
		if err != nil {
			return Input{}, err
		}
		return Input{Path: path, Documents: []Document{doc}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Input{}, err
	}
	in := Input{Path: path, Dir: true}
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		doc, err := ReadFile(filepath.Join(path, e.Name()))
		if err != nil {
			return Input{}, err
		}
		in.Documents = append(in.Documents, doc)
	}
	return in, nil
}

// ReadFile reads a single sample file.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "sample file %s", path)
	}
	if err != nil {
		return Document{}, err
	}
	return Document{Name: path, Format: DetectFormat(path), Data: data}, nil
}

// Samples decodes every document of in, applies query when it is not
// empty and returns the resulting samples in document order.
func (in Input) Samples(query string) ([]any, error) {
	var sel *Selector
	if query != "" {
		var err error
		if sel, err = NewSelector(query); err != nil {
			return nil, err
		}
	}

	var out []any
	for _, doc := range in.Documents {
		values, err := Decode(doc)
		if err != nil {
			return nil, err
		}
		if sel != nil {
			if values, err = sel.Run(doc.Name, values); err != nil {
				return nil, err
			}
		}
		if !in.Dir && len(values) == 1 {
			if arr, ok := values[0].([]any); ok {
				values = arr
			}
		}
		out = append(out, values...)
	}
	return out, nil
}

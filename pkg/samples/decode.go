package samples

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Decode returns the top-level values of doc. JSON input may hold several
// concatenated values and YAML input several documents.
//
// Objects decode to *typing.Map, JSON numbers to json.Number and YAML
// numbers to int64 or float64.
func Decode(doc Document) ([]any, error) {
	var (
		values []any
		err    error
	)
	switch doc.Format {
	case FormatYAML:
		values, err = decodeYAML(doc.Data)
	default:
		values, err = decodeJSON(doc.Data)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", doc.Name)
	}
	return values, nil
}

// DecodeJSON decodes a single JSON document.
func DecodeJSON(data []byte) (any, error) {
	values, err := decodeJSON(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON")
	}
	switch len(values) {
	case 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "decode JSON: empty document")
	case 1:
		return values[0], nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "decode JSON: expected one document, found %d", len(values))
	}
}

// ---- JSON ----

func decodeJSON(data []byte) ([]any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values []any
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

func jsonValue(dec *j.Decoder, tok any) (any, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected delimiter %q", rune(t))
	case j.Number:
		return json.Number(string(t)), nil
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case string, bool, nil:
		return t, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected token %v", tok)
}

func jsonObject(dec *j.Decoder) (*typing.Map, error) {
	m := &typing.Map{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "object key must be a string, got %v", tok)
		}
		if tok, err = dec.Token(); err != nil {
			return nil, err
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func jsonArray(dec *j.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// ---- YAML ----

func decodeYAML(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var values []any
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if err == io.EOF {
				return values, nil
			}
			return nil, err
		}
		v, err := yamlValue(&node)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := &typing.Map{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(n.Content[i].Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	default:
		return yamlScalar(n)
	}
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var f float64
		err := n.Decode(&f)
		return f, err
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return n.Value, nil
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

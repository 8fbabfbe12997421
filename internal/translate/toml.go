package translate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aios/internal/errors"
)

// Format is an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates an output format other than yaml, json or toml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a --output value. Matching is case-insensitive and
// "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (valid: yaml, json, toml)", s)
	}
}

// Convert re-encodes YAML data as format. YAML input is returned unchanged,
// comments included.
func Convert(yamlData []byte, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yamlData, nil
	case FormatJSON:
		return YAMLToJSON(yamlData)
	case FormatTOML:
		return YAMLToTOML(yamlData)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// YAMLToTOML converts YAML data to TOML data. TOML has no null, so null
// values are left out.
func YAMLToTOML(yamlData []byte) ([]byte, error) {
	data, err := decodeYAML(yamlData)
	if err != nil {
		return nil, err
	}
	out, err := toml.Marshal(dropNulls(data))
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return out, nil
}

// YAMLToJSON converts YAML data to indented JSON.
func YAMLToJSON(yamlData []byte) ([]byte, error) {
	data, err := decodeYAML(yamlData)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, errors.Wrap(err, "marshaling json")
	}
	return buf.Bytes(), nil
}

func decodeYAML(yamlData []byte) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(yamlData, &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling yaml")
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = dropNulls(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			if val != nil {
				out = append(out, dropNulls(val))
			}
		}
		return out
	default:
		return v
	}
}

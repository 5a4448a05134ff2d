package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/pkg/trie"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension is not
	// .yaml, .yml, .toml or .json.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")

	// ErrNoEntries is returned for manifests without any entry.
	ErrNoEntries = errors.New("manifest has no entries")
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Manifest is a matcher definition: its configuration plus its entries.
type Manifest struct {
	matchgen.Config `mapstructure:",squash"`

	// Escaped makes keys use Go string escapes.
	Escaped bool `mapstructure:"escaped"`
	// Output is the file generate writes to when no --out flag is given,
	// relative to the manifest.
	Output string `mapstructure:"output"`

	Entries []trie.Entry `mapstructure:"-"`
	// Path is the file the manifest was read from.
	Path string `mapstructure:"-"`
}

// OutputPath resolves Output against the manifest's directory.
func (m *Manifest) OutputPath() string {
	if m.Output == "" || filepath.IsAbs(m.Output) || m.Path == "" {
		return m.Output
	}
	return filepath.Join(filepath.Dir(m.Path), m.Output)
}

// Matcher builds a matchgen.Matcher holding every entry of the manifest.
func (m *Manifest) Matcher(opts ...matchgen.Option) (*matchgen.Matcher, error) {
	mt, err := matchgen.New(m.Config, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Path, err)
	}
	if err := mt.Extend(m.Entries...); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Path, err)
	}
	return mt, nil
}

// Load reads the manifest at path, choosing the decoder by extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(path, format, data)
}

// Parse decodes a manifest. source names the data in errors.
func Parse(source string, format Format, data []byte) (*Manifest, error) {
	raw, err := decodeMap(source, format, data)
	if err != nil {
		return nil, err
	}

	rawEntries := raw["entries"]
	delete(raw, "entries")

	m := &Manifest{Path: source}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      m,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	m.Entries, err = decodeEntries(rawEntries, m.Escaped)
	if err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoEntries)
	}
	return m, nil
}

func decodeMap(source string, format Format, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, pe.Column = derr.Position()
			}
			return nil, pe
		}
	case FormatJSON:
		if err := decodeJSON(data, &raw); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var serr *json.SyntaxError
			if errors.As(err, &serr) {
				pe.Line, pe.Column = position(data, serr.Offset)
			}
			return nil, pe
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// decodeJSON decodes a single JSON document into v. Numbers are kept as
// json.Number so integers beyond 2^53 reach the generated code intact.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		// Something follows the document; json.Unmarshal reports where.
		return json.Unmarshal(data, new(any))
	}
	return nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte("\n")) + 1
	col = int(offset) - (bytes.LastIndexByte(head, '\n') + 1)
	return line, col
}

type rawEntry struct {
	Key   any `mapstructure:"key"`
	Value any `mapstructure:"value"`
}

func decodeEntries(raw any, escaped bool) ([]trie.Entry, error) {
	var list []rawEntry
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		if err := mapstructure.Decode(v, &list); err != nil {
			return nil, fmt.Errorf("entries: %w", err)
		}
	case map[string]any:
		for k, val := range v {
			list = append(list, rawEntry{Key: k, Value: val})
		}
	case map[any]any:
		// YAML maps with a non-string key, such as true: or 404:.
		for k, val := range v {
			list = append(list, rawEntry{Key: k, Value: val})
		}
	default:
		return nil, fmt.Errorf("entries: want a list or a map, got %T", raw)
	}
	if _, isList := raw.([]any); !isList {
		// Map iteration is random; keep error reports stable.
		sort.SliceStable(list, func(i, j int) bool {
			return sortKey(list[i].Key) < sortKey(list[j].Key)
		})
	}

	entries := make([]trie.Entry, 0, len(list))
	for i, e := range list {
		name, err := keyString(e.Key)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		value, err := valueExpr(e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, name, err)
		}
		key := []byte(name)
		if escaped {
			if key, err = Unescape(name); err != nil {
				return nil, fmt.Errorf("entry %d (%q): %w", i, name, err)
			}
		}
		entries = append(entries, trie.Entry{Key: key, Value: value})
	}
	return entries, nil
}

// keyString spells a decoded scalar key the way it was written. YAML and
// TOML hand over true or 404 as typed values.
func keyString(k any) (string, error) {
	switch k := k.(type) {
	case string:
		return k, nil
	case nil:
		return "", errors.New("missing key")
	}
	s, err := scalarText(k)
	if err != nil {
		return "", fmt.Errorf("key must be a scalar, got %T", k)
	}
	return s, nil
}

func sortKey(k any) string {
	s, _ := keyString(k)
	return s
}

// scalarText writes a decoded bool or number back in Go syntax.
func scalarText(v any) (string, error) {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case json.Number:
		return v.String(), nil
	}
	return "", fmt.Errorf("unsupported scalar %T", v)
}

// valueExpr turns a decoded scalar into the Go expression it spells.
// Numbers and booleans are written back in Go syntax; strings are taken
// verbatim.
func valueExpr(v any) (string, error) {
	switch v := v.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", errors.New("empty value")
		}
		return v, nil
	case nil:
		return "", errors.New("missing value")
	}
	s, err := scalarText(v)
	if err != nil {
		return "", fmt.Errorf("value must be a scalar, got %T", v)
	}
	return s, nil
}

// Unescape decodes Go string escapes in s. Unlike strconv.Unquote it
// accepts bare quote characters.
func Unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for len(s) > 0 {
		if s[0] == '"' || s[0] == '\'' {
			out = append(out, s[0])
			s = s[1:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return nil, fmt.Errorf("bad escape near %q: %w", s, err)
		}
		if multibyte {
			out = utf8.AppendRune(out, r)
		} else {
			out = append(out, byte(r))
		}
		s = tail
	}
	return out, nil
}

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/matchgen/pkg/trie"
)

// entity is one record of the WHATWG entities.json table.
type entity struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

// LoadEntities reads an HTML named character reference table in the shape
// of https://html.spec.whatwg.org/entities.json. Each name becomes a key and
// its characters a quoted Go string value.
func LoadEntities(path string) ([]trie.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entities %s: %w", path, err)
	}
	return ParseEntities(path, data)
}

// ParseEntities decodes an entity table. source names the data in errors.
func ParseEntities(source string, data []byte) ([]trie.Entry, error) {
	var table map[string]entity
	if err := json.Unmarshal(data, &table); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var serr *json.SyntaxError
		if errors.As(err, &serr) {
			pe.Line, pe.Column = position(data, serr.Offset)
		}
		return nil, pe
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoEntries)
	}

	entries := make([]trie.Entry, 0, len(table))
	for name, e := range table {
		entries = append(entries, trie.Entry{
			Key:   []byte(name),
			Value: strconv.Quote(e.Characters),
		})
	}
	return entries, nil
}

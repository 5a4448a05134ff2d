package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/pkg/trie"
)

// ErrBadPair is returned for a key=value argument without "=" or key.
var ErrBadPair = errors.New("expected key=value")

// KV generates a matcher from key=value arguments. Values become quoted Go
// strings unless raw is set, in which case they are used as expressions.
func KV(env Env, cfg matchgen.Config, pairs []string, raw bool, out Output) error {
	entries, err := ParsePairs(pairs, raw)
	if err != nil {
		return err
	}

	m, err := matchgen.New(cfg, matchgen.WithLogger(env.logger()))
	if err != nil {
		return err
	}
	if err := m.Extend(entries...); err != nil {
		return err
	}
	return emit(env, m, out)
}

// ParsePairs splits each argument at its first "=".
func ParsePairs(pairs []string, raw bool) ([]trie.Entry, error) {
	entries := make([]trie.Entry, 0, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w, got %q", ErrBadPair, p)
		}
		if !raw {
			value = strconv.Quote(value)
		}
		entries = append(entries, trie.Entry{Key: []byte(key), Value: value})
	}
	return entries, nil
}

package matchgen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/aretw0/matchgen/internal/codegen"
	"github.com/aretw0/matchgen/internal/logging"
	"github.com/aretw0/matchgen/pkg/trie"
)

// Matcher collects entries and renders them as a longest-prefix matcher.
type Matcher struct {
	cfg     Config
	builder *trie.Builder
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Matcher.
type Option func(*Matcher)

// WithLogger sets a custom structured logger for the matcher.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// New validates cfg and returns an empty Matcher.
func New(cfg Config, opts ...Option) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher{cfg: cfg, builder: trie.NewBuilder()}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	m.logger = m.logger.With("func", cfg.FuncName)
	return m, nil
}

// Config returns the validated configuration, defaults included.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Add registers key with a Go expression for its value.
func (m *Matcher) Add(key []byte, value string) error {
	return m.builder.Add(key, value)
}

// AddString is Add for string keys.
func (m *Matcher) AddString(key, value string) error {
	return m.builder.AddString(key, value)
}

// Extend adds every entry, reporting all failures together.
func (m *Matcher) Extend(entries ...trie.Entry) error {
	return m.builder.Extend(entries...)
}

// Len returns the number of registered entries.
func (m *Matcher) Len() int {
	return m.builder.Len()
}

// Tree freezes the matcher and returns its trie. Entries can no longer be
// added afterwards.
func (m *Matcher) Tree() *trie.Tree {
	return m.builder.Build()
}

// Render writes the generated function to w. With Config.Package set the
// output is a complete file with a generated-code header.
//
// Render freezes the matcher. It may be called any number of times and
// always produces the same text.
func (m *Matcher) Render(w io.Writer) error {
	tree := m.Tree()
	code := m.generator().Generate(tree, m.options())

	var err error
	if m.cfg.Package != "" {
		err = codegen.RenderFile(w, m.cfg.Package, code)
	} else {
		err = codegen.Render(w, code)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", m.cfg.FuncName, err)
	}

	stats := tree.Stats()
	m.logger.Debug("Matcher rendered",
		"strategy", m.Strategy(),
		"entries", stats.Entries,
		"nodes", stats.Nodes,
		"depth", stats.MaxDepth,
		"key_bytes", stats.KeyBytes,
	)
	return nil
}

// String renders the matcher, returning the error text in place of the
// source if rendering fails.
func (m *Matcher) String() string {
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

// WriteFile renders into a buffer and writes it to path only on success,
// so a failed run never truncates an existing file.
func (m *Matcher) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	m.logger.Info("File written", "path", path, "bytes", buf.Len())
	return nil
}

func (m *Matcher) generator() codegen.Generator {
	switch {
	case m.cfg.Input == InputCursor:
		return codegen.Cursor{}
	case m.cfg.Strategy == StrategyFlat:
		return codegen.Flat{}
	default:
		return codegen.Tree{}
	}
}

// Strategy names the generator in use: "tree", "flat" or "cursor".
func (m *Matcher) Strategy() string {
	if m.cfg.Input == InputCursor {
		return string(InputCursor)
	}
	return string(m.cfg.Strategy)
}

func (m *Matcher) options() codegen.Options {
	return codegen.Options{
		FuncName:  m.cfg.FuncName,
		ValueType: m.cfg.ValueType,
		InputType: m.cfg.InputType,
		Count:     m.cfg.Result == ResultCount,
		Doc:       m.cfg.Doc,
		Nolint:    m.cfg.Nolint,
	}
}

// Code returns the generated declaration for embedding into a larger
// jennifer file.
func (m *Matcher) Code() jen.Code {
	return m.generator().Generate(m.Tree(), m.options())
}

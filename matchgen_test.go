package matchgen_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/matchgen"
	"github.com/aretw0/matchgen/pkg/trie"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     matchgen.Config
		wantErr string
	}{
		{"Defaults", matchgen.Config{FuncName: "f", ValueType: "int"}, ""},
		{"String Input", matchgen.Config{FuncName: "f", ValueType: "int", InputType: "string"}, ""},
		{"Flat Count", matchgen.Config{FuncName: "f", ValueType: "int", Strategy: "flat", Result: "count"}, ""},
		{"Cursor", matchgen.Config{FuncName: "f", ValueType: "*Token", Input: "cursor"}, ""},
		{"Qualified Value Type", matchgen.Config{FuncName: "f", ValueType: "map[string]token.Kind"}, ""},
		{"Package", matchgen.Config{FuncName: "f", ValueType: "int", Package: "html"}, ""},
		{"Missing Func", matchgen.Config{ValueType: "int"}, `func name "" is not a Go identifier`},
		{"Bad Func", matchgen.Config{FuncName: "9f", ValueType: "int"}, `func name "9f"`},
		{"Missing Type", matchgen.Config{FuncName: "f"}, "value type is required"},
		{"Bad Type", matchgen.Config{FuncName: "f", ValueType: "[]"}, `value type "[]"`},
		{"Bad Package", matchgen.Config{FuncName: "f", ValueType: "int", Package: "my-pkg"}, `package name "my-pkg"`},
		{"Bad Input Type", matchgen.Config{FuncName: "f", ValueType: "int", InputType: "[]rune"}, `input type "[]rune"`},
		{"Cursor With Input Type", matchgen.Config{FuncName: "f", ValueType: "int", Input: "cursor", InputType: "string"}, "only valid for slice input"},
		{"Cursor Flat", matchgen.Config{FuncName: "f", ValueType: "int", Input: "cursor", Strategy: "flat"}, `strategy "flat" is only valid`},
		{"Unknown Input", matchgen.Config{FuncName: "f", ValueType: "int", Input: "stream"}, `unknown input "stream"`},
		{"Unknown Strategy", matchgen.Config{FuncName: "f", ValueType: "int", Strategy: "dfa"}, `unknown strategy "dfa"`},
		{"Tree Count", matchgen.Config{FuncName: "f", ValueType: "int", Result: "count"}, "requires the flat strategy"},
		{"Unknown Result", matchgen.Config{FuncName: "f", ValueType: "int", Result: "index"}, `unknown result "index"`},
		{"Cursor Type Param", matchgen.Config{FuncName: "f", ValueType: "[]C", Input: "cursor"}, "C names a type parameter"},
		{"Cursor Qualified P", matchgen.Config{FuncName: "f", ValueType: "*image.P", Input: "cursor"}, ""},
		{"Slice Type P", matchgen.Config{FuncName: "f", ValueType: "P"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, matchgen.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := matchgen.Config{Strategy: "dfa"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "func name")
	assert.Contains(t, err.Error(), "value type is required")
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := matchgen.Config{FuncName: "f", ValueType: "int"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, matchgen.InputSlice, cfg.Input)
	assert.Equal(t, matchgen.InputBytes, cfg.InputType)
	assert.Equal(t, matchgen.StrategyTree, cfg.Strategy)
	assert.Equal(t, matchgen.ResultRemainder, cfg.Result)

	cur := matchgen.Config{FuncName: "f", ValueType: "int", Input: matchgen.InputCursor}
	require.NoError(t, cur.Validate())
	assert.Empty(t, cur.InputType)
}

func TestNew_InvalidConfig(t *testing.T) {
	m, err := matchgen.New(matchgen.Config{FuncName: "f"})
	assert.ErrorIs(t, err, matchgen.ErrInvalidConfig)
	assert.Nil(t, m)
}

func newMatcher(t *testing.T, cfg matchgen.Config, pairs ...string) *matchgen.Matcher {
	t.Helper()
	m, err := matchgen.New(cfg)
	require.NoError(t, err)
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, m.AddString(pairs[i], pairs[i+1]))
	}
	return m
}

func TestMatcher_AddErrors(t *testing.T) {
	m := newMatcher(t, matchgen.Config{FuncName: "f", ValueType: "int"}, "a", "1")

	assert.ErrorIs(t, m.AddString("", "0"), trie.ErrEmptySequence)
	assert.ErrorIs(t, m.AddString("a", "2"), trie.ErrDuplicateSequence)

	err := m.Extend(
		trie.Entry{Key: []byte("b"), Value: "2"},
		trie.Entry{Key: []byte("a"), Value: "3"},
		trie.Entry{Key: []byte("c"), Value: "4"},
	)
	assert.ErrorIs(t, err, trie.ErrDuplicateSequence)
	assert.Equal(t, 3, m.Len())

	// The first value survives the rejected duplicate.
	assert.Contains(t, m.String(), "return 1, in[1:], true")
}

func TestMatcher_FrozenAfterRender(t *testing.T) {
	m := newMatcher(t, matchgen.Config{FuncName: "f", ValueType: "int"}, "a", "1")
	first := m.String()

	assert.ErrorIs(t, m.AddString("b", "2"), trie.ErrFrozen)
	assert.Equal(t, first, m.String())
}

func TestMatcher_Strategies(t *testing.T) {
	pairs := []string{"&amp;", "'&'", "&lt;", "'<'"}

	tests := []struct {
		name string
		cfg  matchgen.Config
		want []string
	}{
		{
			name: "Tree",
			cfg:  matchgen.Config{FuncName: "decode", ValueType: "rune"},
			want: []string{"func decode(in []byte) (v rune, rest []byte, ok bool)", "switch in[1] {"},
		},
		{
			name: "Tree String",
			cfg:  matchgen.Config{FuncName: "decode", ValueType: "rune", InputType: "string"},
			want: []string{"func decode(in string) (v rune, rest string, ok bool)"},
		},
		{
			name: "Flat",
			cfg:  matchgen.Config{FuncName: "decode", ValueType: "rune", Strategy: "flat"},
			want: []string{`string(in[:5]) == "&amp;"`, "return '&', in[5:], true"},
		},
		{
			name: "Flat Count",
			cfg:  matchgen.Config{FuncName: "decode", ValueType: "rune", Strategy: "flat", Result: "count"},
			want: []string{"(v rune, n int, ok bool)", "return '<', 4, true"},
		},
		{
			name: "Cursor",
			cfg:  matchgen.Config{FuncName: "decode", ValueType: "rune", Input: "cursor"},
			want: []string{"](it P) (v rune, ok bool)", "mark0 := *it", "*it = mark0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newMatcher(t, tt.cfg, pairs...).String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestMatcher_RenderPackage(t *testing.T) {
	m := newMatcher(t, matchgen.Config{
		FuncName:  "decodeEntity",
		ValueType: "rune",
		Package:   "html",
		Doc:       "decodeEntity decodes a named character reference.",
	}, "&amp;", "'&'", "&lt;", "'<'")

	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Code generated by matchgen. DO NOT EDIT.\n"), out)
	assert.Contains(t, out, "package html\n")
	assert.Contains(t, out, "// decodeEntity decodes a named character reference.\nfunc decodeEntity(")

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "html_gen.go", out, parser.ParseComments)
	require.NoError(t, err)
	_, err = (&types.Config{}).Check("html", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
}

func TestMatcher_RenderError(t *testing.T) {
	m := newMatcher(t, matchgen.Config{FuncName: "f", ValueType: "int"}, "a", "1 +")
	err := m.Render(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render f")
}

func TestMatcher_WriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match_gen.go")

	m := newMatcher(t, matchgen.Config{FuncName: "match", ValueType: "int", Package: "gen"}, "a", "1")
	require.NoError(t, m.WriteFile(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.String(), string(got))

	t.Run("Keeps Existing File On Failure", func(t *testing.T) {
		bad := newMatcher(t, matchgen.Config{FuncName: "match", ValueType: "int", Package: "gen"}, "a", "1 +")
		require.Error(t, bad.WriteFile(path))

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, got, after)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		err := m.WriteFile(filepath.Join(dir, "missing", "x.go"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMatcher_LogsRender(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := matchgen.New(matchgen.Config{FuncName: "decode", ValueType: "rune", Strategy: "flat"}, matchgen.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, m.AddString("&lt;", "'<'"))
	require.NoError(t, m.Render(&bytes.Buffer{}))

	out := logs.String()
	assert.Contains(t, out, `msg="Matcher rendered"`)
	assert.Contains(t, out, "func=decode")
	assert.Contains(t, out, "strategy=flat")
	assert.Contains(t, out, "entries=1")
	assert.Contains(t, out, "nodes=5")
}

func TestMatcher_Deterministic(t *testing.T) {
	cfg := matchgen.Config{FuncName: "decode", ValueType: "rune", Input: "cursor"}
	a := newMatcher(t, cfg, "&amp;", "'&'", "&lt;", "'<'", "&", "'?'")
	b := newMatcher(t, cfg, "&", "'?'", "&lt;", "'<'", "&amp;", "'&'")
	assert.Equal(t, a.String(), b.String())
}

// Package codegen renders a frozen trie as Go source for a longest-prefix
// matcher.
//
// Each generator first lowers the tree into a small plan (branches for the
// nested generators, ordered arms for the flat one) and then maps the plan
// one-to-one onto jennifer statements. Generators never modify the tree.
package codegen

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/aretw0/matchgen/pkg/trie"
)

// Identifiers used inside generated functions.
const (
	inputName  = "in"
	cursorName = "it"
	valueName  = "v"
	restName   = "rest"
	countName  = "n"
	okName     = "ok"
	moreName   = "more"

	// Type parameters of cursor matchers.
	elemParam   = "C"
	cursorParam = "P"

	// Per-depth locals of cursor matchers: markN holds the checkpoint and
	// bN the byte read at depth N.
	markPrefix = "mark"
	bytePrefix = "b"
)

// ReservedNames are the identifiers a generated function declares, besides
// the per-depth markN and bN of cursor matchers. A value expression naming
// one of them refers to the generated local, not to a package-level
// declaration of the same name.
var ReservedNames = []string{
	elemParam, cursorParam,
	inputName, cursorName, valueName, restName, countName, okName, moreName,
}

// CursorTypeParams are the type parameters of cursor matchers.
var CursorTypeParams = []string{elemParam, cursorParam}

// IsReserved reports whether name is declared inside some generated
// function.
func IsReserved(name string) bool {
	if slices.Contains(ReservedNames, name) {
		return true
	}
	for _, prefix := range []string{markPrefix, bytePrefix} {
		if digits, ok := strings.CutPrefix(name, prefix); ok && digits != "" && strings.Trim(digits, "0123456789") == "" {
			return true
		}
	}
	return false
}

// HeaderComment marks files written in package mode.
const HeaderComment = "Code generated by matchgen. DO NOT EDIT."

const nolintDirective = "//nolint:gocyclo,gocognit,funlen,maintidx,nestif"

// Options describe the emitted function. They are validated by the caller.
type Options struct {
	FuncName  string
	ValueType string
	// InputType is "[]byte" or "string". Ignored by the cursor generator.
	InputType string
	// Count returns the number of consumed bytes instead of the remainder.
	Count  bool
	Doc    string
	Nolint bool
}

// Generator renders a tree as one function declaration.
type Generator interface {
	Generate(t *trie.Tree, o Options) *jen.Statement
}

// Render writes code as a formatted declaration, followed by a newline.
func Render(w io.Writer, code *jen.Statement) error {
	if err := code.Render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// RenderFile writes a complete Go file in package pkg holding code.
func RenderFile(w io.Writer, pkg string, code ...jen.Code) error {
	f := jen.NewFile(pkg)
	f.HeaderComment(HeaderComment)
	for _, c := range code {
		f.Add(c)
		f.Line()
	}
	return f.Render(w)
}

// declare starts a declaration with the doc comment and lint directive.
func declare(o Options) *jen.Statement {
	s := jen.Null()
	doc := docLines(o.Doc)
	for _, line := range doc {
		s.Comment(line).Line()
	}
	if o.Nolint {
		if len(doc) > 0 {
			// gofmt separates directives from doc text with a bare "//".
			s.Comment("//").Line()
		}
		s.Comment(nolintDirective).Line()
	}
	return s
}

func docLines(doc string) []string {
	doc = strings.Trim(doc, "\n")
	if strings.TrimSpace(doc) == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			// Rendered verbatim, so a blank line becomes a bare "//".
			line = "//"
		}
		lines[i] = line
	}
	return lines
}

func (o Options) inputType() jen.Code {
	if o.InputType == "string" {
		return jen.String()
	}
	return jen.Index().Byte()
}

func (o Options) results() []jen.Code {
	second := jen.Id(restName).Add(o.inputType())
	if o.Count {
		second = jen.Id(countName).Int()
	}
	return []jen.Code{
		jen.Id(valueName).Id(o.ValueType),
		second,
		jen.Id(okName).Bool(),
	}
}

// ret renders the return statement for a random-access outcome.
func (o Options) ret(out outcome) jen.Code {
	if !out.matched {
		if o.Count {
			return jen.Return(jen.Id(valueName), jen.Lit(0), jen.False())
		}
		return jen.Return(jen.Id(valueName), jen.Id(inputName), jen.False())
	}
	if o.Count {
		return jen.Return(jen.Id(out.value), jen.Lit(out.consumed), jen.True())
	}
	return jen.Return(
		jen.Id(out.value),
		jen.Id(inputName).Index(jen.Lit(out.consumed), jen.Empty()),
		jen.True(),
	)
}

// byteLit renders b as a rune literal when printable, as hex otherwise.
func byteLit(b byte) jen.Code {
	if b >= 0x20 && b < 0x7f {
		return jen.Id(strconv.QuoteRuneToASCII(rune(b)))
	}
	return jen.Id(fmt.Sprintf("0x%02x", b))
}

// outcome is what a generated function returns at some point.
type outcome struct {
	value    string
	matched  bool
	consumed int
}

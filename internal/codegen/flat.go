package codegen

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/dave/jennifer/jen"

	"github.com/aretw0/matchgen/pkg/trie"
)

// Flat renders a single switch with one whole-key comparison per entry.
// Longer keys are tested first, so a key that prefixes another can never
// shadow it. Emitted size grows with the total length of all keys.
//
// With Options.Count set the function returns the consumed length instead of
// the remainder and never slices its input.
type Flat struct{}

var _ Generator = Flat{}

type flatArm struct {
	key []byte
	out outcome
}

// planFlat orders entries by descending length, then by key.
func planFlat(t *trie.Tree) []flatArm {
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b trie.Entry) int {
		if c := cmp.Compare(len(b.Key), len(a.Key)); c != 0 {
			return c
		}
		return bytes.Compare(a.Key, b.Key)
	})

	arms := make([]flatArm, len(entries))
	for i, e := range entries {
		arms[i] = flatArm{
			key: e.Key,
			out: outcome{value: e.Value, matched: true, consumed: len(e.Key)},
		}
	}
	return arms
}

// Generate implements Generator.
func (Flat) Generate(t *trie.Tree, o Options) *jen.Statement {
	arms := planFlat(t)

	var body []jen.Code
	if len(arms) > 0 {
		cases := make([]jen.Code, len(arms))
		for i, a := range arms {
			cases[i] = jen.Case(hasPrefix(a.key, o)).Block(o.ret(a.out))
		}
		body = append(body, jen.Switch().Block(cases...))
	}
	body = append(body, o.ret(outcome{}))

	return declare(o).Func().Id(o.FuncName).
		Params(jen.Id(inputName).Add(o.inputType())).
		Params(o.results()...).
		Block(body...)
}

// hasPrefix renders len(in) >= n && string(in[:n]) == "key". The conversion
// does not allocate and is dropped for string inputs.
func hasPrefix(key []byte, o Options) jen.Code {
	n := len(key)
	head := jen.Id(inputName).Index(jen.Empty(), jen.Lit(n))
	if o.InputType != "string" {
		head = jen.String().Call(head)
	}
	return jen.Len(jen.Id(inputName)).Op(">=").Lit(n).
		Op("&&").Add(head).Op("==").Lit(string(key))
}

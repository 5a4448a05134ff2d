package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/aretw0/matchgen/pkg/trie"
)

// Cursor renders a matcher over a forward-only cursor:
//
//	func name[C any, P interface{ *C; Next() (byte, bool) }](it P) (v T, ok bool)
//
// The cursor has no rewind. Before reading past a node that holds a value
// (and at the root) the generated code copies the cursor; if the longer
// attempt fails it assigns the copy back and returns the node's value, or
// reports no match with the cursor where it started.
//
// Nodes without a value take no copy: they fall through to the closest
// enclosing copy, which carries the same value and position.
type Cursor struct{}

var _ Generator = Cursor{}

// cursorBranch reads one byte and dispatches on it.
type cursorBranch struct {
	depth int
	arms  []cursorArm
	// restore is returned after rolling back to the copy taken on entry.
	// Nil means no copy is taken and the branch falls through.
	restore *outcome
}

type cursorArm struct {
	label byte
	leaf  *outcome
	next  *cursorBranch
}

func planCursor(t *trie.Tree) *cursorBranch {
	root := lowerCursor(t.Root())
	root.restore = &outcome{}
	return root
}

func lowerCursor(n *trie.Node) *cursorBranch {
	br := &cursorBranch{depth: n.Depth()}
	for label, child := range n.Children() {
		a := cursorArm{label: label}
		if child.IsLeaf() {
			v, _ := child.Value()
			a.leaf = &outcome{value: v, matched: true, consumed: child.Depth()}
		} else {
			a.next = lowerCursor(child)
		}
		br.arms = append(br.arms, a)
	}
	if v, ok := n.Value(); ok {
		br.restore = &outcome{value: v, matched: true, consumed: n.Depth()}
	}
	return br
}

// Generate implements Generator.
func (g Cursor) Generate(t *trie.Tree, o Options) *jen.Statement {
	constraint := jen.Interface(
		jen.Op("*").Id(elemParam),
		jen.Id("Next").Params().Params(jen.Byte(), jen.Bool()),
	)
	return declare(o).Func().Id(o.FuncName).
		Types(jen.Id(elemParam).Id("any"), jen.Id(cursorParam).Add(constraint)).
		Params(jen.Id(cursorName).Id(cursorParam)).
		Params(jen.Id(valueName).Id(o.ValueType), jen.Id(okName).Bool()).
		Block(g.branch(planCursor(t))...)
}

func (g Cursor) branch(br *cursorBranch) []jen.Code {
	if len(br.arms) == 0 {
		// Only an empty root gets here: nothing to read, nothing to undo.
		return []jen.Code{cursorRet(*br.restore)}
	}

	mark := jen.Id(fmt.Sprintf("%s%d", markPrefix, br.depth))
	next := fmt.Sprintf("%s%d", bytePrefix, br.depth)

	var body []jen.Code
	if br.restore != nil {
		body = append(body, jen.Add(mark).Op(":=").Op("*").Id(cursorName))
	}

	cases := make([]jen.Code, 0, len(br.arms))
	for _, a := range br.arms {
		var stmts []jen.Code
		if a.leaf != nil {
			stmts = []jen.Code{cursorRet(*a.leaf)}
		} else {
			stmts = g.branch(a.next)
		}
		cases = append(cases, jen.Case(byteLit(a.label)).Block(stmts...))
	}
	body = append(body, jen.If(
		jen.List(jen.Id(next), jen.Id(moreName)).Op(":=").Id(cursorName).Dot("Next").Call(),
		jen.Id(moreName),
	).Block(
		jen.Switch(jen.Id(next)).Block(cases...),
	))

	if br.restore != nil {
		body = append(body,
			jen.Op("*").Id(cursorName).Op("=").Add(mark),
			cursorRet(*br.restore),
		)
	}
	return body
}

func cursorRet(out outcome) jen.Code {
	if !out.matched {
		return jen.Return(jen.Id(valueName), jen.False())
	}
	return jen.Return(jen.Id(out.value), jen.True())
}

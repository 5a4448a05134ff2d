package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/aretw0/matchgen/pkg/trie"
)

// Tree renders nested per-byte switches over a random-access input:
//
//	func name(in []byte) (v T, rest []byte, ok bool)
//
// A node that holds a value returns it after its switch. A node without one
// falls through to the enclosing node's return, so a longer candidate that
// fails never discards a shorter match already seen.
type Tree struct{}

var _ Generator = Tree{}

// branch dispatches on the input byte at depth.
type branch struct {
	depth int
	arms  []arm
	// final is returned when no arm produced a result. Nil falls through
	// to the enclosing branch.
	final *outcome
}

type arm struct {
	label byte
	leaf  *outcome // leaf nodes
	next  *branch  // nodes with children
}

// planTree lowers t into branches. The root always resolves: if nothing
// matched it reports no match with nothing consumed.
func planTree(t *trie.Tree) *branch {
	root := lowerNode(t.Root())
	root.final = &outcome{}
	return root
}

func lowerNode(n *trie.Node) *branch {
	br := &branch{depth: n.Depth()}
	for label, child := range n.Children() {
		a := arm{label: label}
		if child.IsLeaf() {
			v, _ := child.Value()
			a.leaf = &outcome{value: v, matched: true, consumed: child.Depth()}
		} else {
			a.next = lowerNode(child)
		}
		br.arms = append(br.arms, a)
	}
	if v, ok := n.Value(); ok {
		br.final = &outcome{value: v, matched: true, consumed: n.Depth()}
	}
	return br
}

// Generate implements Generator.
func (g Tree) Generate(t *trie.Tree, o Options) *jen.Statement {
	return declare(o).Func().Id(o.FuncName).
		Params(jen.Id(inputName).Add(o.inputType())).
		Params(o.results()...).
		Block(g.branch(planTree(t), o)...)
}

func (g Tree) branch(br *branch, o Options) []jen.Code {
	var body []jen.Code
	if len(br.arms) > 0 {
		cases := make([]jen.Code, 0, len(br.arms))
		for _, a := range br.arms {
			var stmts []jen.Code
			if a.leaf != nil {
				stmts = []jen.Code{o.ret(*a.leaf)}
			} else {
				stmts = g.branch(a.next, o)
			}
			cases = append(cases, jen.Case(byteLit(a.label)).Block(stmts...))
		}
		body = append(body, jen.If(jen.Len(jen.Id(inputName)).Op(">").Lit(br.depth)).Block(
			jen.Switch(jen.Id(inputName).Index(jen.Lit(br.depth))).Block(cases...),
		))
	}
	if br.final != nil {
		body = append(body, o.ret(*br.final))
	}
	return body
}

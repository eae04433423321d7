package calculator

import "strings"

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	fn   Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeCall // name is the Func to call, left is its argument

	nodeNeg    // evaluate left, then negate
	nodeNop    // evaluate left
	nodeSquare // evaluate left, then square
	nodeAdd    // evaluate left, add right
	nodeSub    // evaluate left, sub right
	nodeMul    // evaluate left, mul right
	nodeDiv    // evaluate left, div by right
	nodeIntDiv // evaluate left, floor div by right
	nodeMod    // evaluate left, floor mod by right
	nodePow    // evaluate left, exp by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// binsym is the symbol printed between the operands of binary nodes.
var binsym = map[nodeKind]string{
	nodeAdd:    " + ",
	nodeSub:    " - ",
	nodeMul:    " * ",
	nodeDiv:    " / ",
	nodeIntDiv: " div ",
	nodeMod:    " mod ",
	nodePow:    " ^ ",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node fully bracketed, alternating round and square brackets
// by depth.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeSquare:
		n.left.fmt(b, !square)
		b.WriteString("²")
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeIntDiv, nodeMod, nodePow:
		n.left.fmt(b, !square)
		b.WriteString(binsym[n.kind])
		n.right.fmt(b, !square)
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

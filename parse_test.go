package calculator

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeNum:
		if n.name != m.name {
			return n, m
		}
	case nodeCall:
		if n.name != m.name {
			return n, m
		}
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeIntDiv, nodeMod, nodePow:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	case nodeNeg, nodeNop, nodeSquare:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	default:
		panic(fmt.Errorf("invalid node kind: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

type mockfn struct{}

func (mockfn) Call(ctx *Context, x, r *big.Float) error {
	r.Set(x)
	return nil
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		s := operstrs[len([]rune(Operators[:strings.IndexRune(Operators, r)]))]
		b := binop(s)
		u := unop(s)
		if b.op == nodeNone && u.op == nodeNone {
			t.Errorf("no operator for %c", r)
		}
	}
	for w, k := range words {
		if k == tokenOp && binop(w).op == nodeNone {
			t.Errorf("no operator for %q", w)
		}
	}
}

func TestWordPrecMatchesMultiplication(t *testing.T) {
	for _, w := range []string{"div", "mod", "/"} {
		if p, q := binop(w).prec, binop("*").prec; p != q {
			t.Errorf("%s has prec %d but * has prec %d", w, p, q)
		}
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"multi", "((((1))))", "1"},

		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1)+(2))"},
		{"sub", "1-2", "((1)-(2))"},
		{"mul", "1*2", "((1)*(2))"},
		{"div", "1/2", "((1)/(2))"},
		{"intdiv", "1div2", "((1)div(2))"},
		{"mod", "1mod2", "((1)mod(2))"},
		{"pow", "1^2", "((1)^(2))"},
		{"altmul", "1×2", "1*2"},
		{"altdiv", "1÷2", "1/2"},
		{"spaces", " 1 div 2 ", "1div2"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"mul4", "1*2*3*4", "((1*2)*3)*4"},
		{"div4", "1/2/3/4", "((1/2)/3)/4"},
		{"divmod", "7div2mod3", "(7div2)mod3"},
		{"moddiv", "7mod2/3", "(7mod2)/3"},
		{"pow4", "1^2^3^4", "1^(2^(3^4))"},

		{"negpow", "-1^2", "-(1^2)"},
		{"desc", "1^2*3+4", "((1^2)*3)+4"},
		{"asc", "1+2*3^4", "1+(2*(3^4))"},
		{"descasc", "1^2*3+4+5*6^7", "(((1^2)*3)+4)+5*(6^7)"},
		{"ascdesc", "1+2*3^4^5*6+7", "1+((2*(3^(4^5)))*6)+7"},
		{"negneg", "--1", "-(-1)"},
		{"negsub", "-1-1", "(-1)-1"},
		{"mulneg", "2*-3", "2*(-3)"},
		{"powneg", "2^-1", "2^(-1)"},
		{"pownegpow", "2^-3^-4", "2^(-(3^(-4)))"},
		{"pownegneg", "2^--3", "2^(-(-3))"},
		{"powneg-add", "2^-1+3", "(2^(-1))+3"},

		{"square", "3²", "(3)²"},
		{"square2", "3²²", "((3)²)²"},
		{"negsquare", "-3²", "-(3²)"},
		{"powsquare", "2^3²", "2^(3²)"},
		{"squarepow", "2²^3", "(2²)^3"},
		{"groupsquare", "(1+2)²", "((1+2))²"},
		{"squareadd", "3²+1", "(3²)+1"},

		{"sqrt", "√(4)", "√((4))"},
		{"sqrtword", "sqrt(4)", "sqrt((4))"},
		{"sqrtsquare", "√(4)²", "(√(4))²"},
		{"sqrtnested", "√(√(16)+2)", "√((√(16))+2)"},
		{"negsqrt", "-√(4)", "-(√(4))"},
		{"sqrtpow", "√(4)^2", "(√(4))^2"},

		{"numpoint", "3.", "3."},
		{"pointnum", ".5", ".5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := ParseString(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "num",
			src:  "12.5",
			n:    &node{kind: nodeNum, name: "12.5"},
		},
		{
			name: "sqrt",
			src:  "√(9)",
			n: &node{
				kind: nodeCall,
				name: "√",
				left: &node{kind: nodeNum, name: "9"},
			},
		},
		{
			name: "negsquare",
			src:  "-3²",
			n: &node{
				kind: nodeNeg,
				left: &node{
					kind: nodeSquare,
					left: &node{kind: nodeNum, name: "3"},
				},
			},
		},
		{
			name: "intdiv",
			src:  "7 div 2",
			n: &node{
				kind:  nodeIntDiv,
				left:  &node{kind: nodeNum, name: "7"},
				right: &node{kind: nodeNum, name: "2"},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestParseString(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"1", "(1)"},
		{"1+2*3", "([1] + [(2) * (3)])"},
		{"-3²", "(-[(3)²])"},
		{"√(2)", "(√[2])"},
		{"7mod2", "([7] mod [2])"},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if got := a.String(); got != c.want {
			t.Errorf("%q formats as %q, want %q", c.src, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
	}{
		{"empty", "", new(*EmptyExpressionError)},
		{"space", "  ", new(*EmptyExpressionError)},
		{"trailing-op", "2+", new(*EmptyExpressionError)},
		{"empty-group", "()", new(*EmptyExpressionError)},
		{"empty-call", "√()", new(*EmptyExpressionError)},
		{"unclosed", "(2", new(*BracketError)},
		{"unclosed-call", "√(2", new(*BracketError)},
		{"unopened", "2)", new(*BracketError)},
		{"leading-mul", "*2", new(*OperatorError)},
		{"leading-div", "div2", new(*OperatorError)},
		{"leading-square", "²", new(*OperatorError)},
		{"juxtaposed-group", "2(3)", new(*TermError)},
		{"juxtaposed-num", "(2)3", new(*TermError)},
		{"juxtaposed-space", "2 3", new(*TermError)},
		{"juxtaposed-call", "2√(3)", new(*TermError)},
		{"bare-call", "√4", new(*CallError)},
		{"symbol", "2$", new(*LexError)},
		{"points", "1.2.3", new(*LexError)},
		{"point", ".", new(*LexError)},
		{"word", "foo(1)", new(*LexError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, a)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%q gave %#v, want %T", c.src, err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Errorf("%q gave %#v, which is not an InputError", c.src, err)
			}
		})
	}
}

func TestParseFunc(t *testing.T) {
	a, err := ParseString("id(2)+1", ParseFunc("id", mockfn{}))
	if err != nil {
		t.Fatalf("failed to parse with id: %v", err)
	}
	want := &node{
		kind:  nodeAdd,
		left:  &node{kind: nodeCall, name: "id", left: &node{kind: nodeNum, name: "2"}},
		right: &node{kind: nodeNum, name: "1"},
	}
	if d, e := a.n.diff(want); d != nil || e != nil {
		t.Errorf("mismatched AST: want %v, got %v", want, a.n)
	}
	if _, err := ParseString("id(2)"); err == nil {
		t.Error("id parsed without ParseFunc")
	}
	if _, err := ParseString("sqrt(2)", ParseFunc("sqrt", nil)); err == nil {
		t.Error("sqrt parsed after being disabled")
	}
	if _, err := ParseString("√(2)", ParseFunc("sqrt", nil)); err != nil {
		t.Errorf("disabling sqrt disabled √: %v", err)
	}
	if _, err := ParseString("id(√(2))+sqrt(3)", ParseFunc("id", mockfn{})); err != nil {
		t.Errorf("adding id removed the default functions: %v", err)
	}
}

func TestStopOn(t *testing.T) {
	r := strings.NewReader("1+2\n3")
	a, err := Parse(r, StopOn('\n'))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if got, want := a.String(), "([1] + [2])"; got != want {
		t.Errorf("parsed %q, want %q", got, want)
	}
	rest, _ := r.ReadByte()
	if rest != '3' {
		t.Errorf("parse stopped before %q, want '3'", rest)
	}
	// Whitespace where an operand is expected doesn't stop.
	a, err = ParseString("1+\n2", StopOn('\n'))
	if err != nil {
		t.Fatalf("failed to parse across newline: %v", err)
	}
	if got, want := a.String(), "([1] + [2])"; got != want {
		t.Errorf("parsed %q, want %q", got, want)
	}
}

func TestStopOnNonSpace(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StopOn('x') didn't panic")
		}
	}()
	StopOn('x')
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		k    fmt.Stringer
		want string
	}{
		{tokenEOF, "EOF"},
		{tokenClose, "Close"},
		{tokenKind(99), "tokenKind(99)"},
		{nodeIntDiv, "IntDiv"},
		{nodePow, "Pow"},
		{KindPostfix, "Postfix"},
		{ClassEmpty, "Empty"},
		{ClassPostfix, "Postfix"},
		{Class(-1), "Class(-1)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("wrong name: want %q, got %q", c.want, got)
		}
	}
}

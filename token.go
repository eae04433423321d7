package calculator

import "strconv"

// Kind is the syntactic category of a Token.
type Kind int8

const (
	KindNone Kind = iota
	// KindDigit is a single decimal digit.
	KindDigit
	// KindPoint is the decimal separator.
	KindPoint
	// KindBinary is a binary operator.
	KindBinary
	// KindPrefix is a prefix function. It is always followed by KindOpen.
	KindPrefix
	// KindPostfix is the squaring operator.
	KindPostfix
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go run golang.org/x/tools/cmd/stringer -type=Class -trimprefix=Class
//go:generate go mod tidy

// Op is a binary operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	// OpIntDiv is floor division, rendered as "div".
	OpIntDiv
	// OpMod is the remainder of floor division, rendered as "mod".
	OpMod
	OpPow
)

var opText = [...]string{
	OpNone:   "",
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpIntDiv: "div",
	OpMod:    "mod",
	OpPow:    "^",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opText) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opText[op]
}

// sign reports whether op can also be read as the sign of the next operand.
func (op Op) sign() bool {
	return op == OpAdd || op == OpSub
}

// Fn is a prefix function.
type Fn int8

const (
	FnNone Fn = iota
	FnSqrt
)

func (fn Fn) String() string {
	switch fn {
	case FnSqrt:
		return "√"
	default:
		return ""
	}
}

// Token is one committed symbol of an expression. The zero Token is invalid.
type Token struct {
	kind Kind
	val  int8
}

// DigitToken returns the token for the decimal digit d. Panics if d is not in
// [0, 9].
func DigitToken(d int) Token {
	if d < 0 || d > 9 {
		panic("calculator: invalid digit " + strconv.Itoa(d))
	}
	return Token{kind: KindDigit, val: int8(d)}
}

// PointToken returns the decimal separator token.
func PointToken() Token { return Token{kind: KindPoint} }

// BinaryToken returns the token for a binary operator.
func BinaryToken(op Op) Token {
	if op <= OpNone || op > OpPow {
		panic("calculator: invalid operator " + op.String())
	}
	return Token{kind: KindBinary, val: int8(op)}
}

// PrefixToken returns the token for a prefix function.
func PrefixToken(fn Fn) Token {
	if fn != FnSqrt {
		panic("calculator: invalid function")
	}
	return Token{kind: KindPrefix, val: int8(fn)}
}

// SquareToken returns the postfix squaring token.
func SquareToken() Token { return Token{kind: KindPostfix} }

// OpenToken returns an open parenthesis.
func OpenToken() Token { return Token{kind: KindOpen} }

// CloseToken returns a close parenthesis.
func CloseToken() Token { return Token{kind: KindClose} }

// Kind returns the token's category.
func (t Token) Kind() Kind { return t.kind }

// Digit returns the value of a digit token, or -1 for any other token.
func (t Token) Digit() int {
	if t.kind != KindDigit {
		return -1
	}
	return int(t.val)
}

// Op returns the operator of a binary token, or OpNone.
func (t Token) Op() Op {
	if t.kind != KindBinary {
		return OpNone
	}
	return Op(t.val)
}

// Fn returns the function of a prefix token, or FnNone.
func (t Token) Fn() Fn {
	if t.kind != KindPrefix {
		return FnNone
	}
	return Fn(t.val)
}

// Text is the rendered form of the token.
func (t Token) Text() string {
	switch t.kind {
	case KindDigit:
		return string(rune('0' + t.val))
	case KindPoint:
		return "."
	case KindBinary:
		return Op(t.val).String()
	case KindPrefix:
		return Fn(t.val).String()
	case KindPostfix:
		return "²"
	case KindOpen:
		return "("
	case KindClose:
		return ")"
	default:
		return ""
	}
}

func (t Token) String() string {
	return t.kind.String() + ":" + t.Text()
}

// literal reports whether the token can be part of a number literal.
func (t Token) literal() bool {
	return t.kind == KindDigit || t.kind == KindPoint
}

// Class is the category of the trailing token of an expression, which decides
// what input can follow it.
type Class int8

const (
	// ClassEmpty is the placeholder expression.
	ClassEmpty Class = iota
	// ClassDigit ends in a digit.
	ClassDigit
	// ClassPoint ends in a bare decimal point.
	ClassPoint
	// ClassBinary ends in a binary operator.
	ClassBinary
	// ClassPrefix ends in a function and its open parenthesis.
	ClassPrefix
	// ClassOpen ends in an open parenthesis not belonging to a function.
	ClassOpen
	// ClassClose ends in a close parenthesis.
	ClassClose
	// ClassPostfix ends in ².
	ClassPostfix
)

// value reports whether the class ends a complete operand.
func (c Class) value() bool {
	return c == ClassDigit || c == ClassClose || c == ClassPostfix
}

// group reports whether the class is an open group awaiting an operand.
func (c Class) group() bool {
	return c == ClassOpen || c == ClassPrefix
}

// trailing computes the trailing class of a token sequence.
func trailing(toks []Token) Class {
	n := len(toks)
	if n == 0 {
		return ClassEmpty
	}
	switch toks[n-1].kind {
	case KindDigit:
		return ClassDigit
	case KindPoint:
		return ClassPoint
	case KindBinary:
		return ClassBinary
	case KindPostfix:
		return ClassPostfix
	case KindClose:
		return ClassClose
	case KindOpen:
		if n > 1 && toks[n-2].kind == KindPrefix {
			return ClassPrefix
		}
		return ClassOpen
	default:
		panic("calculator: invalid trailing token " + toks[n-1].String())
	}
}

package calculator

import (
	"strings"
)

// Buffer is an expression under construction. Every mutation checks the
// trailing token first, so the rendered expression is always a prefix of a
// valid expression. Mutations report whether they were accepted; a rejected
// mutation leaves the buffer unchanged.
//
// The zero Buffer is the placeholder expression "0".
type Buffer struct {
	toks []Token
	// seeded is set while the buffer holds an evaluation result that hasn't
	// been edited yet.
	seeded bool
}

// Placeholder is the rendering of an empty expression.
const Placeholder = "0"

// Render returns the display form of the expression. It is never empty.
func (b *Buffer) Render() string {
	if b.empty() {
		return Placeholder
	}
	var s strings.Builder
	for _, t := range b.toks {
		s.WriteString(t.Text())
	}
	return s.String()
}

func (b *Buffer) String() string {
	return b.Render()
}

// Tokens returns a copy of the committed tokens.
func (b *Buffer) Tokens() []Token {
	return append([]Token(nil), b.toks...)
}

// Len is the number of committed tokens.
func (b *Buffer) Len() int {
	return len(b.toks)
}

// Class returns the class of the trailing token.
func (b *Buffer) Class() Class {
	return trailing(b.toks)
}

// Depth returns the number of open parentheses minus the number of close
// parentheses.
func (b *Buffer) Depth() int {
	d := 0
	for _, t := range b.toks {
		switch t.kind {
		case KindOpen:
			d++
		case KindClose:
			d--
		}
	}
	return d
}

// Balanced reports whether every open parenthesis is closed.
func (b *Buffer) Balanced() bool {
	return b.Depth() == 0
}

// Seeded reports whether the buffer holds an unedited evaluation result.
func (b *Buffer) Seeded() bool {
	return b.seeded
}

// empty reports whether the buffer is the placeholder.
func (b *Buffer) empty() bool {
	return len(b.toks) == 0
}

// set replaces the tokens and normalizes a lone zero to the placeholder.
func (b *Buffer) set(toks []Token) {
	if len(toks) == 1 && toks[0] == DigitToken(0) {
		toks = toks[:0]
	}
	b.toks = toks
	b.seeded = false
}

// push appends tokens and clears the seeded mark.
func (b *Buffer) push(toks ...Token) bool {
	b.set(append(b.toks, toks...))
	return true
}

// literal returns the index at which the trailing run of digits and points
// starts, and whether that run contains a point.
func (b *Buffer) literal() (start int, point bool) {
	start = len(b.toks)
	for start > 0 && b.toks[start-1].literal() {
		start--
		if b.toks[start].kind == KindPoint {
			point = true
		}
	}
	return start, point
}

// Digit appends a decimal digit. It replaces the placeholder or a seeded
// result, and is rejected after ² or ).
func (b *Buffer) Digit(d int) bool {
	t := DigitToken(d)
	if b.empty() || b.seeded {
		b.set([]Token{t})
		return true
	}
	switch b.Class() {
	case ClassPostfix, ClassClose:
		return false
	}
	return b.push(t)
}

// Point appends a decimal point to the current number, starting a new "0."
// literal if there is none. It is a no-op on a literal that already has a
// point and is rejected after ² or ).
func (b *Buffer) Point() bool {
	if b.seeded {
		b.set(nil)
	}
	switch b.Class() {
	case ClassPostfix, ClassClose:
		return false
	}
	start, point := b.literal()
	switch {
	case point:
		return false
	case start == len(b.toks):
		return b.push(DigitToken(0), PointToken())
	default:
		return b.push(PointToken())
	}
}

// Binary appends a binary operator.
//
// On the placeholder, only + and - are accepted, and they become the whole
// expression. + or - typed after + or - replaces it; typed after any other
// operator or an open group, it is the sign of the next operand. The other
// operators need a complete operand on their left. A bare trailing point is
// completed with 0 before the operator.
func (b *Buffer) Binary(op Op) bool {
	t := BinaryToken(op)
	c := b.Class()
	switch {
	case c == ClassEmpty:
		if !op.sign() {
			return false
		}
		b.set([]Token{t})
		return true
	case c == ClassPoint:
		return b.push(DigitToken(0), t)
	case c.value():
		return b.push(t)
	case !op.sign():
		return false
	case c == ClassBinary && b.toks[len(b.toks)-1].Op().sign():
		toks := append(b.toks[:len(b.toks)-1:len(b.toks)-1], t)
		b.set(toks)
		return true
	default:
		return b.push(t)
	}
}

// Func appends a prefix function together with its open parenthesis. It
// replaces the placeholder and is rejected after a number or a closed group.
func (b *Buffer) Func(fn Fn) bool {
	f := PrefixToken(fn)
	switch b.Class() {
	case ClassEmpty:
		b.set([]Token{f, OpenToken()})
		return true
	case ClassDigit, ClassPoint, ClassPostfix, ClassClose:
		return false
	}
	return b.push(f, OpenToken())
}

// Square appends ². It needs a complete operand on its left; a bare trailing
// point is completed with 0 first.
func (b *Buffer) Square() bool {
	switch c := b.Class(); {
	case c == ClassPoint:
		return b.push(DigitToken(0), SquareToken())
	case c.value():
		return b.push(SquareToken())
	}
	return false
}

// Open appends an open parenthesis. It replaces the placeholder and is
// accepted only after an operator, a function, or another open parenthesis.
func (b *Buffer) Open() bool {
	switch c := b.Class(); {
	case c == ClassEmpty:
		b.set([]Token{OpenToken()})
		return true
	case c == ClassBinary, c.group():
		return b.push(OpenToken())
	}
	return false
}

// Close appends a close parenthesis. It needs an unclosed open parenthesis and
// a complete operand on its left; a bare trailing point is completed with 0
// first.
func (b *Buffer) Close() bool {
	if b.Depth() <= 0 {
		return false
	}
	switch c := b.Class(); {
	case c == ClassPoint:
		return b.push(DigitToken(0), CloseToken())
	case c.value():
		return b.push(CloseToken())
	}
	return false
}

// Backspace removes the last logical token. A function and its parenthesis are
// removed together. Removing the last token leaves the placeholder.
func (b *Buffer) Backspace() bool {
	n := len(b.toks)
	switch {
	case n == 0:
		return false
	case n == 1:
		b.set(nil)
	case b.Class() == ClassPrefix:
		b.set(b.toks[:n-2])
	default:
		b.set(b.toks[:n-1])
	}
	return true
}

// Round drops the fractional part and the point of the trailing number. It is
// rejected if the trailing number has no point.
func (b *Buffer) Round() bool {
	start, point := b.literal()
	if !point {
		return false
	}
	end := start
	for b.toks[end].kind != KindPoint {
		end++
	}
	b.set(b.toks[:end])
	return true
}

// Clear resets the buffer to the placeholder.
func (b *Buffer) Clear() {
	b.set(nil)
}

// Seed replaces the buffer with a formatted result, as produced by
// FormatResult. While the buffer is seeded, a digit or a point starts a new
// expression instead of extending the result.
func (b *Buffer) Seed(result string) error {
	var toks []Token
	for i, r := range result {
		switch {
		case r == '-' && i == 0:
			toks = append(toks, BinaryToken(OpSub))
		case '0' <= r && r <= '9':
			toks = append(toks, DigitToken(int(r-'0')))
		case r == '.':
			toks = append(toks, PointToken())
		default:
			return &LexError{Text: result[:i] + string(r), Kind: "number", Col: i + 1}
		}
	}
	// A zero result is kept as a digit rather than the placeholder so that an
	// operator can follow it.
	b.toks = toks
	b.seeded = true
	return nil
}

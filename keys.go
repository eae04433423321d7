package calculator

import (
	"strconv"
	"strings"
)

// Key is one input event from a host: a button press or a keystroke after the
// host has mapped it.
type Key int8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyPoint
	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyIntDiv
	KeyMod
	KeyPow
	KeySqrt
	KeySquare
	KeyOpen
	KeyClose
	KeyRound
	KeyBackspace
	KeyClear
	KeyClearAll
	KeyEval

	numKeys
)

// keyNames holds the canonical name of each key followed by any aliases.
var keyNames = [numKeys][]string{
	Key0:         {"0"},
	Key1:         {"1"},
	Key2:         {"2"},
	Key3:         {"3"},
	Key4:         {"4"},
	Key5:         {"5"},
	Key6:         {"6"},
	Key7:         {"7"},
	Key8:         {"8"},
	Key9:         {"9"},
	KeyPoint:     {"point", "."},
	KeyAdd:       {"add", "+"},
	KeySub:       {"sub", "-"},
	KeyMul:       {"mul", "*", "×", "x"},
	KeyDiv:       {"divide", "/", "÷"},
	KeyIntDiv:    {"div", "//"},
	KeyMod:       {"mod"},
	KeyPow:       {"pow", "^", "xⁿ"},
	KeySqrt:      {"sqrt", "√"},
	KeySquare:    {"square", "²", "x²"},
	KeyOpen:      {"open", "("},
	KeyClose:     {"close", ")"},
	KeyRound:     {"round", "%"},
	KeyBackspace: {"backspace", "⟻"},
	KeyClear:     {"clear", "C"},
	KeyClearAll:  {"clear-all", "CA"},
	KeyEval:      {"eval", "="},
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key)
	for k, names := range keyNames {
		for _, name := range names {
			m[name] = Key(k)
		}
	}
	return m
}()

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return keyNames[k][0]
}

// DigitKey returns the key for the decimal digit d.
func DigitKey(d int) Key {
	if d < 0 || d > 9 {
		panic("calculator: invalid digit " + strconv.Itoa(d))
	}
	return Key0 + Key(d)
}

// ParseKey returns the key with the given name. Names are the results of
// Key.String, plus the symbols the keys insert, e.g. "+", "√", or "=".
// Matching is exact, except that canonical word names are case-insensitive.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[name]; ok {
		return k, nil
	}
	if k, ok := keysByName[strings.ToLower(name)]; ok && k.String() == strings.ToLower(name) {
		return k, nil
	}
	return 0, &KeyError{Name: name}
}

// KeyError is an error returned when parsing an unknown key name.
type KeyError struct {
	Name string
}

func (err *KeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Name)
}

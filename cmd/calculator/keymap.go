package main

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// Keymap maps typed characters to calculator keys.
type Keymap map[rune]calculator.Key

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() Keymap {
	m := Keymap{
		'.': calculator.KeyPoint,
		'+': calculator.KeyAdd,
		'-': calculator.KeySub,
		'*': calculator.KeyMul,
		'/': calculator.KeyDiv,
		'!': calculator.KeyIntDiv,
		'@': calculator.KeyMod,
		'%': calculator.KeyRound,
		'^': calculator.KeyPow,
		'#': calculator.KeySquare,
		'$': calculator.KeySqrt,
		'(': calculator.KeyOpen,
		')': calculator.KeyClose,
		'=': calculator.KeyEval,
		'<': calculator.KeyBackspace,
		'c': calculator.KeyClear,
		'C': calculator.KeyClearAll,
	}
	for d := 0; d <= 9; d++ {
		m[rune('0'+d)] = calculator.DigitKey(d)
	}
	return m
}

// Config is the optional YAML configuration file.
//
//	places: 3
//	keys:
//	  "r": sqrt
//	  "$": ""
//
// Each entry under keys binds one character to a key name, as accepted by
// calculator.ParseKey. An empty name removes the binding.
type Config struct {
	Places *int              `yaml:"places"`
	Keys   map[string]string `yaml:"keys"`
}

// loadConfig reads a config file. An empty path is an empty config.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Keymap applies the config's bindings to the default keymap.
func (cfg *Config) Keymap() (Keymap, error) {
	m := DefaultKeymap()
	// Sort so that the first bad entry reported is stable.
	chars := make([]string, 0, len(cfg.Keys))
	for c := range cfg.Keys {
		chars = append(chars, c)
	}
	sort.Strings(chars)
	for _, c := range chars {
		r, n := utf8.DecodeRuneInString(c)
		if n == 0 || n != len(c) {
			return nil, fmt.Errorf("key binding %q must be a single character", c)
		}
		name := cfg.Keys[c]
		if name == "" {
			delete(m, r)
			continue
		}
		k, err := calculator.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", c, err)
		}
		m[r] = k
	}
	return m, nil
}

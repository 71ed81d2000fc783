// Package keypath canonicalizes matched taxonomy paths into symbolic key
// sequences and ranks candidate key paths against the source key path. Keys
// are allocated from a per-generator counter: the first distinct node concept
// reads "a", the next "b", and so on, and repeated concepts reuse their
// symbol, so a path's key sequence is its structural fingerprint.
package keypath

import (
	"errors"
	"fmt"
)

// Key symbol alphabet constants.
const (
	// Base is the size of the key symbol alphabet.
	Base = 62
	// Alphabet orders the key symbols: lower case first so early keys read
	// "a", "b", "c", then upper case, then digits.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Errors returned by ParseKey.
var (
	ErrEmptySymbol = errors.New("empty key symbol")
	ErrInvalidChar = errors.New("invalid character in key symbol")
	ErrOverflow    = errors.New("decoded key overflow")
)

// Key is one symbol in a key path, drawn from a generator's counter. Equal
// keys mean equal node concepts within a single generator run; keys from
// different runs are not comparable.
type Key uint64

// String renders the key over the base-62 alphabet. Key 0 reads "a"; from
// key 62 on, symbols grow to multiple characters, which keeps the alphabet
// countably infinite.
func (k Key) String() string {
	if k == 0 {
		return "a"
	}

	var buf [11]byte // 11 chars covers uint64 in base 62
	pos := len(buf)
	v := uint64(k)
	for v > 0 {
		pos--
		buf[pos] = Alphabet[v%Base]
		v /= Base
	}
	return string(buf[pos:])
}

// ParseKey inverts Key.String. It fails on empty input and on characters
// outside the key alphabet.
func ParseKey(symbol string) (Key, error) {
	if symbol == "" {
		return 0, ErrEmptySymbol
	}

	var v uint64
	for _, c := range symbol {
		charVal, err := charToValue(c)
		if err != nil {
			return 0, err
		}
		if v > (^uint64(0))/Base {
			return 0, ErrOverflow
		}
		v = v*Base + charVal
	}
	return Key(v), nil
}

func charToValue(c rune) (uint64, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c - 'a'), nil
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 26, nil
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 52, nil
	default:
		return 0, fmt.Errorf("%w: %c", ErrInvalidChar, c)
	}
}

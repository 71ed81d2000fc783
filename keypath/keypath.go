package keypath

import "strings"

// KeyPath is the ordered key sequence assigned along one taxonomy path.
type KeyPath []Key

// String renders the path as its concatenated key symbols ("aba"). Display
// form only: once keys grow past one character the concatenation is not
// unambiguously parseable, use Symbols where structure matters.
func (p KeyPath) String() string {
	var b strings.Builder
	for _, k := range p {
		b.WriteString(k.String())
	}
	return b.String()
}

// Symbols returns each key's rendered symbol in path order.
func (p KeyPath) Symbols() []string {
	symbols := make([]string, len(p))
	for i, k := range p {
		symbols[i] = k.String()
	}
	return symbols
}

// Distinct returns the set of keys appearing on the path.
func (p KeyPath) Distinct() map[Key]struct{} {
	set := make(map[Key]struct{}, len(p))
	for _, k := range p {
		set[k] = struct{}{}
	}
	return set
}

// Equal reports whether both paths carry the same key sequence.
func (p KeyPath) Equal(other KeyPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p KeyPath) clone() KeyPath {
	return append(KeyPath(nil), p...)
}

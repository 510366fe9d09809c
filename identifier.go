package stylecs

import (
	"fmt"
	"slices"
	"strings"

	"stylecs/internal/intern"
)

// identifiers is the process-wide interning table for identifier text.
// It is append-only and lives for the duration of the process.
var identifiers = intern.NewTable()

// privateSym backs the "_" authority used for private names.
var privateSym = identifiers.Intern("_")

// InvalidIdentifierError reports a disallowed character in identifier text.
// Identifiers may contain only a-z, A-Z, 0-9 and _.
type InvalidIdentifierError struct {
	// Text is the rejected input.
	Text string
	// Offset is the byte offset of the first disallowed character.
	Offset int
}

func (e *InvalidIdentifierError) Error() string {
	if e.Offset < 0 || e.Offset >= len(e.Text) {
		return fmt.Sprintf("invalid identifier %q (offset %d)", e.Text, e.Offset)
	}
	return fmt.Sprintf("invalid character %q at offset %d in identifier %q",
		e.Text[e.Offset], e.Offset, e.Text)
}

// ValidateIdentifier checks the identifier character rule without interning.
// The empty string is valid.
func ValidateIdentifier(text string) error {
	for i := 0; i < len(text); i++ {
		if !isIdentByte(text[i]) {
			return &InvalidIdentifierError{Text: text, Offset: i}
		}
	}
	return nil
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_'
}

// Identifier is an interned, validated name fragment.
//
// Two identifiers built from equal text always hold the same symbol, so
// == on Identifier compares interned identity in O(1) without touching
// the text. The zero value is the empty identifier.
type Identifier struct {
	sym intern.Symbol
}

// NewIdentifier validates and interns text.
// Interning is idempotent: equal text yields an identical Identifier.
func NewIdentifier(text string) (Identifier, error) {
	if err := ValidateIdentifier(text); err != nil {
		return Identifier{}, err
	}
	return Identifier{sym: identifiers.Intern(text)}, nil
}

// MustIdentifier is NewIdentifier for statically known text.
// It panics on invalid input.
func MustIdentifier(text string) Identifier {
	id, err := NewIdentifier(text)
	if err != nil {
		panic(err)
	}
	return id
}

// PrivateIdentifier returns the "_" identifier designating a private
// authority.
func PrivateIdentifier() Identifier {
	return Identifier{sym: privateSym}
}

// String returns the identifier's text.
func (id Identifier) String() string {
	return identifiers.MustLookup(id.sym)
}

// IsPrivate reports whether the identifier is the private authority "_".
func (id Identifier) IsPrivate() bool {
	return id.sym == privateSym
}

// Compare orders identifiers lexicographically by text. This is the
// presentation order; it is not the order used inside a Style's store.
func (id Identifier) Compare(other Identifier) int {
	if id.sym == other.sym {
		return 0
	}
	return strings.Compare(id.String(), other.String())
}

// PascalToSnake converts a PascalCase type name to the snake_case form
// used for derived component names. Runs of capitals are kept together:
// "aFFITest" becomes "a_ffi_test". Fails if the input contains characters
// outside the identifier alphabet.
func PascalToSnake(name string) (string, error) {
	out := []byte(name)
	index := 0
	previousWasUpper := false
	for index < len(out) {
		ch := out[index]
		if !isIdentByte(ch) {
			return "", &InvalidIdentifierError{Text: name, Offset: index}
		}
		isUpper := ch >= 'A' && ch <= 'Z'
		nextIsUpper := index+1 < len(out) && out[index+1] >= 'A' && out[index+1] <= 'Z'
		if isUpper {
			if previousWasUpper && !nextIsUpper {
				out = slices.Insert(out, index, '_')
				index++
			}
			out[index] = out[index] - 'A' + 'a'
			index++
		} else {
			index++
			if nextIsUpper {
				out = slices.Insert(out, index, '_')
				index++
			}
		}
		previousWasUpper = isUpper
	}
	return string(out), nil
}

package stylecs

import (
	"strings"

	"stylecs/internal/intern"
)

// Name is a globally unique, qualified key: an authority identifier plus
// a locally unique identifier. Two producers can both define a "color"
// component without conflict as long as their authorities differ.
//
// A Name identifies one component type within a Style, not a particular
// value. Names are comparable with ==, which compares interned symbols.
type Name struct {
	// Authority names the producer that defined Local. The private
	// authority "_" is used when no explicit authority is given.
	Authority Identifier
	// Local is the name within the authority's namespace.
	Local Identifier
}

// NewName validates and interns both parts.
func NewName(authority, local string) (Name, error) {
	a, err := NewIdentifier(authority)
	if err != nil {
		return Name{}, err
	}
	l, err := NewIdentifier(local)
	if err != nil {
		return Name{}, err
	}
	return Name{Authority: a, Local: l}, nil
}

// NameOf builds a Name from two existing identifiers.
func NameOf(authority, local Identifier) Name {
	return Name{Authority: authority, Local: local}
}

// PrivateName returns a Name under the private "_" authority.
func PrivateName(local string) (Name, error) {
	l, err := NewIdentifier(local)
	if err != nil {
		return Name{}, err
	}
	return Name{Authority: PrivateIdentifier(), Local: l}, nil
}

// MustName is NewName for statically known text. It panics on invalid
// input, so it is meant for package-level name registration.
func MustName(authority, local string) Name {
	n, err := NewName(authority, local)
	if err != nil {
		panic(err)
	}
	return n
}

// MustPrivateName is PrivateName for statically known text.
func MustPrivateName(local string) Name {
	n, err := PrivateName(local)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseName parses "authority::local", or a bare local name under the
// private authority. Inverse of String.
func ParseName(s string) (Name, error) {
	if authority, local, ok := strings.Cut(s, "::"); ok {
		return NewName(authority, local)
	}
	return PrivateName(s)
}

// String renders the name as "authority::local", omitting a private
// authority. Round-trips through ParseName.
func (n Name) String() string {
	if n.Authority.IsPrivate() {
		return n.Local.String()
	}
	return n.Authority.String() + "::" + n.Local.String()
}

// Compare orders names lexicographically by (authority text, local text).
// This is the stable, human-meaningful presentation order: the order a
// caller sees when listing a store's contents.
func (n Name) Compare(other Name) int {
	if c := n.Authority.Compare(other.Authority); c != 0 {
		return c
	}
	return n.Local.Compare(other.Local)
}

// storageCompare orders names by interned symbol, local part first.
// Local names rarely collide across authorities, so comparing them first
// usually decides in one integer comparison. The resulting order has no
// relationship to the text; it only keeps a store's key array partitioned
// for fast search and is never exposed to callers as an ordering.
func (n Name) storageCompare(other Name) int {
	if c := cmpSymbol(n.Local.sym, other.Local.sym); c != 0 {
		return c
	}
	return cmpSymbol(n.Authority.sym, other.Authority.sym)
}

func cmpSymbol(a, b intern.Symbol) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

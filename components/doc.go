// Package components provides the standard set of style attributes:
// colors, fonts, alignment, dimensions and padding. Every type here
// satisfies stylecs.Component; names are derived from the Go type name
// under the private authority.
package components

import "stylecs"

// derivedName converts a PascalCase type name to its registered
// snake_case component name.
func derivedName(typeName string) stylecs.Name {
	local, err := stylecs.PascalToSnake(typeName)
	if err != nil {
		panic(err)
	}
	return stylecs.MustPrivateName(local)
}

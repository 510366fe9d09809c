package stylecs

import (
	"slices"
	"strings"
)

// Style is a set of components keyed by their type's Name.
//
// A Style is value-semantic: the composition operators MergedWith and
// InheritedFrom return new, independent styles, so composition chains
// (base, then merge, then inherit) never mutate shared state and
// concurrent composition from immutable bases is safe. Mutating one
// Style from several goroutines is not supported.
//
// The zero Style is empty and ready to use.
type Style struct {
	components object
}

// NewStyle returns an empty style.
func NewStyle() Style { return Style{} }

// NewStyleWithCapacity returns an empty style pre-sized for n components.
func NewStyleWithCapacity(n int) Style {
	return Style{components: newObject(n)}
}

// Push adds a wrapped component, replacing any existing value stored
// under the same Name.
func (s *Style) Push(c AnyComponent) {
	if c.IsZero() {
		panic("stylecs: Push of zero AnyComponent")
	}
	s.components.insert(c.Name(), c)
}

// Put wraps value and adds it to the style, replacing any existing value
// of the same type.
func Put[C Component](s *Style, value C) {
	s.Push(Wrap(value))
}

// With is the builder form of Put. Like append, it takes over its Style
// argument and returns the updated value; the argument must not be used
// afterwards.
func With[C Component](s Style, value C) Style {
	Put(&s, value)
	return s
}

// Get returns the component of type C, if present.
func Get[C Component](s *Style) (C, bool) {
	var zero C
	a, ok := s.components.get(zero.StyleName())
	if !ok {
		return zero, false
	}
	return ComponentAs[C](*a)
}

// GetOr returns the component of type C, or fallback if absent.
func GetOr[C Component](s *Style, fallback C) C {
	if c, ok := Get[C](s); ok {
		return c
	}
	return fallback
}

// GetOrZero returns the component of type C, or C's zero value if absent.
func GetOrZero[C Component](s *Style) C {
	c, _ := Get[C](s)
	return c
}

// GetByName returns the wrapped component stored under name. The result
// must be treated as read-only.
func (s *Style) GetByName(name Name) (AnyComponent, bool) {
	a, ok := s.components.get(name)
	if !ok {
		return AnyComponent{}, false
	}
	return *a, true
}

// Len returns the number of components in the style.
func (s *Style) Len() int { return s.components.len() }

// IsEmpty reports whether the style has no components.
func (s *Style) IsEmpty() bool { return s.components.len() == 0 }

// Clone returns a deep copy. Mutating a clone's components never affects
// the original.
func (s *Style) Clone() Style {
	return Style{components: s.components.clone()}
}

// MergedWith returns a new style merging s with other. The merge is
// left-biased: for a Name present on both sides, s's value prevails
// (subject to the type's merge rule); a Name present only in other is
// copied in.
func (s Style) MergedWith(other Style) Style {
	out := s.Clone()
	out.components.mergeFiltered(&other.components, func(AnyComponent) bool { return true })
	return out
}

// InheritedFrom returns a new style pulling inheritable components from
// parent. A Name absent from s is copied from parent only if its type is
// inheritable; a Name present on both sides is merged only if parent's
// copy is inheritable, and left completely untouched otherwise.
func (s Style) InheritedFrom(parent Style) Style {
	out := s.Clone()
	out.components.mergeFiltered(&parent.components, AnyComponent.Inherited)
	return out
}

// Each calls fn for every (Name, component) pair until fn returns false.
// Pairs are visited in the store's internal storage order, which is not
// the lexicographic presentation order; use SortedNames for display.
func (s *Style) Each(fn func(Name, AnyComponent) bool) {
	for _, k := range s.components.keys {
		if !fn(k.name, s.components.slots[k.slot]) {
			return
		}
	}
}

// SortedNames returns all component names in presentation order.
func (s *Style) SortedNames() []Name {
	names := make([]Name, 0, s.Len())
	for _, k := range s.components.keys {
		names = append(names, k.name)
	}
	slices.SortFunc(names, Name.Compare)
	return names
}

// String lists the style's components for diagnostics. Not a stable
// serialization format.
func (s Style) String() string {
	var b strings.Builder
	b.WriteString("Style(")
	first := true
	for _, name := range s.SortedNames() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		a, _ := s.GetByName(name)
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

package stylecs

import (
	"fmt"
	"reflect"
	"sync"
)

// componentOps is the per-type capability table captured when a component
// is wrapped. One table exists per concrete type.
type componentOps struct {
	rtype reflect.Type
	clone func(Component) Component
	merge func(dst, src Component) Component
}

var opsCache sync.Map // reflect.Type -> *componentOps

func opsFor[C Component]() *componentOps {
	rtype := reflect.TypeOf((*C)(nil)).Elem()
	if cached, ok := opsCache.Load(rtype); ok {
		return cached.(*componentOps)
	}
	ops := &componentOps{
		rtype: rtype,
		clone: func(v Component) Component {
			c := v.(C)
			if cl, ok := any(c).(Cloner[C]); ok {
				return cl.Clone()
			}
			return c
		},
		merge: func(dst, src Component) Component {
			d := dst.(C)
			s := src.(C)
			if m, ok := any(d).(Merger[C]); ok {
				return m.Merge(s)
			}
			// No merge rule: the left value wins.
			return dst
		},
	}
	cached, _ := opsCache.LoadOrStore(rtype, ops)
	return cached.(*componentOps)
}

// AnyComponent wraps one concrete component value behind a uniform
// runtime contract: typed access, deep clone, same-type merge, debug
// formatting, and the type's Name and inheritance flag. The concrete
// type is fixed at Wrap time and cannot change afterward.
//
// The zero AnyComponent wraps nothing and is not usable.
type AnyComponent struct {
	value Component
	ops   *componentOps
}

// Wrap erases value's static type. The wrapper owns the value; callers
// that keep using reference data inside value afterwards share state
// with the wrapper.
func Wrap[C Component](value C) AnyComponent {
	return AnyComponent{value: value, ops: opsFor[C]()}
}

// ComponentAs returns the wrapped value if its concrete type is exactly
// C. There is no coercion between related types.
func ComponentAs[C Component](a AnyComponent) (C, bool) {
	c, ok := a.value.(C)
	return c, ok
}

// IsZero reports whether the wrapper holds no component.
func (a AnyComponent) IsZero() bool { return a.ops == nil }

// Component returns the wrapped value untyped. The result is shared with
// the wrapper and must be treated as read-only.
func (a AnyComponent) Component() Component { return a.value }

// Name returns the Name of the wrapped type. Two wrappers around values
// of the same type always report equal Names.
func (a AnyComponent) Name() Name { return a.value.StyleName() }

// Inherited reports the wrapped type's inheritance flag.
func (a AnyComponent) Inherited() bool { return a.value.Inherited() }

// Clone deep-copies the wrapper. The result is independent of the source.
func (a AnyComponent) Clone() AnyComponent {
	if a.IsZero() {
		return AnyComponent{}
	}
	return AnyComponent{value: a.ops.clone(a.value), ops: a.ops}
}

// MergeFrom combines other into a using the wrapped type's merge rule,
// keeping a's value when the type has none.
//
// Both sides must wrap the same concrete type. A mismatch means the
// store invariant "equal Name implies equal concrete type" was broken,
// which the public API cannot do; it panics rather than returning an
// error.
func (a *AnyComponent) MergeFrom(other AnyComponent) {
	if a.ops.rtype != other.ops.rtype {
		panic(fmt.Sprintf("stylecs: cannot merge component type %s with %s (name %s)",
			a.ops.rtype, other.ops.rtype, a.Name()))
	}
	a.value = a.ops.merge(a.value, other.value)
}

// String formats the component for diagnostics as name(value). The exact
// form is not a stable serialization format.
func (a AnyComponent) String() string {
	if a.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%v)", a.Name(), a.value)
}

package stylecs

// Component is the contract every storable attribute type satisfies.
//
// Both methods are pure functions of the type: two values of the same
// concrete type must report equal names and the same inheritance flag.
// Components are value types; those that hold reference data (slices,
// maps) should also implement Cloner so stores never share state.
//
// Equal names are assumed to imply equal concrete types. Two unrelated
// types that report the same Name are not detected; the later insert
// silently replaces the earlier one.
type Component interface {
	// StyleName returns the qualified name identifying this component's
	// type within a Style.
	StyleName() Name
	// Inherited reports whether the component propagates from a parent
	// during Style.InheritedFrom.
	Inherited() bool
}

// Merger is the optional merge rule for a component type C. MergedWith
// invokes it when both sides of a merge hold a value for C's name; the
// receiver is the prevailing (left) value. Types without a merge rule
// keep the left value unchanged.
//
// Merge is value-functional: it returns the combined component rather
// than mutating the receiver.
type Merger[C any] interface {
	Merge(other C) C
}

// Cloner is the optional deep-copy hook for a component type C. Types
// whose plain value copy would share reference data implement it so that
// cloning a Style yields fully independent values.
type Cloner[C any] interface {
	Clone() C
}

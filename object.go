package stylecs

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// linearScanWindow is the crossover point of the hybrid search: binary
// search halves the candidate range until it fits in this many entries,
// then a sequential scan finishes. Small windows favor the scan's cache
// locality over further mispredicted jumps.
const linearScanWindow = 16

// slotID addresses a wrapped value in an object's slot arena. Slot 0 is
// reserved as an invalid sentinel.
type slotID uint32

type storeKey struct {
	name Name
	slot slotID
}

// object is a Name -> AnyComponent map. Keys live in an array kept
// strictly increasing under the symbol-based storage order; values live
// in a separate slot arena, so replacing a value never moves a key and
// splicing a key never moves a value. Slots are owned exclusively by
// their object: cloning deep-copies and nothing is shared across stores.
//
// The zero object is empty and ready to use.
type object struct {
	keys  []storeKey
	slots []AnyComponent
}

func newObject(capacity int) object {
	return object{
		keys:  make([]storeKey, 0, capacity),
		slots: make([]AnyComponent, 1, capacity+1),
	}
}

func (o *object) len() int { return len(o.keys) }

// find locates name in the key array. When found is false, idx is the
// insertion index that keeps the array sorted.
func (o *object) find(name Name) (idx int, found bool) {
	lo, hi := 0, len(o.keys)
	for hi-lo > linearScanWindow {
		mid := lo + (hi-lo)/2
		switch c := o.keys[mid].name.storageCompare(name); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	for i := lo; i < hi; i++ {
		switch c := o.keys[i].name.storageCompare(name); {
		case c < 0:
			continue
		case c == 0:
			return i, true
		default:
			return i, false
		}
	}
	return hi, false
}

// pushSlot appends value to the arena and returns its slot.
func (o *object) pushSlot(value AnyComponent) slotID {
	if len(o.slots) == 0 {
		// Reserve slot 0 lazily so the zero object works.
		o.slots = append(o.slots, AnyComponent{})
	}
	next, err := safecast.Conv[uint32](len(o.slots))
	if err != nil {
		panic(fmt.Errorf("component arena overflow: %w", err))
	}
	o.slots = append(o.slots, value)
	return slotID(next)
}

// insert adds or replaces the value stored under name. On replacement
// the displaced value is returned.
func (o *object) insert(name Name, value AnyComponent) (prev AnyComponent, replaced bool) {
	idx, found := o.find(name)
	if found {
		slot := o.keys[idx].slot
		prev = o.slots[slot]
		o.slots[slot] = value
		return prev, true
	}
	slot := o.pushSlot(value)
	o.keys = slices.Insert(o.keys, idx, storeKey{name: name, slot: slot})
	return AnyComponent{}, false
}

func (o *object) get(name Name) (*AnyComponent, bool) {
	idx, found := o.find(name)
	if !found {
		return nil, false
	}
	return &o.slots[o.keys[idx].slot], true
}

// mergeFiltered walks o's and other's sorted keys simultaneously,
// merging other into o. For a key on both sides the values are merged
// only when keep accepts other's value; rejection performs no merge call
// at all, so a type's merge side effects never fire. A key only in other
// is deep-copied in when accepted and dropped when rejected. Keys only
// in o are untouched.
func (o *object) mergeFiltered(other *object, keep func(AnyComponent) bool) {
	si, oi := 0, 0
	for si < len(o.keys) && oi < len(other.keys) {
		otherKey := other.keys[oi]
		otherValue := other.slots[otherKey.slot]
		switch c := o.keys[si].name.storageCompare(otherKey.name); {
		case c < 0:
			// Only o has this key.
			si++
		case c == 0:
			slot := o.keys[si].slot
			si++
			oi++
			if keep(otherValue) {
				o.slots[slot].MergeFrom(otherValue)
			}
		default:
			// Only other has this key.
			oi++
			if !keep(otherValue) {
				continue
			}
			slot := o.pushSlot(otherValue.Clone())
			o.keys = slices.Insert(o.keys, si, storeKey{name: otherKey.name, slot: slot})
			si++
		}
	}

	// Drain other's remainder through the same filter-and-copy rule.
	for ; oi < len(other.keys); oi++ {
		otherKey := other.keys[oi]
		otherValue := other.slots[otherKey.slot]
		if !keep(otherValue) {
			continue
		}
		slot := o.pushSlot(otherValue.Clone())
		o.keys = append(o.keys, storeKey{name: otherKey.name, slot: slot})
	}
}

// clone rebuilds the object from deep copies, preserving key order.
func (o *object) clone() object {
	out := newObject(o.len())
	for _, k := range o.keys {
		out.insert(k.name, o.slots[k.slot].Clone())
	}
	return out
}

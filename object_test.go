package stylecs

import (
	"fmt"
	"math/rand"
	"testing"
)

// probeComponent lets object tests control the stored Name directly.
type probeComponent struct {
	name      Name
	value     int
	inherited bool
}

func (p probeComponent) StyleName() Name { return p.name }
func (p probeComponent) Inherited() bool { return p.inherited }
func (p probeComponent) Merge(other probeComponent) probeComponent {
	p.value += other.value
	return p
}

func probe(name Name, value int) AnyComponent {
	return Wrap(probeComponent{name: name, value: value})
}

func probeValue(t *testing.T, o *object, name Name) int {
	t.Helper()
	a, ok := o.get(name)
	if !ok {
		t.Fatalf("missing entry for %v", name)
	}
	p, ok := ComponentAs[probeComponent](*a)
	if !ok {
		t.Fatalf("entry for %v holds %T", name, a.Component())
	}
	return p.value
}

func objNames(n int) []Name {
	names := make([]Name, n)
	for i := range names {
		names[i] = MustPrivateName(fmt.Sprintf("obj_key_%03d", i))
	}
	return names
}

func TestObjectInsertGet(t *testing.T) {
	var o object
	name := MustPrivateName("obj_single")

	if _, ok := o.get(name); ok {
		t.Fatal("empty object should not find anything")
	}

	if _, replaced := o.insert(name, probe(name, 1)); replaced {
		t.Error("first insert must not report a replacement")
	}
	if got := probeValue(t, &o, name); got != 1 {
		t.Errorf("got %d, want 1", got)
	}

	prev, replaced := o.insert(name, probe(name, 2))
	if !replaced {
		t.Error("second insert must replace")
	}
	if p, _ := ComponentAs[probeComponent](prev); p.value != 1 {
		t.Errorf("displaced value = %d, want 1", p.value)
	}
	if got := probeValue(t, &o, name); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if o.len() != 1 {
		t.Errorf("len = %d, want 1", o.len())
	}
}

func TestObjectSortedInvariant(t *testing.T) {
	names := objNames(100)
	rng := rand.New(rand.NewSource(42))

	var o object
	for _, i := range rng.Perm(len(names)) {
		o.insert(names[i], probe(names[i], i))
	}

	if o.len() != len(names) {
		t.Fatalf("len = %d, want %d", o.len(), len(names))
	}
	for i := 1; i < len(o.keys); i++ {
		if o.keys[i-1].name.storageCompare(o.keys[i].name) >= 0 {
			t.Fatalf("keys not strictly increasing at %d", i)
		}
	}
}

func TestObjectFindLargeStore(t *testing.T) {
	// Larger than the linear-scan window, so the binary phase runs.
	names := objNames(100)
	var o object
	for i, name := range names {
		o.insert(name, probe(name, i))
	}

	for i, name := range names {
		if got := probeValue(t, &o, name); got != i {
			t.Errorf("entry %d: got %d", i, got)
		}
	}
	if _, ok := o.get(MustPrivateName("obj_key_absent")); ok {
		t.Error("absent key should not be found")
	}
}

func TestObjectMergeFiltered(t *testing.T) {
	nameA := MustPrivateName("merge_a")
	nameB := MustPrivateName("merge_b")
	nameC := MustPrivateName("merge_c")
	nameD := MustPrivateName("merge_d")

	build := func(entries map[Name]int) *object {
		o := &object{}
		for name, v := range entries {
			o.insert(name, probe(name, v))
		}
		return o
	}

	t.Run("accept all", func(t *testing.T) {
		self := build(map[Name]int{nameA: 1, nameB: 10})
		other := build(map[Name]int{nameB: 5, nameC: 7})
		self.mergeFiltered(other, func(AnyComponent) bool { return true })

		if got := probeValue(t, self, nameA); got != 1 {
			t.Errorf("self-only key changed: %d", got)
		}
		if got := probeValue(t, self, nameB); got != 15 {
			t.Errorf("shared key should have merged: %d, want 15", got)
		}
		if got := probeValue(t, self, nameC); got != 7 {
			t.Errorf("other-only key should have been copied: %d", got)
		}
		if self.len() != 3 {
			t.Errorf("len = %d, want 3", self.len())
		}
	})

	t.Run("reject all", func(t *testing.T) {
		self := build(map[Name]int{nameA: 1, nameB: 10})
		other := build(map[Name]int{nameB: 5, nameC: 7})
		self.mergeFiltered(other, func(AnyComponent) bool { return false })

		// Rejection is a no-op for shared keys: the merge rule must not
		// have fired, so the value stays exactly 10.
		if got := probeValue(t, self, nameB); got != 10 {
			t.Errorf("rejected shared key changed: %d, want 10", got)
		}
		if _, ok := self.get(nameC); ok {
			t.Error("rejected other-only key should have been dropped")
		}
		if self.len() != 2 {
			t.Errorf("len = %d, want 2", self.len())
		}
	})

	t.Run("drain remainder", func(t *testing.T) {
		self := build(map[Name]int{nameA: 1})
		other := build(map[Name]int{nameA: 2, nameB: 3, nameC: 4, nameD: 5})
		self.mergeFiltered(other, func(AnyComponent) bool { return true })

		if self.len() != 4 {
			t.Fatalf("len = %d, want 4", self.len())
		}
		for i := 1; i < len(self.keys); i++ {
			if self.keys[i-1].name.storageCompare(self.keys[i].name) >= 0 {
				t.Fatalf("keys not sorted after drain at %d", i)
			}
		}
	})

	t.Run("merge into clone leaves other untouched", func(t *testing.T) {
		self := build(map[Name]int{nameA: 1})
		other := build(map[Name]int{nameB: 2})
		self.mergeFiltered(other, func(AnyComponent) bool { return true })

		copied, _ := self.get(nameB)
		p, _ := ComponentAs[probeComponent](*copied)
		p.value = 99
		self.insert(nameB, Wrap(p))

		if got := probeValue(t, other, nameB); got != 2 {
			t.Errorf("source store changed through a merge copy: %d", got)
		}
	})
}

func TestObjectClone(t *testing.T) {
	names := objNames(30)
	var o object
	for i, name := range names {
		o.insert(name, probe(name, i))
	}

	c := o.clone()
	if c.len() != o.len() {
		t.Fatalf("clone len = %d, want %d", c.len(), o.len())
	}

	c.insert(names[0], probe(names[0], 1000))
	if got := probeValue(t, &o, names[0]); got != 0 {
		t.Errorf("mutating the clone changed the original: %d", got)
	}
}

func BenchmarkObjectFind(b *testing.B) {
	names := objNames(200)
	var o object
	for i, name := range names {
		o.insert(name, probe(name, i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.find(names[i%len(names)])
	}
}

func BenchmarkObjectMerge(b *testing.B) {
	names := objNames(64)
	var left, right object
	for i, name := range names {
		if i%2 == 0 {
			left.insert(name, probe(name, i))
		} else {
			right.insert(name, probe(name, i))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := left.clone()
		c.mergeFiltered(&right, func(AnyComponent) bool { return true })
	}
}

// Package intern provides an append-only string interning table.
//
// Every distinct string is stored exactly once and addressed by a Symbol,
// a dense uint32 handle. Two symbols are equal if and only if the strings
// they were interned from are equal, so symbol comparison never touches
// the text. Symbols are assigned monotonically and stay valid for the
// lifetime of the table; nothing is ever removed.
package intern

import (
	"fmt"
	"slices"
	"sync"

	"fortio.org/safecast"
)

// Symbol is a dense handle for an interned string.
type Symbol uint32

// NoSymbol marks the absence of a symbol. Index 0 of every table is
// reserved for the empty string.
const NoSymbol Symbol = 0

// IsValid reports whether the symbol refers to an interned string.
func (s Symbol) IsValid() bool { return s != NoSymbol }

// Table deduplicates strings into Symbols.
//
// All methods are safe for concurrent use. Insertions of new text are
// serialized by a single lock; lookups take a shared lock. The table only
// grows.
type Table struct {
	mu    sync.RWMutex
	byID  []string          // byID[0] = "" for NoSymbol
	index map[string]Symbol // string -> symbol
}

// NewTable returns an empty table with NoSymbol pre-registered.
func NewTable() *Table {
	return &Table{
		byID:  []string{""},
		index: map[string]Symbol{"": NoSymbol},
	}
}

// Intern returns the symbol for s, registering it first if needed.
// Calling Intern twice with equal strings yields the same symbol.
func (t *Table) Intern(s string) Symbol {
	t.mu.RLock()
	sym, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return sym
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have interned s between the locks.
	if sym, ok := t.index[s]; ok {
		return sym
	}
	next, err := safecast.Conv[uint32](len(t.byID))
	if err != nil {
		panic(fmt.Errorf("intern table overflow: %w", err))
	}
	// Copy so the table does not alias the caller's backing buffer.
	cpy := string([]byte(s))
	sym = Symbol(next)
	t.byID = append(t.byID, cpy)
	t.index[cpy] = sym
	return sym
}

// Lookup returns the string for a symbol.
// Returns "" and false if the symbol is not valid for this table.
func (t *Table) Lookup(sym Symbol) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(sym) >= len(t.byID) {
		return "", false
	}
	return t.byID[sym], true
}

// MustLookup returns the string for a symbol, panicking if it is unknown.
func (t *Table) MustLookup(sym Symbol) string {
	s, ok := t.Lookup(sym)
	if !ok {
		panic("intern: invalid symbol")
	}
	return s
}

// Has reports whether the symbol is valid for this table.
func (t *Table) Has(sym Symbol) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int(sym) < len(t.byID)
}

// Len returns the number of interned strings, counting NoSymbol.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// Snapshot returns a copy of every interned string, indexed by symbol.
func (t *Table) Snapshot() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.byID)
}

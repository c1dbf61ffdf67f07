// Package interntoken deduplicates the lexeme strings the lexer slices
// out of the source for number, string, symbol and key tokens, so that
// repeated lexemes across a large source file share one backing string
// instead of one per occurrence.
package interntoken

import (
	"sync"
	"unsafe"
)

// Table is a concurrency-safe string intern table.
type Table struct {
	mut    sync.RWMutex
	intern map[string]string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		intern: make(map[string]string),
	}
}

// GetBytes returns a string equal to b, reusing a previously interned
// string when one exists. A nil Table is valid and simply allocates a
// fresh string each call.
func (tab *Table) GetBytes(b []byte) string {
	if tab == nil {
		return string(b)
	}
	// Look up using a zero-copy view of b. This is safe only because the
	// view never escapes this function and the map is never mutated
	// while held: a lookup miss falls through to insert, which copies b
	// into a string it owns before it is ever used as a map key.
	view := unsafe.String(unsafe.SliceData(b), len(b))
	tab.mut.RLock()
	s, ok := tab.intern[view]
	tab.mut.RUnlock()
	if ok {
		return s
	}
	return tab.insert(string(b))
}

// Get returns a string equal to s, reusing a previously interned string
// when one exists.
func (tab *Table) Get(s string) string {
	if tab == nil {
		return s
	}
	tab.mut.RLock()
	interned, ok := tab.intern[s]
	tab.mut.RUnlock()
	if ok {
		return interned
	}
	return tab.insert(s)
}

func (tab *Table) insert(s string) string {
	tab.mut.Lock()
	defer tab.mut.Unlock()
	if interned, ok := tab.intern[s]; ok {
		return interned
	}
	tab.intern[s] = s
	return s
}

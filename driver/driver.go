// Package driver loads source files from disk through the reader,
// caching each file's tree by path. It is grounded loosely on the
// teacher's lisp/package.go PackageRegistry: a mutex-guarded map keyed
// by name, generalized here from loaded packages to loaded file trees.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/node"
	"github.com/venturno/sexpr/reader"
)

// entry is one cached file: its tree, or the reason loading it failed.
type entry struct {
	tree *node.Node
	err  error
}

// Driver loads and caches file trees by absolute-or-as-given path. A
// zero Driver is not usable; construct one with New.
type Driver struct {
	mut   sync.Mutex
	cache map[string]*entry
}

// New returns an empty Driver.
func New() *Driver {
	return &Driver{cache: make(map[string]*entry)}
}

// LoadFile returns the tree for path, reading and parsing it the first
// time and serving the cached result (tree or error) on every later
// call with the same path. Diagnostics from the read are pushed to
// sink only on the call that actually performs the read; a cache hit
// replays no diagnostics.
func (d *Driver) LoadFile(path string, sink diagnostic.Sink) (*node.Node, error) {
	path = filepath.Clean(path)

	d.mut.Lock()
	if e, ok := d.cache[path]; ok {
		d.mut.Unlock()
		return e.tree, e.err
	}
	d.mut.Unlock()

	text, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("driver: read %s: %w", path, err)
		return d.store(path, nil, err)
	}

	tree, err := reader.ReadBytes(path, text, sink)
	return d.store(path, tree, err)
}

// Forget evicts path from the cache, if present, so a later LoadFile
// re-reads it from disk.
func (d *Driver) Forget(path string) {
	path = filepath.Clean(path)
	d.mut.Lock()
	defer d.mut.Unlock()
	delete(d.cache, path)
}

func (d *Driver) store(path string, tree *node.Node, err error) (*node.Node, error) {
	d.mut.Lock()
	defer d.mut.Unlock()
	if e, ok := d.cache[path]; ok {
		// Another goroutine raced us to load the same path; keep whichever
		// result landed first so every caller observes one consistent tree.
		return e.tree, e.err
	}
	d.cache[path] = &entry{tree: tree, err: err}
	return tree, err
}

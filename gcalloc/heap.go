// Package gcalloc implements component I: a thin allocation/root/
// finalizer seam backed by Go's own garbage collector rather than a
// hand-rolled one. Gauche's collector is Boehm GC, invoked implicitly by
// every allocation and never exposed as an API surface of its own. No
// other package of this module imports gcalloc; the other components
// allocate with Go's make/new directly.
package gcalloc

import (
	"runtime"
	"sync"
)

// Heap is the allocation/root/finalizer seam. The other components of
// this module do not call through it; they use Go's make/new directly.
type Heap interface {
	// NewAtomic allocates an n-byte block presumed to contain no Go
	// pointers -- the Go analogue of Boehm's GC_malloc_atomic, kept for
	// the caller's documentation value even though Go's precise
	// collector scans it correctly either way.
	NewAtomic(n int) []byte
	// NewPointer allocates a block of n scanned slots -- the Go
	// analogue of GC_malloc.
	NewPointer(n int) []any
	// AddRoot keeps v strongly reachable until RemoveRoot is called,
	// for values a caller holds outside Go's ordinary stack/global scan
	// (GC_add_roots' conservative analogue).
	AddRoot(v any)
	// RemoveRoot releases a value added by AddRoot.
	RemoveRoot(v any)
	// SetFinalizer arranges for finalizer to run when obj becomes
	// unreachable, wrapping runtime.SetFinalizer.
	SetFinalizer(obj any, finalizer func(any))
}

type goHeap struct {
	mu    sync.Mutex
	roots map[any]struct{}
}

// New returns the default Heap, backed directly by the Go runtime.
func New() Heap {
	return &goHeap{roots: make(map[any]struct{})}
}

func (h *goHeap) NewAtomic(n int) []byte {
	return make([]byte, n)
}

func (h *goHeap) NewPointer(n int) []any {
	return make([]any, n)
}

func (h *goHeap) AddRoot(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roots[v] = struct{}{}
}

func (h *goHeap) RemoveRoot(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.roots, v)
}

func (h *goHeap) SetFinalizer(obj any, finalizer func(any)) {
	runtime.SetFinalizer(obj, finalizer)
}

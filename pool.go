package grove

import (
	"reflect"
	"sync"
)

// Buffer is a reusable slice of collection results checked out of a Pool.
// Items is valid from Acquire until Release; holding Items (or a reference
// into it) past Release is a use-after-free style bug, since the buffer may
// be handed to the next traversal.
type Buffer[T any] struct {
	Items []T

	pool     *Pool[T]
	released bool
}

// Release returns the buffer to its pool. Releasing twice is a no-op beyond
// a debug-mode warning.
func (b *Buffer[T]) Release() {
	b.pool.Release(b)
}

// Pool is a free list of result buffers for one element type. Acquired
// buffers come back cleared. Checkout is exclusive: a buffer is never
// handed out again until it has been released.
//
// Traversals are synchronous and single-threaded, so the intended
// discipline is a simple stack rule: release every buffer on every exit
// path, and never hold two checkouts of the same element type open across
// a call that may itself acquire one.
type Pool[T any] struct {
	mu          sync.Mutex
	free        []*Buffer[T]
	outstanding int
}

// NewPool creates an empty pool. Most callers want the process-wide
// SharedPool instead; explicit pools exist for injection and for tests.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Acquire checks a cleared buffer out of the pool, reusing a previously
// released one when available.
func (p *Pool[T]) Acquire() *Buffer[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outstanding++
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		b.Items = b.Items[:0]
		b.released = false
		return b
	}
	return &Buffer[T]{pool: p}
}

// Release returns b to the pool. Each checkout must be released exactly
// once; a second release is ignored (with a debug-mode warning) so a
// misplaced defer cannot corrupt the free list.
func (p *Pool[T]) Release(b *Buffer[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b.released {
		debugWarnDoubleRelease(reflect.TypeOf(b).String())
		return
	}
	b.released = true
	p.outstanding--
	p.free = append(p.free, b)
}

// Outstanding returns the number of buffers currently checked out.
// Useful in tests to assert every exit path released its buffer.
func (p *Pool[T]) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}

// sharedPools maps element types to their process-wide *Pool[T].
var sharedPools sync.Map // reflect.Type -> any

// SharedPool returns the process-wide pool for element type T, creating it
// on first use. ComponentsInSubtree and ActiveComponentsInSubtree draw
// from these pools.
func SharedPool[T any]() *Pool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := sharedPools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := sharedPools.LoadOrStore(key, NewPool[T]())
	return p.(*Pool[T])
}

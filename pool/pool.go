// Package pool provides a thread-safe LIFO object pool.
//
// Unlike sync.Pool, nothing pooled here is ever dropped behind the caller's
// back: every object handed out by Acquire was either built by the caller's
// factory or previously given back via Release, and pooled objects live
// until the pool itself goes away. That makes the pool suitable for objects
// whose population the caller wants to reason about, at the cost of managing
// teardown itself.
package pool

import "github.com/strayfield/textbase/mutex"

// Pool is an unbounded LIFO pool of objects of one type.
//
// The zero value is an empty pool ready for use. A Pool is a fixed, shared
// resource per use site and must not be copied after first use.
type Pool[T any] struct {
	mu    mutex.Mutex
	items []T
}

// Acquire returns the most recently released object, or a fresh one from
// factory when the pool is empty. Ownership of the returned object moves to
// the caller.
//
// The factory runs with the pool's lock released, so a slow factory does not
// serialize unrelated Acquire and Release calls. The factory may therefore
// run concurrently with any other pool operation, including other factory
// invocations.
func (p *Pool[T]) Acquire(factory func() T) T {
	if item, ok := p.tryPop(); ok {
		return item
	}
	return factory()
}

// Release puts item on top of the pool; ownership moves to the pool. A
// Release immediately followed by an uncontended Acquire returns the same
// object.
func (p *Pool[T]) Release(item T) {
	defer mutex.Guard(&p.mu).Release()

	p.items = append(p.items, item)
}

// Len reports how many objects are pooled right now. The answer can be stale
// as soon as it is returned; it is meant for diagnostics and tests.
func (p *Pool[T]) Len() int {
	defer mutex.Guard(&p.mu).Release()

	return len(p.items)
}

func (p *Pool[T]) tryPop() (T, bool) {
	defer mutex.Guard(&p.mu).Release()

	var zero T
	n := len(p.items)
	if n == 0 {
		return zero, false
	}

	item := p.items[n-1]
	p.items[n-1] = zero // don't keep the object alive from the pool's slice
	p.items = p.items[:n-1]
	return item, true
}

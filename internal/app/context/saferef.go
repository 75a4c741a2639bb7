package appctx

import "sync"

// SafeRef guards a value shared between request goroutines and background
// work, such as the launch table that running JVMs write their outcome into.
// View and Get take the read lock; Update takes the write lock.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns the value. For reference types (maps, pointers) the result
// aliases the guarded value; use View to read those under the lock.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// View calls fn with the value under the read lock. fn must not mutate it
// or retain references past its return.
func (r *SafeRef[T]) View(fn func(T)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.val)
}

// Update calls fn with a pointer to the value under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

package utils

import "sync"

// RingBuffer is a fixed-size, thread-safe buffer of T. Pushing into a full
// buffer overwrites the oldest element. Elements are kept in insertion order,
// oldest first.
//
//	rb := NewRingBuffer[int](3)
//	rb.Push(1)
//	rb.Push(2)
//	rb.Push(3)
//	rb.Push(4) // 1 is overwritten
//	fmt.Println(rb.ToSlice()) // [2 3 4]
type RingBuffer[T any] struct {
	data  []T
	size  int
	count int
	head  int // oldest element
	tail  int // next write position
	mu    sync.RWMutex
}

// NewRingBuffer creates a buffer holding up to size elements. It panics if
// size is not positive.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size <= 0 {
		panic("ring buffer size must be positive")
	}
	return &RingBuffer[T]{
		data: make([]T, size),
		size: size,
	}
}

// Push appends item, overwriting the oldest element when the buffer is full.
func (rb *RingBuffer[T]) Push(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.data[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size

	if rb.count < rb.size {
		rb.count++
	} else {
		rb.head = (rb.head + 1) % rb.size
	}
}

// Len returns the number of stored elements, in [0, Cap()].
func (rb *RingBuffer[T]) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

// Cap returns the buffer capacity.
func (rb *RingBuffer[T]) Cap() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// At returns the i-th element, where 0 is the oldest. It panics if i is out
// of [0, Len()).
func (rb *RingBuffer[T]) At(i int) T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	if i < 0 || i >= rb.count {
		panic("index out of range")
	}
	return rb.at(i)
}

// Last returns the newest element and false when the buffer is empty.
func (rb *RingBuffer[T]) Last() (T, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	if rb.count == 0 {
		var zero T
		return zero, false
	}
	return rb.at(rb.count - 1), true
}

// ToSlice returns a copy of the elements, oldest first.
func (rb *RingBuffer[T]) ToSlice() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	result := make([]T, rb.count)
	for i := 0; i < rb.count; i++ {
		result[i] = rb.at(i)
	}
	return result
}

func (rb *RingBuffer[T]) at(i int) T {
	return rb.data[(rb.head+i)%rb.size]
}

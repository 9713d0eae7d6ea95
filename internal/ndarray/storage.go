package ndarray

import (
	"fmt"
	"math"
)

// PointerPolicy tells whether an array owns its buffer.
type PointerPolicy int

const (
	// Copy means the array exclusively owns its buffer.
	Copy PointerPolicy = iota
	// Shell means the array borrows a caller-owned buffer. The caller must
	// keep the buffer alive and must not resize it while the array is in use.
	Shell
)

// String returns the policy name.
func (p PointerPolicy) String() string {
	switch p {
	case Copy:
		return "COPY"
	case Shell:
		return "SHELL"
	default:
		return "UNKNOWN"
	}
}

// maxAllocBytes bounds a single allocation request.
const maxAllocBytes = math.MaxInt / 2

// storage is the element buffer: either owned (Copy) or borrowed (Shell).
// The policy is consulted only when a buffer is created or dropped.
type storage[T Element] struct {
	data   []T
	policy PointerPolicy
}

// allocate returns a zeroed owned buffer of n elements.
func allocate[T Element](n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot allocate %d elements: %w", n, ErrAllocationFailure)
	}
	if n == 0 {
		return nil, nil
	}
	if size := elemSize[T](); n > maxAllocBytes/size {
		return nil, fmt.Errorf("cannot allocate %d elements of %d bytes: %w", n, size, ErrAllocationFailure)
	}
	defer func() {
		// make panics on requests the runtime cannot satisfy.
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("cannot allocate %d elements: %v: %w", n, r, ErrAllocationFailure)
		}
	}()
	return make([]T, n), nil
}

// ownedStorage allocates n zeroed elements.
func ownedStorage[T Element](n int) (storage[T], error) {
	buf, err := allocate[T](n)
	if err != nil {
		return storage[T]{}, err
	}
	return storage[T]{data: buf, policy: Copy}, nil
}

// copiedStorage allocates len(src) elements and copies src in.
func copiedStorage[T Element](src []T) (storage[T], error) {
	st, err := ownedStorage[T](len(src))
	if err != nil {
		return storage[T]{}, err
	}
	copy(st.data, src)
	return st, nil
}

// shellStorage wraps src without copying. An empty src still yields a Shell.
func shellStorage[T Element](src []T) storage[T] {
	return storage[T]{data: src, policy: Shell}
}

// release drops the buffer. Owned memory becomes garbage; a shell only
// forgets the caller's slice.
func (s *storage[T]) release() {
	s.data = nil
	s.policy = Copy
}

// owns reports whether the buffer is exclusively owned.
func (s *storage[T]) owns() bool {
	return s.policy == Copy
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buf

// OverwriteOldest is the overwrite policy that always accepts an
// incoming value, discarding the currently oldest stored element when
// full. Order is best-effort recency: a slow reader observes the most
// recent window of writes, not every write.
//
// Overwriting needs to replace a specific stored slot in place, which
// a queue's enqueue/dequeue interface cannot express, so the overwrite
// policies use a plain ring over a slice.
type OverwriteOldest[T any] struct {
	data  []T
	first int
	size  int

	// An extended rendezvous may be in progress when an overwrite
	// lands on the held slot. The held value was already handed to the
	// reader, so EndGet must not consume its replacement.
	held        bool
	overwritten bool
}

// NewOverwriteOldest returns an empty overwrite-oldest store of the
// given capacity. Capacity below one is a construction error.
func NewOverwriteOldest[T any](capacity int) *OverwriteOldest[T] {
	if capacity < 1 {
		panic("buf: construction: OverwriteOldest capacity must be at least 1")
	}
	return &OverwriteOldest[T]{data: make([]T, capacity)}
}

func (b *OverwriteOldest[T]) Get() T {
	v := b.data[b.first]
	var zero T
	b.data[b.first] = zero
	b.first = (b.first + 1) % len(b.data)
	b.size--
	return v
}

func (b *OverwriteOldest[T]) Put(v T) {
	if b.size == len(b.data) {
		if b.held {
			b.overwritten = true
		}
		b.first = (b.first + 1) % len(b.data)
		b.size--
	}
	b.data[(b.first+b.size)%len(b.data)] = v
	b.size++
}

func (b *OverwriteOldest[T]) StartGet() T {
	b.held = true
	b.overwritten = false
	return b.data[b.first]
}

func (b *OverwriteOldest[T]) EndGet() {
	if !b.overwritten {
		var zero T
		b.data[b.first] = zero
		b.first = (b.first + 1) % len(b.data)
		b.size--
	}
	b.held = false
	b.overwritten = false
}

func (b *OverwriteOldest[T]) ReadyForGet() bool { return b.size > 0 }

// ReadyForPut always holds: a full store sacrifices its oldest element.
func (b *OverwriteOldest[T]) ReadyForPut() bool { return true }

func (b *OverwriteOldest[T]) Clone() Store[T] {
	return NewOverwriteOldest[T](len(b.data))
}

// OverwriteNewest is the overwrite policy that accepts every incoming
// value logically but discards the incoming value itself when full:
// the stored content is unchanged, so a slow reader observes the
// earliest window of writes.
type OverwriteNewest[T any] struct {
	data  []T
	first int
	size  int
}

// NewOverwriteNewest returns an empty overwrite-newest store of the
// given capacity. Capacity below one is a construction error.
func NewOverwriteNewest[T any](capacity int) *OverwriteNewest[T] {
	if capacity < 1 {
		panic("buf: construction: OverwriteNewest capacity must be at least 1")
	}
	return &OverwriteNewest[T]{data: make([]T, capacity)}
}

func (b *OverwriteNewest[T]) Get() T {
	v := b.data[b.first]
	var zero T
	b.data[b.first] = zero
	b.first = (b.first + 1) % len(b.data)
	b.size--
	return v
}

func (b *OverwriteNewest[T]) Put(v T) {
	if b.size == len(b.data) {
		return // full: the incoming value is the one sacrificed
	}
	b.data[(b.first+b.size)%len(b.data)] = v
	b.size++
}

func (b *OverwriteNewest[T]) StartGet() T { return b.data[b.first] }

func (b *OverwriteNewest[T]) EndGet() {
	var zero T
	b.data[b.first] = zero
	b.first = (b.first + 1) % len(b.data)
	b.size--
}

func (b *OverwriteNewest[T]) ReadyForGet() bool { return b.size > 0 }

// ReadyForPut always holds: a full store drops the incoming value.
func (b *OverwriteNewest[T]) ReadyForPut() bool { return true }

func (b *OverwriteNewest[T]) Clone() Store[T] {
	return NewOverwriteNewest[T](len(b.data))
}

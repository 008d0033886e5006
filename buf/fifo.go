// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buf

import "code.hybscloud.com/lfq"

// FIFO is the bounded blocking policy: strict first-in-first-out order
// with a hard capacity. The store itself never blocks — when full, the
// surrounding channel holds the writer until a reader frees a slot.
//
// Ring storage is an lfq SPSC queue. The channel lock already
// serializes access, so the store only adds the logical bookkeeping
// lfq does not carry: the size gate and the extended-rendezvous head.
type FIFO[T any] struct {
	ring     lfq.SPSC[T]
	slot     T // staging slot for enqueue, keeps Put values from escaping
	head     T // oldest value, dequeued but still counted (StartGet)
	hasHead  bool
	size     int
	capacity int
}

// NewFIFO returns an empty bounded blocking FIFO store of the given
// capacity. Capacity below one is a construction error.
func NewFIFO[T any](capacity int) *FIFO[T] {
	if capacity < 1 {
		panic("buf: construction: FIFO capacity must be at least 1")
	}
	b := &FIFO[T]{capacity: capacity}
	// lfq rings need at least two slots; the size gate enforces the
	// advertised capacity, so an oversize ring is not observable.
	b.ring.Init(max(capacity, 2))
	return b
}

// next consumes the oldest value, preferring the held head.
func (b *FIFO[T]) next() T {
	if b.hasHead {
		v := b.head
		var zero T
		b.head, b.hasHead = zero, false
		return v
	}
	v, err := b.ring.Dequeue()
	if err != nil {
		panic("buf: get on empty FIFO store")
	}
	return v
}

func (b *FIFO[T]) Get() T {
	v := b.next()
	b.size--
	return v
}

func (b *FIFO[T]) Put(v T) {
	b.slot = v
	if err := b.ring.Enqueue(&b.slot); err != nil {
		panic("buf: put on full FIFO store")
	}
	b.size++
}

// StartGet holds the oldest value outside the ring while keeping its
// capacity counted, so writers stay blocked until EndGet.
func (b *FIFO[T]) StartGet() T {
	if !b.hasHead {
		v, err := b.ring.Dequeue()
		if err != nil {
			panic("buf: get on empty FIFO store")
		}
		b.head, b.hasHead = v, true
	}
	return b.head
}

func (b *FIFO[T]) EndGet() {
	var zero T
	b.head, b.hasHead = zero, false
	b.size--
}

func (b *FIFO[T]) ReadyForGet() bool { return b.size > 0 }

func (b *FIFO[T]) ReadyForPut() bool { return b.size < b.capacity }

func (b *FIFO[T]) Clone() Store[T] { return NewFIFO[T](b.capacity) }

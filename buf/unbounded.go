// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buf

// Unbounded is the buffering policy that never rejects a value: the
// store grows as needed and keeps strict first-in-first-out order.
// Growable storage rules out a bounded ring, so the backing is a
// slice with a consumed-prefix index.
type Unbounded[T any] struct {
	data  []T
	first int
}

// NewUnbounded returns an empty unbounded FIFO store.
func NewUnbounded[T any]() *Unbounded[T] {
	return &Unbounded[T]{}
}

func (b *Unbounded[T]) Get() T {
	v := b.data[b.first]
	var zero T
	b.data[b.first] = zero
	b.first++
	b.compact()
	return v
}

func (b *Unbounded[T]) Put(v T) {
	b.data = append(b.data, v)
}

func (b *Unbounded[T]) StartGet() T { return b.data[b.first] }

func (b *Unbounded[T]) EndGet() {
	var zero T
	b.data[b.first] = zero
	b.first++
	b.compact()
}

// compact releases the consumed prefix once the store drains, so a
// long-lived channel does not pin every value it ever carried.
func (b *Unbounded[T]) compact() {
	if b.first == len(b.data) {
		b.data = b.data[:0]
		b.first = 0
	}
}

func (b *Unbounded[T]) ReadyForGet() bool { return b.first < len(b.data) }

// ReadyForPut always holds: the store never rejects.
func (b *Unbounded[T]) ReadyForPut() bool { return true }

func (b *Unbounded[T]) Clone() Store[T] { return NewUnbounded[T]() }

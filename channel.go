// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import (
	"sync"

	"code.hybscloud.com/iox"
)

// chanCore is the rendezvous engine behind every channel end. The two
// implementations are the zero-buffered syncChan and the store-backed
// bufChan; ends and shared-end wrappers are thin capability layers
// over this interface.
type chanCore[T any] interface {
	read() (T, error)
	startRead() (T, error)
	endRead() error
	write(v T) error
	tryRead() (T, error)
	tryWrite(v T) error
	pending() bool
	enable(a *Alternative) bool
	disable() bool
	setPoison(strength uint)
	level() uint
	id() Serial
}

// syncChan is the zero-buffered rendezvous core: exactly one writer
// and one reader complete each exchange, and the writer is held until
// its own value has been taken. That second phase is what lets a
// writer know its specific value was consumed even when the reader is
// an Alternative choosing among several guards.
//
// One mutex per channel, one broadcast condition variable for every
// wakeup (deposit, pickup, poison). Poison must reach all blocked
// parties at once, so waiters always re-check state in a loop.
type syncChan[T any] struct {
	mu   sync.Mutex
	cond sync.Cond

	slot    T
	full    bool // value deposited, not yet taken
	taking  bool // a committed reader is blocked on an empty slot
	held    bool // writer blocked until pickup (or EndRead)
	reading bool // extended rendezvous in progress

	alt *Alternative // Alternative currently enabled on this channel

	poison   uint
	immunity uint
	serial   Serial
}

func newSyncChan[T any](immunity uint) *syncChan[T] {
	c := &syncChan[T]{immunity: immunity, serial: nextSerial()}
	c.cond.L = &c.mu
	return c
}

func (c *syncChan[T]) write(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	c.slot = v
	c.full = true
	c.held = true
	if c.alt != nil {
		c.alt.schedule()
	}
	c.cond.Broadcast()
	for c.held && c.poison == 0 {
		c.cond.Wait()
	}
	if c.held {
		// poisoned before pickup: withdraw the value
		var zero T
		c.slot = zero
		c.full = false
		c.held = false
		return &PoisonError{Strength: c.poison}
	}
	return nil
}

func (c *syncChan[T]) read() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: Read during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	c.taking = true
	for !c.full {
		c.cond.Wait()
		if c.poison > 0 {
			c.taking = false
			return zero, &PoisonError{Strength: c.poison}
		}
	}
	c.taking = false
	v := c.slot
	c.slot = zero
	c.full = false
	c.held = false
	c.cond.Broadcast()
	return v, nil
}

func (c *syncChan[T]) startRead() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: StartRead during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	c.taking = true
	for !c.full {
		c.cond.Wait()
		if c.poison > 0 {
			c.taking = false
			return zero, &PoisonError{Strength: c.poison}
		}
	}
	c.taking = false
	v := c.slot
	c.slot = zero
	c.full = false
	c.reading = true
	// c.held stays true: the writer completes only at EndRead
	return v, nil
}

func (c *syncChan[T]) endRead() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.reading {
		panic("jcsp: illegal state: EndRead without StartRead")
	}
	c.reading = false
	c.held = false
	c.cond.Broadcast()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	return nil
}

func (c *syncChan[T]) tryRead() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: TryRead during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	if !c.full {
		return zero, iox.ErrWouldBlock
	}
	v := c.slot
	c.slot = zero
	c.full = false
	c.held = false
	c.cond.Broadcast()
	return v, nil
}

// tryWrite completes a rendezvous only against a reader that is
// already committed and blocked; an enabled Alternative has not
// committed and does not count.
func (c *syncChan[T]) tryWrite(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	if !c.taking || c.full {
		return iox.ErrWouldBlock
	}
	c.slot = v
	c.full = true
	c.cond.Broadcast()
	return nil
}

func (c *syncChan[T]) pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.full || c.poison > 0
}

func (c *syncChan[T]) enable(a *Alternative) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full || c.poison > 0 {
		return true
	}
	c.alt = a
	return false
}

func (c *syncChan[T]) disable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alt = nil
	return c.full || c.poison > 0
}

func (c *syncChan[T]) setPoison(strength uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strength <= c.immunity || strength <= c.poison {
		return
	}
	c.poison = strength
	if c.alt != nil {
		c.alt.schedule()
	}
	c.cond.Broadcast()
}

func (c *syncChan[T]) level() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poison
}

func (c *syncChan[T]) id() Serial { return c.serial }

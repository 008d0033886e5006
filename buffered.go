// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import (
	"sync"

	"code.hybscloud.com/iox"
	"github.com/FallenChen/jcsp/buf"
)

// bufChan is the store-backed channel core. The lock, poison and
// Alternative discipline match syncChan; storage decisions are
// delegated to the buffering policy. A writer blocks only while the
// store reports no capacity, and never waits for pickup: a buffered
// write completes once the store has accepted the value.
//
// Order is FIFO except under overwrite policies, which keep a
// best-effort recency window instead.
type bufChan[T any] struct {
	mu   sync.Mutex
	cond sync.Cond

	store   buf.Store[T]
	reading bool // extended rendezvous: capacity held until EndRead

	alt *Alternative

	poison   uint
	immunity uint
	serial   Serial
}

func newBufChan[T any](store buf.Store[T], immunity uint) *bufChan[T] {
	c := &bufChan[T]{store: store, immunity: immunity, serial: nextSerial()}
	c.cond.L = &c.mu
	return c
}

func (c *bufChan[T]) write(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	for !c.store.ReadyForPut() {
		c.cond.Wait()
		if c.poison > 0 {
			return &PoisonError{Strength: c.poison}
		}
	}
	c.store.Put(v)
	if c.alt != nil {
		c.alt.schedule()
	}
	c.cond.Broadcast()
	return nil
}

func (c *bufChan[T]) read() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: Read during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	for !c.store.ReadyForGet() {
		c.cond.Wait()
		if c.poison > 0 {
			return zero, &PoisonError{Strength: c.poison}
		}
	}
	v := c.store.Get()
	c.cond.Broadcast()
	return v, nil
}

func (c *bufChan[T]) startRead() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: StartRead during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	for !c.store.ReadyForGet() {
		c.cond.Wait()
		if c.poison > 0 {
			return zero, &PoisonError{Strength: c.poison}
		}
	}
	v := c.store.StartGet()
	c.reading = true
	return v, nil
}

func (c *bufChan[T]) endRead() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.reading {
		panic("jcsp: illegal state: EndRead without StartRead")
	}
	c.store.EndGet()
	c.reading = false
	c.cond.Broadcast()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	return nil
}

func (c *bufChan[T]) tryRead() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reading {
		panic("jcsp: illegal state: TryRead during extended rendezvous")
	}
	if c.poison > 0 {
		return zero, &PoisonError{Strength: c.poison}
	}
	if !c.store.ReadyForGet() {
		return zero, iox.ErrWouldBlock
	}
	v := c.store.Get()
	c.cond.Broadcast()
	return v, nil
}

func (c *bufChan[T]) tryWrite(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poison > 0 {
		return &PoisonError{Strength: c.poison}
	}
	if !c.store.ReadyForPut() {
		return iox.ErrWouldBlock
	}
	c.store.Put(v)
	if c.alt != nil {
		c.alt.schedule()
	}
	c.cond.Broadcast()
	return nil
}

func (c *bufChan[T]) pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.ReadyForGet() || c.poison > 0
}

func (c *bufChan[T]) enable(a *Alternative) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store.ReadyForGet() || c.poison > 0 {
		return true
	}
	c.alt = a
	return false
}

func (c *bufChan[T]) disable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alt = nil
	return c.store.ReadyForGet() || c.poison > 0
}

func (c *bufChan[T]) setPoison(strength uint) {
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

func (c *bufChan[T]) level() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poison
}

func (c *bufChan[T]) id() Serial { return c.serial }

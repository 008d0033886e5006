// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// claimLock serializes the competing owners of a shared channel end:
// at most one holder is mid-rendezvous at a time, and a holder that
// has claimed cannot back off.
//
// Ticket-based: acquire takes a ticket and waits its turn with
// adaptive backoff. Tickets are served in order, but wakeup under a
// loaded scheduler is best-effort — strict FIFO fairness among
// competing siblings is not guaranteed.
type claimLock struct {
	next atomix.Uint32
	turn atomix.Uint32
}

func (l *claimLock) acquire() {
	t := l.next.Add(1) - 1
	var bo iox.Backoff
	for l.turn.Load() != t {
		bo.Wait()
	}
}

func (l *claimLock) release() {
	l.turn.Add(1)
}

// SharedIn is an input end usable by many reader processes. Every
// operation claims the end, performs one complete input on the
// underlying channel, and releases. SharedIn is not a Guard: a shared
// read is commit-only, so it cannot participate in alternation.
type SharedIn[T any] struct {
	c     chanCore[T]
	claim claimLock
}

func (in *SharedIn[T]) Read() (T, error) {
	in.claim.acquire()
	v, err := in.c.read()
	in.claim.release()
	return v, err
}

// StartRead claims the end for the whole extended rendezvous; the
// claim is released by EndRead, or immediately when StartRead fails.
func (in *SharedIn[T]) StartRead() (T, error) {
	in.claim.acquire()
	v, err := in.c.startRead()
	if err != nil {
		in.claim.release()
	}
	return v, err
}

func (in *SharedIn[T]) EndRead() error {
	err := in.c.endRead()
	in.claim.release()
	return err
}

// Poison forwards to the channel without claiming: a poisoner must not
// queue behind the holders it is about to wake.
func (in *SharedIn[T]) Poison(strength uint) { in.c.setPoison(strength) }

// PoisonLevel returns the channel's current effective severity;
// zero means healthy.
func (in *SharedIn[T]) PoisonLevel() uint { return in.c.level() }

// Serial returns the serial number assigned to this end's channel.
func (in *SharedIn[T]) Serial() Serial { return in.c.id() }

// SharedOut is an output end usable by many writer processes. Every
// write claims the end, performs one complete output, and releases.
type SharedOut[T any] struct {
	c     chanCore[T]
	claim claimLock
}

func (out *SharedOut[T]) Write(v T) error {
	out.claim.acquire()
	err := out.c.write(v)
	out.claim.release()
	return err
}

// Poison forwards to the channel without claiming: a poisoner must not
// queue behind the holders it is about to wake.
func (out *SharedOut[T]) Poison(strength uint) { out.c.setPoison(strength) }

// PoisonLevel returns the channel's current effective severity;
// zero means healthy.
func (out *SharedOut[T]) PoisonLevel() uint { return out.c.level() }

// Serial returns the serial number assigned to this end's channel.
func (out *SharedOut[T]) Serial() Serial { return out.c.id() }

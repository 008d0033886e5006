// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

// ChannelOut is the write capability of a channel. An end grants only
// its own direction; a process handed an Out cannot read.
type ChannelOut[T any] interface {
	// Write hands v to the channel. On a zero-buffered channel it does
	// not return until a reader has taken this exact value; on a
	// buffered channel it returns once the store accepts v.
	Write(v T) error
	// Poison raises the channel severity to max(current, strength) and
	// wakes every blocked party.
	Poison(strength uint)
}

// ChannelIn is the read capability of a channel.
type ChannelIn[T any] interface {
	// Read blocks until a writer has deposited a value and takes it.
	Read() (T, error)
	// StartRead begins an extended rendezvous: the value is taken but
	// the writer stays blocked until EndRead.
	StartRead() (T, error)
	// EndRead completes an extended rendezvous and releases the writer.
	EndRead() error
	Poison(strength uint)
}

// AltingIn is a read capability that can stand as an Alternative
// guard. Only exclusive input ends qualify: a shared end is
// commit-only and cannot back off from a selection.
type AltingIn[T any] interface {
	ChannelIn[T]
	Guard
	// Pending reports, without blocking or committing, whether a Read
	// would currently proceed (a value is available or the channel is
	// poisoned).
	Pending() bool
}

// In is the exclusive input end of a channel: used by exactly one
// owning process at a time, with no extra locking, and usable as an
// Alternative guard.
type In[T any] struct {
	c chanCore[T]
}

func (in *In[T]) Read() (T, error) { return in.c.read() }

func (in *In[T]) StartRead() (T, error) { return in.c.startRead() }

func (in *In[T]) EndRead() error { return in.c.endRead() }

// TryRead is the non-blocking boundary: it takes a value only when one
// is immediately available and otherwise returns
// [code.hybscloud.com/iox.ErrWouldBlock].
func (in *In[T]) TryRead() (T, error) { return in.c.tryRead() }

func (in *In[T]) Pending() bool { return in.c.pending() }

func (in *In[T]) Poison(strength uint) { in.c.setPoison(strength) }

// PoisonLevel returns the channel's current effective severity;
// zero means healthy.
func (in *In[T]) PoisonLevel() uint { return in.c.level() }

// Serial returns the serial number assigned to this end's channel.
func (in *In[T]) Serial() Serial { return in.c.id() }

// Enable implements Guard. It is called by an Alternative only.
func (in *In[T]) Enable(a *Alternative) bool { return in.c.enable(a) }

// Disable implements Guard. It is called by an Alternative only.
func (in *In[T]) Disable() bool { return in.c.disable() }

// Out is the exclusive output end of a channel: used by exactly one
// owning process at a time, with no extra locking.
type Out[T any] struct {
	c chanCore[T]
}

func (out *Out[T]) Write(v T) error { return out.c.write(v) }

// TryWrite is the non-blocking boundary: it completes only when the
// write can finish without suspending this goroutine — a committed
// reader already waiting on a zero-buffered channel, or free store
// capacity on a buffered one — and otherwise returns
// [code.hybscloud.com/iox.ErrWouldBlock].
func (out *Out[T]) TryWrite(v T) error { return out.c.tryWrite(v) }

func (out *Out[T]) Poison(strength uint) { out.c.setPoison(strength) }

// PoisonLevel returns the channel's current effective severity;
// zero means healthy.
func (out *Out[T]) PoisonLevel() uint { return out.c.level() }

// Serial returns the serial number assigned to this end's channel.
func (out *Out[T]) Serial() Serial { return out.c.id() }

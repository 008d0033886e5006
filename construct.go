// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import "github.com/FallenChen/jcsp/buf"

// Config seeds channel construction: an optional buffering policy
// prototype and a poison immunity level. The zero value builds
// zero-buffered, fully poisonable channels.
//
// Construction state is always an explicit Config value passed by the
// caller; there is no process-wide default factory.
type Config[T any] struct {
	// Buffer is a prototype store, cloned once per constructed
	// channel so one prototype seeds independent buffers. Nil means
	// zero-buffered synchronous rendezvous.
	Buffer buf.Store[T]

	// Immunity is the poison immunity level: Poison(s) with
	// s <= Immunity leaves the channel healthy.
	Immunity uint
}

func (cfg Config[T]) core() chanCore[T] {
	if cfg.Buffer == nil {
		return newSyncChan[T](cfg.Immunity)
	}
	return newBufChan[T](cfg.Buffer.Clone(), cfg.Immunity)
}

// One2One builds a one-writer, one-reader channel and returns its two
// exclusive ends. The input end may be used as an Alternative guard.
func (cfg Config[T]) One2One() (*In[T], *Out[T]) {
	c := cfg.core()
	return &In[T]{c: c}, &Out[T]{c: c}
}

// Any2One builds a many-writer, one-reader channel. Writers compete
// for the shared output end; the exclusive input end may be used as
// an Alternative guard.
func (cfg Config[T]) Any2One() (*In[T], *SharedOut[T]) {
	c := cfg.core()
	return &In[T]{c: c}, &SharedOut[T]{c: c}
}

// One2Any builds a one-writer, many-reader channel. Readers compete
// for the shared input end, which is commit-only and cannot be used
// as an Alternative guard.
func (cfg Config[T]) One2Any() (*SharedIn[T], *Out[T]) {
	c := cfg.core()
	return &SharedIn[T]{c: c}, &Out[T]{c: c}
}

// Any2Any builds a many-writer, many-reader channel.
func (cfg Config[T]) Any2Any() (*SharedIn[T], *SharedOut[T]) {
	c := cfg.core()
	return &SharedIn[T]{c: c}, &SharedOut[T]{c: c}
}

// One2OneArray builds n independent One2One channels.
func (cfg Config[T]) One2OneArray(n int) ([]*In[T], []*Out[T]) {
	checkArrayLen(n)
	ins := make([]*In[T], n)
	outs := make([]*Out[T], n)
	for i := range ins {
		ins[i], outs[i] = cfg.One2One()
	}
	return ins, outs
}

// Any2OneArray builds n independent Any2One channels.
func (cfg Config[T]) Any2OneArray(n int) ([]*In[T], []*SharedOut[T]) {
	checkArrayLen(n)
	ins := make([]*In[T], n)
	outs := make([]*SharedOut[T], n)
	for i := range ins {
		ins[i], outs[i] = cfg.Any2One()
	}
	return ins, outs
}

// One2AnyArray builds n independent One2Any channels.
func (cfg Config[T]) One2AnyArray(n int) ([]*SharedIn[T], []*Out[T]) {
	checkArrayLen(n)
	ins := make([]*SharedIn[T], n)
	outs := make([]*Out[T], n)
	for i := range ins {
		ins[i], outs[i] = cfg.One2Any()
	}
	return ins, outs
}

// Any2AnyArray builds n independent Any2Any channels.
func (cfg Config[T]) Any2AnyArray(n int) ([]*SharedIn[T], []*SharedOut[T]) {
	checkArrayLen(n)
	ins := make([]*SharedIn[T], n)
	outs := make([]*SharedOut[T], n)
	for i := range ins {
		ins[i], outs[i] = cfg.Any2Any()
	}
	return ins, outs
}

func checkArrayLen(n int) {
	if n < 0 {
		panic("jcsp: construction: negative channel array length")
	}
}

// One2One builds a zero-buffered one-writer, one-reader channel.
func One2One[T any]() (*In[T], *Out[T]) { return Config[T]{}.One2One() }

// Any2One builds a zero-buffered many-writer, one-reader channel.
func Any2One[T any]() (*In[T], *SharedOut[T]) { return Config[T]{}.Any2One() }

// One2Any builds a zero-buffered one-writer, many-reader channel.
func One2Any[T any]() (*SharedIn[T], *Out[T]) { return Config[T]{}.One2Any() }

// Any2Any builds a zero-buffered many-writer, many-reader channel.
func Any2Any[T any]() (*SharedIn[T], *SharedOut[T]) { return Config[T]{}.Any2Any() }

// One2OneArray builds n independent zero-buffered One2One channels.
func One2OneArray[T any](n int) ([]*In[T], []*Out[T]) {
	return Config[T]{}.One2OneArray(n)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package buf provides pluggable buffering policies for buffered
// channels.
//
// A [Store] is the queueing discipline a buffered channel delegates
// its storage decisions to. The channel keeps all locking and blocking
// to itself; the store answers readiness queries and moves values.
//
//   - [FIFO]: bounded, strict order; a full store blocks the writer
//     (enforced by the channel, not the store).
//   - [OverwriteOldest]: never rejects; a full store drops its oldest
//     stored element.
//   - [OverwriteNewest]: never rejects logically; a full store drops
//     the incoming value and keeps its content unchanged.
//   - [Unbounded]: never rejects, never drops.
//
// Stores are prototypes: channel constructors call [Store.Clone] so a
// single store value can seed any number of independent channels.
package buf

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jcsp is a CSP concurrency runtime: synchronous and buffered
// channel communication between goroutine processes, plus
// non-deterministic choice (alternation) over communication guards.
//
// Processes share nothing and communicate only through channel ends.
// A channel is never exposed whole — construction hands out a typed
// capability pair, each granting one direction.
//
// # Architecture
//
//   - Rendezvous: [One2One] builds a zero-buffered channel. [Out.Write] does not
//     return until a reader has taken that exact value; [In.StartRead]/[In.EndRead]
//     split a read into an extended rendezvous that holds the writer while the
//     reader works.
//   - Ends: [In]/[Out] are exclusive ends for one owning process each.
//     [SharedIn]/[SharedOut] ([Any2One], [One2Any], [Any2Any]) serialize many
//     owners behind a claim lock; claim order is best-effort, not strict FIFO.
//   - Buffering: [Config] clones a prototype policy from [github.com/FallenChen/jcsp/buf]
//     into each constructed channel — bounded blocking, overwrite-oldest,
//     overwrite-newest, or unbounded.
//   - Alternation: [Alternative] commits to exactly one ready [Guard] via a
//     race-free two-phase enable/disable protocol, with [Alternative.PriSelect]
//     (priority) or [Alternative.FairSelect] (round-robin) tie-break. [Timer]
//     and [Skip] are value-free guards; a Skip makes a priority selection a poll.
//   - Poison: [In.Poison] (or any other end) raises a monotonic severity,
//     broadcast-wakes every blocked party, and fails all later operations with
//     [PoisonError]. [Config.Immunity] bounds which strengths take effect.
//   - Non-blocking boundary: [In.TryRead] and [Out.TryWrite] return
//     [code.hybscloud.com/iox.ErrWouldBlock] instead of suspending; transports
//     and adapters poll the boundary the same way.
//
// # Example
//
//	in, out := jcsp.One2One[int]()
//	tim := &jcsp.Timer{}
//	tim.SetAlarmAfter(100 * time.Millisecond)
//	alt := jcsp.NewAlternative(in, tim)
//
//	jcsp.Parallel(
//		func() { _ = out.Write(42) },
//		func() {
//			if i, err := alt.PriSelect(); err == nil && i == 0 {
//				n, _ := in.Read()
//				fmt.Println(n)
//			}
//		},
//	)
package jcsp

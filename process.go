// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import "github.com/sourcegraph/conc"

// Process is a CSP process: sequential code that communicates with
// the rest of the network only through the channel ends it was given.
type Process func()

// Parallel runs every process in its own goroutine and returns when
// all of them have terminated. A panic in any process — an illegal
// state, a failed construction — resurfaces on the caller after the
// siblings finish.
func Parallel(procs ...Process) {
	wg := conc.NewWaitGroup()
	for _, p := range procs {
		wg.Go(p)
	}
	wg.Wait()
}

// Sequence runs the processes one after another on the calling
// goroutine.
func Sequence(procs ...Process) {
	for _, p := range procs {
		p()
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp_test

import (
	"testing"
	"time"
)

// settle is long enough for a goroutine that is going to block to be
// observed blocked.
const settle = 50 * time.Millisecond

// waitDeadline bounds every "must happen eventually" wait in the
// tests; hitting it means a wakeup was lost.
const waitDeadline = 5 * time.Second

// eventually polls cond until it holds or the deadline passes.
func eventually(tb testing.TB, cond func() bool) {
	tb.Helper()
	end := time.Now().Add(waitDeadline)
	for time.Now().Before(end) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	tb.Fatal("condition not reached before deadline")
}

// recv waits on a result channel with the test deadline applied.
func recv[T any](tb testing.TB, ch <-chan T) T {
	tb.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitDeadline):
		tb.Fatal("no result before deadline")
		panic("unreachable")
	}
}

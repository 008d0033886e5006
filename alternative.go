// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import (
	"time"

	"code.hybscloud.com/atomix"
)

// Guard is anything an Alternative can wait on: exclusive channel
// input ends, timers, and skips.
//
// Enable atomically tests current readiness and, when not ready,
// registers the Alternative as the guard's pending waiter. Disable
// deregisters and reports whether the guard became ready meanwhile;
// it is idempotent and safe to call on a guard that was never waited
// on. Enable and Disable are the only registration path a guard may
// offer, and an accepted handoff is irrevocable once one waiter has
// committed to it.
type Guard interface {
	Enable(a *Alternative) bool
	Disable() bool
}

// Selection state machine. Entry is guarded by compare-and-swap so a
// second process selecting on the same Alternative panics instead of
// corrupting the round.
const (
	altIdle uint32 = iota
	altEnabling
	altWaiting
	altDisabling
)

// Alternative resolves a non-deterministic choice among an ordered
// sequence of Guards, committing to exactly one per selection.
//
// An Alternative is owned by a single selecting process. It may be
// reused for any number of sequential selections but never shared,
// and a given channel input should appear at most once among its
// guards.
type Alternative struct {
	guards []Guard
	state  atomix.Uint32
	wake   chan struct{}

	favourite int // fair-selection resume point
	alarm     time.Time
	hasAlarm  bool
}

// NewAlternative builds an Alternative over the given guard sequence.
// Guard order is the priority order for PriSelect.
func NewAlternative(guards ...Guard) *Alternative {
	if len(guards) == 0 {
		panic("jcsp: construction: Alternative needs at least one guard")
	}
	gs := make([]Guard, len(guards))
	copy(gs, guards)
	return &Alternative{
		guards: gs,
		wake:   make(chan struct{}, 1),
	}
}

// Select commits to one ready guard and returns its index. The
// tie-break among simultaneously ready guards is arbitrary; callers
// that need a deterministic or starvation-free policy use PriSelect
// or FairSelect. If the committed guard's channel is poisoned, the
// index is returned together with a *PoisonError.
func (a *Alternative) Select() (int, error) {
	return a.doSelect(0, nil)
}

// PriSelect commits to the ready guard with the lowest index
// (deterministic priority).
func (a *Alternative) PriSelect() (int, error) {
	return a.doSelect(0, nil)
}

// PriSelectMasked is PriSelect with a per-call enable mask: guards
// whose active entry is false are not enabled this round.
func (a *Alternative) PriSelectMasked(active []bool) (int, error) {
	return a.doSelect(0, a.checkMask(active))
}

// FairSelect resumes the readiness scan just after the index returned
// by this Alternative's previous fair selection, so a perpetually
// ready guard cannot starve its siblings.
func (a *Alternative) FairSelect() (int, error) {
	return a.doSelect(a.favourite, nil)
}

// FairSelectMasked is FairSelect with a per-call enable mask.
func (a *Alternative) FairSelectMasked(active []bool) (int, error) {
	return a.doSelect(a.favourite, a.checkMask(active))
}

func (a *Alternative) checkMask(active []bool) []bool {
	if len(active) != len(a.guards) {
		panic("jcsp: illegal state: enable mask length does not match guard count")
	}
	for _, on := range active {
		if on {
			return active
		}
	}
	panic("jcsp: illegal state: enable mask disables every guard")
}

// doSelect runs the two-phase enable/disable protocol from offset.
//
// Phase order is what makes the selection race-free: enable registers
// this Alternative on every not-yet-ready guard before the wait, so a
// writer arriving at any moment either was seen as ready during
// enable or finds the registration and schedules a wake; disable then
// deregisters every enabled guard, and readiness is committed from
// the disable results alone. Without the disable sweep a concurrent
// selector could believe the same pending writer is theirs.
func (a *Alternative) doSelect(offset int, active []bool) (int, error) {
	if !a.state.CompareAndSwap(altIdle, altEnabling) {
		panic("jcsp: illegal state: Alternative selected concurrently")
	}

	n := len(a.guards)
	selected := -1
	for selected == -1 {
		a.state.Store(altEnabling)
		// Drop any stale token: one left by a guard that became ready
		// after an earlier round had committed elsewhere, or one whose
		// readiness a competing reader has since consumed.
		select {
		case <-a.wake:
		default:
		}
		a.hasAlarm = false

		enabled := 0
		for k := 0; k < n; k++ {
			i := (offset + k) % n
			enabled = k + 1
			if active != nil && !active[i] {
				continue
			}
			if a.guards[i].Enable(a) {
				selected = i
				break
			}
		}

		if selected == -1 {
			a.state.Store(altWaiting)
			if a.hasAlarm {
				if d := time.Until(a.alarm); d > 0 {
					t := time.NewTimer(d)
					select {
					case <-a.wake:
					case <-t.C:
					}
					t.Stop()
				}
			} else {
				<-a.wake
			}
		}

		a.state.Store(altDisabling)
		// Reverse order: the last write wins, so the surviving index
		// is the ready guard nearest the scan origin — lowest index
		// under priority, next-after-favourite under fair.
		for k := enabled - 1; k >= 0; k-- {
			i := (offset + k) % n
			if active != nil && !active[i] {
				continue
			}
			if a.guards[i].Disable() {
				selected = i
			}
		}
		// selected may still be -1: a racing consumer can take the
		// value between our wakeup and the disable sweep. The handoff
		// went elsewhere, so enable and wait again.
	}
	a.state.Store(altIdle)
	a.favourite = (selected + 1) % n

	if g, ok := a.guards[selected].(interface{ PoisonLevel() uint }); ok {
		if p := g.PoisonLevel(); p > 0 {
			return selected, &PoisonError{Strength: p}
		}
	}
	return selected, nil
}

// setAlarm records the earliest timer deadline of the current round.
// Owner-only: called from a Timer's Enable on the selecting goroutine.
func (a *Alternative) setAlarm(at time.Time) {
	if !a.hasAlarm || at.Before(a.alarm) {
		a.alarm = at
		a.hasAlarm = true
	}
}

// schedule wakes the selecting process. Guards call it with their
// channel lock held, so it must never block: the token channel has
// capacity one and redundant wakes collapse into the pending token.
func (a *Alternative) schedule() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import "time"

// Timer is a value-free Guard that becomes ready at an absolute alarm
// time, giving an Alternative a bounded wait: the timer is selected if
// no other guard becomes ready first. Committing to a timer is a
// no-op.
//
// A Timer belongs to the process that selects on it. The zero value is
// unarmed and counts as already expired.
type Timer struct {
	alarm time.Time
}

// SetAlarm arms the timer at an absolute deadline.
func (t *Timer) SetAlarm(at time.Time) { t.alarm = at }

// SetAlarmAfter arms the timer d from now.
func (t *Timer) SetAlarmAfter(d time.Duration) { t.alarm = time.Now().Add(d) }

// Alarm returns the current deadline.
func (t *Timer) Alarm() time.Time { return t.alarm }

// Enable implements Guard: ready at or after the alarm; otherwise the
// deadline is lodged with the Alternative for a timed wait.
func (t *Timer) Enable(a *Alternative) bool {
	if !t.alarm.After(time.Now()) {
		return true
	}
	a.setAlarm(t.alarm)
	return false
}

// Disable implements Guard.
func (t *Timer) Disable() bool {
	return !t.alarm.After(time.Now())
}

// Skip is a Guard that is always ready and carries no value. A Skip as
// the lowest-priority guard of a PriSelect turns the selection into a
// poll that never blocks.
type Skip struct{}

// Enable implements Guard.
func (Skip) Enable(*Alternative) bool { return true }

// Disable implements Guard.
func (Skip) Disable() bool { return true }

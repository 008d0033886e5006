// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp

import (
	"errors"
	"fmt"
)

// PoisonError reports that a channel operation found the channel
// poisoned. Strength is the effective severity observed by the failing
// operation; a channel's severity never decreases, so every later
// failure on the same channel carries at least this strength.
type PoisonError struct {
	Strength uint
}

func (e *PoisonError) Error() string {
	return fmt.Sprintf("jcsp: channel poisoned (strength %d)", e.Strength)
}

// IsPoisoned reports whether err is a channel poison failure.
func IsPoisoned(err error) bool {
	var pe *PoisonError
	return errors.As(err, &pe)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp_test

import (
	"testing"
	"testing/quick"

	"github.com/FallenChen/jcsp"
	"github.com/FallenChen/jcsp/buf"
)

func TestPropertyRendezvousPreservesOrder(t *testing.T) {
	f := func(xs []int) bool {
		in, out := jcsp.One2One[int]()
		got := make([]int, 0, len(xs))
		jcsp.Parallel(
			func() {
				for _, x := range xs {
					if err := out.Write(x); err != nil {
						return
					}
				}
			},
			func() {
				for range xs {
					v, err := in.Read()
					if err != nil {
						return
					}
					got = append(got, v)
				}
			},
		)
		if len(got) != len(xs) {
			return false
		}
		for i, x := range xs {
			if got[i] != x {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyUnboundedPreservesOrder(t *testing.T) {
	f := func(xs []uint16) bool {
		in, out := jcsp.Config[uint16]{Buffer: buf.NewUnbounded[uint16]()}.One2One()
		for _, x := range xs {
			if err := out.Write(x); err != nil {
				return false
			}
		}
		for _, x := range xs {
			v, err := in.Read()
			if err != nil || v != x {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyPoisonLevelIsMaxAboveImmunity(t *testing.T) {
	f := func(strengths []uint8, immunity uint8) bool {
		in, out := jcsp.Config[int]{Immunity: uint(immunity)}.One2One()
		want := uint(0)
		for i, s8 := range strengths {
			s := uint(s8)
			if i%2 == 0 {
				out.Poison(s)
			} else {
				in.Poison(s)
			}
			if s > uint(immunity) && s > want {
				want = s
			}
		}
		return in.PoisonLevel() == want && out.PoisonLevel() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPropertyOverwriteOldestKeepsLastWindow(t *testing.T) {
	const capacity = 4
	f := func(xs []int) bool {
		in, out := jcsp.Config[int]{Buffer: buf.NewOverwriteOldest[int](capacity)}.One2One()
		for _, x := range xs {
			if err := out.Write(x); err != nil {
				return false
			}
		}
		start := 0
		if len(xs) > capacity {
			start = len(xs) - capacity
		}
		for _, x := range xs[start:] {
			v, err := in.Read()
			if err != nil || v != x {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

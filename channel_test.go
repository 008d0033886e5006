// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jcsp_test

import (
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"github.com/FallenChen/jcsp"
)

func TestRendezvousDeliversInWriterOrder(t *testing.T) {
	const n = 100
	in, out := jcsp.One2One[int]()

	got := make([]int, 0, n)
	jcsp.Parallel(
		func() {
			for i := 0; i < n; i++ {
				if err := out.Write(i); err != nil {
					t.Errorf("write %d: %v", i, err)
					return
				}
			}
		},
		func() {
			for i := 0; i < n; i++ {
				v, err := in.Read()
				if err != nil {
					t.Errorf("read %d: %v", i, err)
					return
				}
				got = append(got, v)
			}
		},
	)

	for i, v := range got {
		if v != i {
			t.Fatalf("exchange %d carried %d, want %d", i, v, i)
		}
	}
}

func TestWriteBlocksUntilPickup(t *testing.T) {
	in, out := jcsp.One2One[string]()

	var done atomic.Bool
	go func() {
		if err := out.Write("hold"); err != nil {
			t.Errorf("write: %v", err)
		}
		done.Store(true)
	}()

	time.Sleep(settle)
	if done.Load() {
		t.Fatal("write returned before any reader took the value")
	}

	v, err := in.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != "hold" {
		t.Fatalf("read got %q, want %q", v, "hold")
	}
	eventually(t, done.Load)
}

func TestExtendedRendezvousHoldsWriter(t *testing.T) {
	in, out := jcsp.One2One[int]()

	var done atomic.Bool
	go func() {
		if err := out.Write(7); err != nil {
			t.Errorf("write: %v", err)
		}
		done.Store(true)
	}()

	v, err := in.StartRead()
	if err != nil {
		t.Fatalf("start read: %v", err)
	}
	if v != 7 {
		t.Fatalf("start read got %d, want 7", v)
	}

	// The value is taken, but the writer's synchronous-completion
	// contract is still open.
	time.Sleep(settle)
	if done.Load() {
		t.Fatal("write returned before EndRead")
	}

	if err := in.EndRead(); err != nil {
		t.Fatalf("end read: %v", err)
	}
	eventually(t, done.Load)
}

func TestEndReadWithoutStartReadPanics(t *testing.T) {
	in, _ := jcsp.One2One[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unpaired EndRead")
		}
	}()
	_ = in.EndRead()
}

func TestReadDuringExtendedRendezvousPanics(t *testing.T) {
	in, out := jcsp.One2One[int]()
	go func() { _ = out.Write(1) }()
	if _, err := in.StartRead(); err != nil {
		t.Fatalf("start read: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Read inside extended rendezvous")
		}
	}()
	_, _ = in.Read()
}

func TestTryReadWouldBlockWithoutWriter(t *testing.T) {
	in, _ := jcsp.One2One[int]()
	if _, err := in.TryRead(); !iox.IsWouldBlock(err) {
		t.Fatalf("try read on idle channel: %v, want ErrWouldBlock", err)
	}
}

func TestTryReadTakesPendingValue(t *testing.T) {
	in, out := jcsp.One2One[int]()

	var done atomic.Bool
	go func() {
		if err := out.Write(9); err != nil {
			t.Errorf("write: %v", err)
		}
		done.Store(true)
	}()

	eventually(t, in.Pending)
	v, err := in.TryRead()
	if err != nil {
		t.Fatalf("try read: %v", err)
	}
	if v != 9 {
		t.Fatalf("try read got %d, want 9", v)
	}
	eventually(t, done.Load)
}

func TestTryWriteNeedsCommittedReader(t *testing.T) {
	in, out := jcsp.One2One[int]()

	if err := out.TryWrite(1); !iox.IsWouldBlock(err) {
		t.Fatalf("try write with no reader: %v, want ErrWouldBlock", err)
	}

	res := make(chan int, 1)
	go func() {
		v, err := in.Read()
		if err != nil {
			t.Errorf("read: %v", err)
		}
		res <- v
	}()

	// Wait until the reader is committed, then the non-blocking write
	// must complete the exchange.
	eventually(t, func() bool { return out.TryWrite(2) == nil })
	if v := recv(t, res); v != 2 {
		t.Fatalf("reader got %d, want 2", v)
	}
}

func TestPendingReportsDepositedValue(t *testing.T) {
	in, out := jcsp.One2One[int]()
	if in.Pending() {
		t.Fatal("idle channel reports pending")
	}
	go func() { _ = out.Write(3) }()
	eventually(t, in.Pending)
	if _, err := in.Read(); err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestSerialsIdentifyChannels(t *testing.T) {
	inA, outA := jcsp.One2One[int]()
	inB, outB := jcsp.One2One[int]()

	if inA.Serial() != outA.Serial() {
		t.Fatalf("ends of one channel disagree: %d vs %d", inA.Serial(), outA.Serial())
	}
	if inA.Serial() == inB.Serial() {
		t.Fatalf("distinct channels share serial %d", inA.Serial())
	}
	if inB.Serial() != outB.Serial() {
		t.Fatalf("ends of one channel disagree: %d vs %d", inB.Serial(), outB.Serial())
	}
}

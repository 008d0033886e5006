// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buf

// Store is a pluggable buffering policy for buffered channels.
//
// A Store never blocks and never locks: the surrounding channel owns
// all synchronization and only touches the store with the channel lock
// held. The channel also upholds the call contract — Get and StartGet
// are never invoked on an empty store, and Put is never invoked while
// ReadyForPut reports false.
type Store[T any] interface {
	// Get removes and returns the oldest stored value.
	Get() T

	// Put accepts v. Overwrite policies may discard the currently
	// oldest stored value, or the incoming v itself, when full; which
	// element is sacrificed is a fixed property of the policy.
	Put(v T)

	// StartGet returns the oldest stored value without freeing its
	// capacity. EndGet completes the pairing and frees it. Between the
	// two, an extended rendezvous is in progress and the channel keeps
	// writers from reclaiming the held capacity.
	StartGet() T
	EndGet()

	// ReadyForGet reports whether a value is available for Get.
	ReadyForGet() bool

	// ReadyForPut reports whether Put may be invoked. Policies that
	// never reject a value always report true.
	ReadyForPut() bool

	// Clone returns a new empty store with the same policy and
	// capacity. Channel constructors clone a prototype store, so one
	// prototype seeds any number of independent channels.
	Clone() Store[T]
}

package vars

import (
	"time"

	"src.velt.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[vars] ")

// Updates is the update store: it owns the cycle counter, the queue of
// deferred writes, the context bindings and the animation registry. Every
// variable operation takes an *Updates; there is no ambient store.
//
// An Updates must only be used from the goroutine that owns it. The
// engine substitutes phase discipline for locking: reads happen between
// applies, mutation happens only inside Apply.
type Updates struct {
	cycle    uint32
	pending  []func(cycle uint32) UpdateMask
	context  map[any]any
	anims    []*animation
	writeSeq uint32
	tickAnim *animation
	lastMask UpdateMask
	applying bool
	now      func() time.Time
}

// NewUpdates returns an empty update store at cycle 0.
func NewUpdates() *Updates {
	return &Updates{context: make(map[any]any), now: time.Now}
}

// Cycle returns the current cycle id. It is 0 before the first Apply and
// increments by exactly one per Apply.
func (u *Updates) Cycle() uint32 { return u.cycle }

// Enqueue appends a deferred write to the pending queue. The write is
// invoked by the next Apply with the new cycle id and returns the mask of
// the change it made, or the zero mask if it changed nothing. Enqueue
// never blocks and never fails; it is safe to call from deeply nested
// read-phase code, and from write closures themselves, in which case the
// write lands in the following cycle.
func (u *Updates) Enqueue(write func(cycle uint32) UpdateMask) {
	u.pending = append(u.pending, write)
}

// Apply runs one apply phase: animations produce their per-cycle writes,
// the cycle id increments, and the pending queue is drained in enqueue
// order. This is the only place variable versions change.
//
// Apply is not reentrant; a write closure calling Apply panics.
func (u *Updates) Apply() {
	if u.applying {
		panic("vars: Apply called from inside Apply")
	}
	u.tickAnimations()
	u.applying = true
	u.cycle++
	// Swap the queue out before draining so that writes enqueued by the
	// closures go to the next cycle instead of mutating the queue under
	// iteration.
	queue := u.pending
	u.pending = nil
	var mask UpdateMask
	for _, write := range queue {
		mask.unionWith(write(u.cycle))
	}
	u.lastMask = mask
	u.applying = false
}

// ChangeMask returns the union of the masks of all writes applied in the
// current cycle.
func (u *Updates) ChangeMask() UpdateMask { return u.lastMask }

// SetNowFunc replaces the clock used to drive animations. Tests use it to
// step time deterministically; frame drivers can use it to sample the
// clock once per frame.
func (u *Updates) SetNowFunc(now func() time.Time) { u.now = now }

// writeOrigin returns the importance and animating flag to record with a
// write being enqueued right now. Writes produced by an animation tick
// reuse the importance allocated when the animation started, so any later
// direct write outranks them.
func (u *Updates) writeOrigin() (importance uint32, animating bool) {
	if a := u.tickAnim; a != nil {
		return a.importance, true
	}
	u.writeSeq++
	return u.writeSeq, false
}

func (u *Updates) binding(key any) (any, bool) {
	b, ok := u.context[key]
	return b, ok
}

// withBinding installs a context binding for the duration of body,
// restoring the previous binding (possibly none) even if body panics.
func (u *Updates) withBinding(key, b any, body func()) {
	old, had := u.context[key]
	u.context[key] = b
	defer func() {
		if had {
			u.context[key] = old
		} else {
			delete(u.context, key)
		}
	}()
	body()
}

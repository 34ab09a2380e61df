package vars

import (
	"math"
	"testing"
	"time"

	"src.velt.dev/pkg/easing"
)

// fakeClock steps animation time manually.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(0, 0)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEase(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(0.0)

	h := Ease(u, Var[float64](x), 1.0, 4*time.Second, easing.Linear, LerpNumber[float64])
	if h.Stopped() {
		t.Fatalf("handle stopped before the first tick")
	}

	// The first tick records the start time, so the value after the first
	// Apply is the starting value.
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0) {
		t.Errorf("value at start -> %v, want 0", g)
	}
	if !x.IsAnimating(u) {
		t.Errorf("IsAnimating during transition -> false, want true")
	}
	if !x.IsNew(u) {
		t.Errorf("IsNew on an animation tick -> false, want true")
	}

	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0.25) {
		t.Errorf("value at 1s of 4s -> %v, want 0.25", g)
	}

	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0.5) {
		t.Errorf("value at 2s of 4s -> %v, want 0.5", g)
	}

	clock.advance(2 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 1.0) {
		t.Errorf("value at the end -> %v, want 1", g)
	}
	if !h.Stopped() {
		t.Errorf("handle not stopped after completion")
	}

	// The animation is done: no further writes.
	clock.advance(1 * time.Second)
	u.Apply()
	if x.IsNew(u) {
		t.Errorf("variable still updating after the transition completed")
	}
	if g := x.Get(u); !almostEqual(g, 1.0) {
		t.Errorf("value after completion -> %v, want 1", g)
	}
}

func TestEase_SupersededByDirectWrite(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(0.0)

	h := Ease(u, Var[float64](x), 1.0, 4*time.Second, easing.Linear, LerpNumber[float64])
	u.Apply()
	clock.advance(1 * time.Second)

	// A direct write enqueued in the read phase outranks the animation's
	// write for the same cycle, even though the tick runs later.
	x.Set(u, 9)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 9) {
		t.Errorf("value after direct write -> %v, want 9", g)
	}
	if x.IsAnimating(u) {
		t.Errorf("IsAnimating after direct write -> true, want false")
	}

	// The next cycle drops the animation entirely.
	clock.advance(1 * time.Second)
	u.Apply()
	if !h.Stopped() {
		t.Errorf("superseded animation not stopped")
	}
	if g := x.Get(u); !almostEqual(g, 9) {
		t.Errorf("value a cycle after the direct write -> %v, want 9", g)
	}
}

func TestEase_SupersededByNewerAnimation(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(0.0)

	h1 := Ease(u, Var[float64](x), 1.0, 4*time.Second, easing.Linear, LerpNumber[float64])
	h2 := Ease(u, Var[float64](x), -1.0, 2*time.Second, easing.Linear, LerpNumber[float64])
	if !h1.Stopped() {
		t.Errorf("older animation on the same variable not stopped")
	}

	u.Apply()
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, -0.5) {
		t.Errorf("value at 1s of the newer 2s transition -> %v, want -0.5", g)
	}
	if h2.Stopped() {
		t.Errorf("newer animation stopped early")
	}
}

func TestEase_ReadOnlyTarget(t *testing.T) {
	u := NewUpdates()
	h := Ease(u, Const(0.0), 1.0, time.Second, easing.Linear, LerpNumber[float64])
	if !h.Stopped() {
		t.Errorf("animation against a frozen variable is live")
	}
	u.Apply()
}

// lockableVar rejects writes while locked, without being structurally
// read-only.
type lockableVar struct {
	Var[float64]
	locked bool
}

func (v *lockableVar) IsReadOnly() bool     { return v.locked }
func (v *lockableVar) AlwaysReadOnly() bool { return false }

func (v *lockableVar) Set(u *Updates, value float64) error {
	return v.Modify(u, func(m *VarModify[float64]) { m.Set(value) })
}

func (v *lockableVar) Modify(u *Updates, modify func(*VarModify[float64])) error {
	if v.locked {
		return ReadOnlyError{}
	}
	return v.Var.Modify(u, modify)
}

func TestEase_StopsWhenTargetBecomesReadOnly(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := &lockableVar{Var: New(0.0)}

	h := Ease(u, Var[float64](x), 1.0, 4*time.Second, easing.Linear, LerpNumber[float64])
	u.Apply()
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0.25) {
		t.Fatalf("value at 1s of 4s -> %v, want 0.25", g)
	}

	x.locked = true
	clock.advance(1 * time.Second)
	u.Apply()
	if !h.Stopped() {
		t.Errorf("animation still live after its writes started failing")
	}

	// Unlocking does not revive it.
	x.locked = false
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0.25) {
		t.Errorf("value after stop -> %v, want the last applied 0.25", g)
	}
}

func TestSetEase(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(100.0)

	SetEase(u, Var[float64](x), 10, 20, 2*time.Second, easing.Linear, LerpNumber[float64])
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 10) {
		t.Errorf("value at start -> %v, want the explicit start 10", g)
	}
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 15) {
		t.Errorf("value at 1s of 2s -> %v, want 15", g)
	}
}

func TestEaseKeyed(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(0.0)

	keys := []Keyframe[float64]{{0, 0}, {0.5, 10}, {1, 20}}
	EaseKeyed(u, Var[float64](x), keys, 4*time.Second, easing.Linear, LerpNumber[float64])

	u.Apply()
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 5) {
		t.Errorf("value at progress 0.25 -> %v, want 5 (between keys 0 and 0.5)", g)
	}
	clock.advance(2 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 15) {
		t.Errorf("value at progress 0.75 -> %v, want 15 (between keys 0.5 and 1)", g)
	}
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 20) {
		t.Errorf("value at the end -> %v, want the last keyframe", g)
	}
}

func TestEaseKeyed_ImplicitStartKey(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(4.0)

	// keys start at 0.5: the current value becomes the implicit key at 0.
	keys := []Keyframe[float64]{{0.5, 10}, {1, 20}}
	EaseKeyed(u, Var[float64](x), keys, 4*time.Second, easing.Linear, LerpNumber[float64])

	u.Apply()
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 7) {
		t.Errorf("value at progress 0.25 -> %v, want 7 (between 4 at 0 and 10 at 0.5)", g)
	}
}

func TestSetEaseKeyed(t *testing.T) {
	u := NewUpdates()
	clock := newFakeClock()
	u.SetNowFunc(clock.now)
	x := New(100.0)

	keys := []Keyframe[float64]{{0, 0}, {1, 8}}
	SetEaseKeyed(u, Var[float64](x), keys, 2*time.Second, easing.Linear, LerpNumber[float64])
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 0) {
		t.Errorf("value at start -> %v, want the first keyframe's 0", g)
	}
	clock.advance(1 * time.Second)
	u.Apply()
	if g := x.Get(u); !almostEqual(g, 4) {
		t.Errorf("value at 1s of 2s -> %v, want 4", g)
	}
}

func TestAnimate(t *testing.T) {
	u := NewUpdates()
	x := New(0)

	ticks := 0
	h := Animate(u, x, func(u *Updates, progress float64) {
		ticks++
		x.Modify(u, func(m *VarModify[int]) { m.Set(m.Get() + 1) })
	})

	u.Apply()
	u.Apply()
	u.Apply()
	if g := x.Get(u); g != 3 {
		t.Errorf("value after three cycles -> %v, want 3", g)
	}
	if ticks != 3 {
		t.Errorf("tick ran %v times, want once per cycle", ticks)
	}

	h.Stop()
	u.Apply()
	if g := x.Get(u); g != 3 {
		t.Errorf("value after Stop -> %v, want 3", g)
	}
	if ticks != 3 {
		t.Errorf("tick ran after Stop")
	}
}

func TestLerpDuration(t *testing.T) {
	got := LerpDuration(time.Second, 3*time.Second, 0.5)
	if got != 2*time.Second {
		t.Errorf("LerpDuration -> %v, want 2s", got)
	}
}

func TestZeroAnimationHandle(t *testing.T) {
	var h AnimationHandle
	if !h.Stopped() {
		t.Errorf("zero handle not stopped")
	}
	h.Stop()
}

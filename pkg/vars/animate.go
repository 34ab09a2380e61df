package vars

import (
	"time"

	"src.velt.dev/pkg/easing"
)

// Lerp produces the value at a normalized position between from and to.
// Positions outside [0, 1] extrapolate; easing overshoot (easing.OutBack,
// easing.OutElastic) relies on that.
type Lerp[T any] func(from, to T, pos float64) T

// Number groups the built-in numeric types [LerpNumber] interpolates.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LerpNumber linearly interpolates numeric values.
func LerpNumber[T Number](from, to T, pos float64) T {
	return T(float64(from) + (float64(to)-float64(from))*pos)
}

// LerpDuration linearly interpolates durations.
func LerpDuration(from, to time.Duration, pos float64) time.Duration {
	return time.Duration(float64(from) + (float64(to)-float64(from))*pos)
}

// Keyframe pairs a progress fraction in [0, 1] with the value a keyframed
// animation passes through at that fraction.
type Keyframe[T any] struct {
	At    float64
	Value T
}

// animation is one scheduled time-driven mutation source. It is ticked at
// the head of every Apply until it completes, is stopped, or observes
// that a newer write took over its target.
type animation struct {
	target     AnyVar
	importance uint32
	duration   time.Duration
	openEnded  bool
	started    bool
	start      time.Time
	stopped    bool
	tick       func(u *Updates, progress float64)
}

// AnimationHandle controls a scheduled animation. The zero handle is
// inert and already stopped; animation functions return it when the
// target can never be written.
type AnimationHandle struct {
	a *animation
}

// Stop cancels the animation: no further writes are produced and the
// target stays at the last value the animation applied. Use it for
// long-lived registrations that must be torn down deterministically;
// ordinary animations are superseded implicitly by any other write.
func (h AnimationHandle) Stop() {
	if h.a != nil {
		h.a.stopped = true
	}
}

// Stopped reports whether the animation has completed or been cancelled.
func (h AnimationHandle) Stopped() bool {
	return h.a == nil || h.a.stopped
}

// startAnimation registers an animation against target, superseding any
// animation previously registered for the same variable. The start time
// is recorded at the animation's first tick, when the next cycle begins.
func (u *Updates) startAnimation(target AnyVar, duration time.Duration, openEnded bool, tick func(*Updates, float64)) AnimationHandle {
	for _, a := range u.anims {
		if a.target == target && !a.stopped {
			logger.Printf("animation superseded by a newer animation on the same variable")
			a.stopped = true
		}
	}
	u.writeSeq++
	a := &animation{
		target:     target,
		importance: u.writeSeq,
		duration:   duration,
		openEnded:  openEnded,
		tick:       tick,
	}
	u.anims = append(u.anims, a)
	return AnimationHandle{a}
}

// tickAnimations runs at the head of Apply: every live animation enqueues
// its write for this cycle. The writes carry the animation's importance,
// so a direct write enqueued during the read phase outranks them at apply
// even though it drains earlier.
func (u *Updates) tickAnimations() {
	if len(u.anims) == 0 {
		return
	}
	now := u.now()
	kept := u.anims[:0]
	for _, a := range u.anims {
		if a.stopped {
			continue
		}
		if a.target.ModifyImportance(u) > a.importance {
			// A newer write owns the variable; the value stays wherever
			// the last applied write left it.
			a.stopped = true
			continue
		}
		if !a.started {
			a.started = true
			a.start = now
		}
		progress := 1.0
		if a.openEnded {
			progress = 0
		} else if a.duration > 0 {
			progress = float64(now.Sub(a.start)) / float64(a.duration)
			if progress < 0 {
				progress = 0
			} else if progress > 1 {
				progress = 1
			}
		}
		u.tickAnim = a
		a.tick(u, progress)
		u.tickAnim = nil
		if !a.openEnded && progress >= 1 {
			a.stopped = true
			continue
		}
		kept = append(kept, a)
	}
	u.anims = kept
}

// Ease schedules a transition of target from its current value to `to`
// over duration, shaped by the easing function. The transition starts
// when the next cycle begins; each cycle it applies one write, marked as
// animating. Any other write to target supersedes it, and a target that
// becomes read-only mid-transition stops it. A zero duration jumps to
// `to` on the next cycle.
func Ease[T any](u *Updates, target Var[T], to T, duration time.Duration, ease easing.Func, lerp Lerp[T]) AnimationHandle {
	if target.AlwaysReadOnly() {
		return AnimationHandle{}
	}
	var h AnimationHandle
	var from T
	hasFrom := false
	h = u.startAnimation(target, duration, false, func(u *Updates, progress float64) {
		if !hasFrom {
			from = target.Get(u)
			hasFrom = true
		}
		value := lerp(from, to, ease(progress))
		if target.Modify(u, func(m *VarModify[T]) { m.Set(value) }) != nil {
			// The target went read-only; there is nothing left to drive.
			h.Stop()
		}
	})
	return h
}

// SetEase is like [Ease] but transitions from an explicit start value
// instead of the target's current value; the first write assigns the
// start value.
func SetEase[T any](u *Updates, target Var[T], from, to T, duration time.Duration, ease easing.Func, lerp Lerp[T]) AnimationHandle {
	if target.AlwaysReadOnly() {
		return AnimationHandle{}
	}
	var h AnimationHandle
	h = u.startAnimation(target, duration, false, func(u *Updates, progress float64) {
		value := lerp(from, to, ease(progress))
		if target.Modify(u, func(m *VarModify[T]) { m.Set(value) }) != nil {
			h.Stop()
		}
	})
	return h
}

// EaseKeyed schedules a keyframed transition of target across keys over
// duration. The easing function applies to the global progress before the
// active segment is located; interpolation between keyframes is
// piecewise-linear. The target's current value acts as an implicit
// keyframe at fraction 0 unless keys already starts at 0.
func EaseKeyed[T any](u *Updates, target Var[T], keys []Keyframe[T], duration time.Duration, ease easing.Func, lerp Lerp[T]) AnimationHandle {
	if len(keys) == 0 || target.AlwaysReadOnly() {
		return AnimationHandle{}
	}
	frames := make([]Keyframe[T], len(keys))
	copy(frames, keys)
	var h AnimationHandle
	prepended := false
	h = u.startAnimation(target, duration, false, func(u *Updates, progress float64) {
		if !prepended {
			if frames[0].At > 0 {
				frames = append([]Keyframe[T]{{0, target.Get(u)}}, frames...)
			}
			prepended = true
		}
		value := sampleKeyframes(frames, ease(progress), lerp)
		if target.Modify(u, func(m *VarModify[T]) { m.Set(value) }) != nil {
			h.Stop()
		}
	})
	return h
}

// SetEaseKeyed is like [EaseKeyed] but starts from the first keyframe's
// value instead of the target's current value; the first write assigns
// it.
func SetEaseKeyed[T any](u *Updates, target Var[T], keys []Keyframe[T], duration time.Duration, ease easing.Func, lerp Lerp[T]) AnimationHandle {
	if len(keys) == 0 || target.AlwaysReadOnly() {
		return AnimationHandle{}
	}
	frames := make([]Keyframe[T], len(keys))
	copy(frames, keys)
	var h AnimationHandle
	h = u.startAnimation(target, duration, false, func(u *Updates, progress float64) {
		value := sampleKeyframes(frames, ease(progress), lerp)
		if target.Modify(u, func(m *VarModify[T]) { m.Set(value) }) != nil {
			h.Stop()
		}
	})
	return h
}

// Animate schedules a raw animation against target: tick runs once per
// cycle, before the pending writes drain, and may schedule writes that
// will be marked as animating. It runs until the handle is stopped or a
// newer write takes over target; progress is always 0. Use it for
// animations whose end condition is not a duration.
func Animate(u *Updates, target AnyVar, tick func(u *Updates, progress float64)) AnimationHandle {
	if target.AlwaysReadOnly() {
		return AnimationHandle{}
	}
	return u.startAnimation(target, 0, true, tick)
}

// sampleKeyframes returns the value at pos on the piecewise-linear curve
// through keys. Positions before the first key or after the last clamp to
// the boundary values.
func sampleKeyframes[T any](keys []Keyframe[T], pos float64, lerp Lerp[T]) T {
	if pos <= keys[0].At {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if pos >= last.At {
		return last.Value
	}
	for i := 1; i < len(keys); i++ {
		if pos <= keys[i].At {
			a, b := keys[i-1], keys[i]
			span := b.At - a.At
			if span <= 0 {
				return b.Value
			}
			return lerp(a.Value, b.Value, (pos-a.At)/span)
		}
	}
	return last.Value
}

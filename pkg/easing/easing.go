// Package easing provides easing functions for animations.
//
// An easing function maps normalized time (0 to 1) to normalized progress.
// Progress 0 is the start value of a transition and progress 1 the end
// value; functions like OutBack overshoot past 1 before settling.
//
// The base curves here are the "in" shapes. Use Out, InOut or Reverse to
// derive the other shapes, or the predefined combinations like OutBounce.
package easing

import "math"

// Func maps normalized time to normalized progress.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// Quad is the quadratic curve t².
func Quad(t float64) float64 { return t * t }

// Cubic is the cubic curve t³.
func Cubic(t float64) float64 { return t * t * t }

// Quart is the quartic curve t⁴.
func Quart(t float64) float64 { return t * t * t * t }

// Quint is the quintic curve t⁵.
func Quint(t float64) float64 { return t * t * t * t * t }

// Sine starts slow following a sine wave quarter.
func Sine(t float64) float64 {
	return 1 - math.Cos(t*(math.Pi/2))
}

// Expo accelerates exponentially, starting almost flat.
func Expo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// Circ follows a circle quadrant.
func Circ(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// Back pulls backwards before accelerating towards the end.
func Back(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

// Elastic oscillates around the start with growing amplitude.
func Elastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c4 = (2 * math.Pi) / 3
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}

// Bounce bounces against the start like a dropped ball played backwards.
func Bounce(t float64) float64 {
	return 1 - bounceOut(1-t)
}

func bounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// In returns f unchanged. It exists for symmetry with Out and InOut.
func In(f Func) Func { return f }

// Out mirrors f to ease out: fast start, slow settle.
func Out(f Func) Func {
	return func(t float64) float64 { return 1 - f(1-t) }
}

// InOut eases in for the first half and out for the second.
func InOut(f Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(t*2) / 2
		}
		return 1 - f((1-t)*2)/2
	}
}

// Reverse plays f backwards in time: the curve is sampled at 1-t, so a
// transition runs from its end value to its start value. Unlike Out, the
// progress itself is not flipped.
func Reverse(f Func) Func {
	return func(t float64) float64 { return f(1 - t) }
}

// Predefined out and in-out shapes for the common curves.
var (
	OutQuad    = Out(Quad)
	InOutQuad  = InOut(Quad)
	OutCubic   = Out(Cubic)
	InOutCubic = InOut(Cubic)
	OutSine    = Out(Sine)
	InOutSine  = InOut(Sine)
	OutExpo    = Out(Expo)
	InOutExpo  = InOut(Expo)
	OutBack    = Out(Back)
	OutElastic = Out(Elastic)
	OutBounce  = Out(Bounce)
)

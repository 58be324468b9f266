package tui

import (
	"math"
	"time"

	"github.com/rrr-registry/rrr-tui/internal/oklch"
)

// EasingFunc maps normalized animation progress in [0, 1] to an eased
// value. The functions in github.com/fogleman/ease satisfy it directly.
type EasingFunc func(t float64) float64

// BlendAnimation interpolates between two text colors over a fixed window
// of wall-clock time, optionally after a start delay. A stopped animation
// resolves to the target color immediately.
type BlendAnimation struct {
	Easing     EasingFunc
	StartDelay time.Duration
	Duration   time.Duration

	started  bool
	startsAt time.Time
	endsAt   time.Time
}

// NewBlendAnimation returns a stopped animation with the given easing and
// timing. Call Restart to arm it.
func NewBlendAnimation(easing EasingFunc, startDelay, duration time.Duration) *BlendAnimation {
	return &BlendAnimation{
		Easing:     easing,
		StartDelay: startDelay,
		Duration:   duration,
	}
}

// NewStartedBlendAnimation returns an animation already running, anchored
// at now.
func NewStartedBlendAnimation(easing EasingFunc, startDelay, duration time.Duration, now time.Time) *BlendAnimation {
	a := NewBlendAnimation(easing, startDelay, duration)
	a.Restart(now)
	return a
}

// Restart re-anchors the animation window at now. The delay applies again.
func (a *BlendAnimation) Restart(now time.Time) {
	a.started = true
	a.startsAt = now.Add(a.StartDelay)
	a.endsAt = a.startsAt.Add(a.Duration)
}

// Running reports whether the animation window covers now.
func (a *BlendAnimation) Running(now time.Time) bool {
	return a.started && now.Before(a.endsAt)
}

// Apply returns the blend of original and target at time now. Before the
// window opens it returns original, after it closes target.
func (a *BlendAnimation) Apply(now time.Time, original, target oklch.TextColor) oklch.TextColor {
	if !a.started {
		return target
	}
	if !now.After(a.startsAt) {
		return original
	}
	if !now.Before(a.endsAt) {
		return target
	}
	period := a.endsAt.Sub(a.startsAt).Seconds()
	elapsed := now.Sub(a.startsAt).Seconds()
	t := elapsed / period
	if a.Easing != nil {
		t = a.Easing(t)
	}
	return original.Lerp(target, t)
}

// RectAnimation paints an animated treatment over a rectangle of already
// drawn cells.
type RectAnimation interface {
	Apply(ctx *DrawContext, area CellRect)
}

// StaticRect restyles the area with a fixed color.
type StaticRect struct {
	Color oklch.TextColor
}

func (s StaticRect) Apply(ctx *DrawContext, area CellRect) {
	ctx.FillStyle(area, StyleFromColor(s.Color))
}

// IndeterminateRect sweeps a single highlighted cell back and forth across
// the area, one full round trip per period.
type IndeterminateRect struct {
	Period    time.Duration
	Highlight oklch.TextColor
}

func (p IndeterminateRect) Apply(ctx *DrawContext, area CellRect) {
	if area.IsEmpty() || p.Period <= 0 {
		return
	}
	cos := math.Cos(ctx.Elapsed().Seconds() * 2 * math.Pi / p.Period.Seconds())
	span := area.Width() - 1
	if span < 0 {
		span = 0
	}
	index := int(0.5*(1.0+cos)*float64(span) + 0.5)
	pos := Position[int]{X: area.Min.X + index, Y: area.Min.Y}
	if cell := ctx.CellRef(pos); cell != nil {
		cell.Style = StyleFromColor(p.Highlight)
	}
}

// EaseRect blends the area between two colors under a BlendAnimation.
type EaseRect struct {
	Blend *BlendAnimation
	From  oklch.TextColor
	To    oklch.TextColor
}

func (e EaseRect) Apply(ctx *DrawContext, area CellRect) {
	color := e.Blend.Apply(ctx.Now(), e.From, e.To)
	ctx.FillStyle(area, StyleFromColor(color))
}

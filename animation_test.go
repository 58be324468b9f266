package tui

import (
	"testing"
	"time"

	"github.com/rrr-registry/rrr-tui/internal/oklch"
)

var (
	animFrom = oklch.TextColor{FG: testRed, BG: testGreen}
	animTo   = oklch.TextColor{FG: testBlue, BG: testRed}
)

func TestBlendAnimation_StoppedResolvesToTarget(t *testing.T) {
	a := NewBlendAnimation(nil, 0, time.Second)
	now := time.Unix(100, 0)

	if a.Running(now) {
		t.Error("a never-started animation must not be running")
	}
	if got := a.Apply(now, animFrom, animTo); got != animTo {
		t.Errorf("stopped animation = %+v, want the target color", got)
	}
}

func TestBlendAnimation_Window(t *testing.T) {
	start := time.Unix(100, 0)
	a := NewStartedBlendAnimation(nil, 500*time.Millisecond, time.Second, start)

	// Inside the start delay the original color holds.
	if got := a.Apply(start.Add(200*time.Millisecond), animFrom, animTo); got != animFrom {
		t.Errorf("during delay = %+v, want the original color", got)
	}

	// Halfway through the window with linear easing the blend is halfway.
	mid := a.Apply(start.Add(1000*time.Millisecond), animFrom, animTo)
	want := animFrom.Lerp(animTo, 0.5)
	if mid != want {
		t.Errorf("midpoint = %+v, want %+v", mid, want)
	}

	// Past the window the target holds and the animation reports stopped.
	end := start.Add(2 * time.Second)
	if got := a.Apply(end, animFrom, animTo); got != animTo {
		t.Errorf("after window = %+v, want the target color", got)
	}
	if a.Running(end) {
		t.Error("animation must stop once the window closes")
	}
}

func TestBlendAnimation_EasingShapesProgress(t *testing.T) {
	start := time.Unix(100, 0)
	square := func(x float64) float64 { return x * x }
	a := NewStartedBlendAnimation(square, 0, time.Second, start)

	got := a.Apply(start.Add(500*time.Millisecond), animFrom, animTo)
	want := animFrom.Lerp(animTo, 0.25)
	if got != want {
		t.Errorf("eased midpoint = %+v, want %+v", got, want)
	}
}

func TestBlendAnimation_RestartRearmsWindow(t *testing.T) {
	start := time.Unix(100, 0)
	a := NewStartedBlendAnimation(nil, 0, time.Second, start)

	later := start.Add(time.Minute)
	if a.Running(later) {
		t.Fatal("animation should have finished")
	}

	a.Restart(later)
	if !a.Running(later.Add(time.Millisecond)) {
		t.Error("restart must reopen the window")
	}
	if got := a.Apply(later, animFrom, animTo); got != animFrom {
		t.Errorf("restarted animation at its anchor = %+v, want the original color", got)
	}
}

func TestStaticRect_RestylesArea(t *testing.T) {
	b := NewBuffer(4, 2)
	ctx := NewDrawContext(b, time.Unix(0, 0), 0)

	StaticRect{Color: animTo}.Apply(ctx, NewRect(0, 0, 2, 2))

	if got := b.Cell(0, 0).Style.Color; got != animTo {
		t.Errorf("restyled cell = %+v, want %+v", got, animTo)
	}
	if got := b.Cell(3, 0).Style.Color; got != oklch.DefaultTextColor() {
		t.Errorf("cell outside the area = %+v, want untouched", got)
	}
}

func TestIndeterminateRect_SweepEndpoints(t *testing.T) {
	highlight := oklch.TextColor{FG: testRed, BG: testBlue}
	anim := IndeterminateRect{Period: 2 * time.Second, Highlight: highlight}
	area := NewRect(0, 0, 5, 1)

	// cos(0) = 1: the sweep starts at the right edge.
	b := NewBuffer(5, 1)
	anim.Apply(NewDrawContext(b, time.Unix(0, 0), 0), area)
	if got := b.Cell(4, 0).Style.Color; got != highlight {
		t.Errorf("at t=0 the highlight should sit at the right edge, got %+v at cell 4", got)
	}

	// Half a period later cos = -1: the sweep reaches the left edge.
	b = NewBuffer(5, 1)
	anim.Apply(NewDrawContext(b, time.Unix(0, 0), time.Second), area)
	if got := b.Cell(0, 0).Style.Color; got != highlight {
		t.Errorf("at half period the highlight should sit at the left edge, got %+v at cell 0", got)
	}

	// A full period returns to the start.
	b = NewBuffer(5, 1)
	anim.Apply(NewDrawContext(b, time.Unix(0, 0), 2*time.Second), area)
	if got := b.Cell(4, 0).Style.Color; got != highlight {
		t.Errorf("after a full period the highlight should be back at the right edge, got %+v", got)
	}
}

func TestIndeterminateRect_SingleCellArea(t *testing.T) {
	highlight := oklch.TextColor{FG: testRed, BG: testBlue}
	anim := IndeterminateRect{Period: time.Second, Highlight: highlight}

	b := NewBuffer(1, 1)
	anim.Apply(NewDrawContext(b, time.Unix(0, 0), 300*time.Millisecond), NewRect(0, 0, 1, 1))

	if got := b.Cell(0, 0).Style.Color; got != highlight {
		t.Errorf("single-cell sweep = %+v, want the highlight", got)
	}
}

func TestEaseRect_UsesFrameTime(t *testing.T) {
	start := time.Unix(100, 0)
	e := EaseRect{
		Blend: NewStartedBlendAnimation(nil, 0, time.Second, start),
		From:  animFrom,
		To:    animTo,
	}

	b := NewBuffer(2, 1)
	ctx := NewDrawContext(b, start.Add(500*time.Millisecond), 0)
	e.Apply(ctx, NewRect(0, 0, 2, 1))

	want := animFrom.Lerp(animTo, 0.5)
	if got := b.Cell(0, 0).Style.Color; got != want {
		t.Errorf("eased fill = %+v, want %+v", got, want)
	}
}

package view

import (
	"testing"
	"time"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

func newTestScrollPane(viewport, contentHeight int) *ScrollPane {
	s := NewScrollPane(tui.NewIDAllocator(), layout.DefaultStyle(), NewTextBlock(tui.NewIDAllocator(), layout.DefaultStyle()))
	s.viewport = viewport
	s.contentHeight = contentHeight
	return s
}

func TestScrollPane_KeysMoveWithinBounds(t *testing.T) {
	tests := map[string]struct {
		events []tui.Event
		want   int
	}{
		"down scrolls one line":      {[]tui.Event{key(tui.KeyDown)}, 1},
		"up at top stays":            {[]tui.Event{key(tui.KeyUp)}, 0},
		"page down jumps a viewport": {[]tui.Event{key(tui.KeyPageDown)}, 4},
		"clamped at the bottom":      {[]tui.Event{key(tui.KeyPageDown), key(tui.KeyPageDown)}, 6},
		"wheel scrolls three": {
			[]tui.Event{tui.ScrollEvent{Direction: tui.ScrollDown}},
			3,
		},
		"wheel up from bottomless": {
			[]tui.Event{tui.ScrollEvent{Direction: tui.ScrollDown}, tui.ScrollEvent{Direction: tui.ScrollUp}},
			0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScrollPane(4, 10)
			for _, ev := range tc.events {
				result, err := s.HandleEvent(ev)
				if err != nil {
					t.Fatalf("HandleEvent: %v", err)
				}
				if !result.Absorb {
					t.Fatalf("scroll event not absorbed")
				}
			}
			if got := s.ScrollPosition().Y; got != tc.want {
				t.Errorf("scroll = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScrollPane_NoMovementEmitsNoAction(t *testing.T) {
	s := newTestScrollPane(4, 10)
	result, _ := s.HandleEvent(key(tui.KeyUp))
	if result.Action != nil {
		t.Errorf("action = %v, want nil at the top", result.Action)
	}
	result, _ = s.HandleEvent(key(tui.KeyDown))
	if _, ok := result.Action.(tui.RenderAction); !ok {
		t.Errorf("action = %T, want RenderAction after movement", result.Action)
	}
}

func TestScrollPane_HorizontalKeysMoveWithinBounds(t *testing.T) {
	s := newTestScrollPane(4, 10)
	s.viewportWidth = 20
	s.contentWidth = 22

	s.HandleEvent(key(tui.KeyRight))
	s.HandleEvent(key(tui.KeyRight))
	s.HandleEvent(key(tui.KeyRight))
	if got := s.ScrollPosition().X; got != 2 {
		t.Errorf("scroll = %d, want clamped to 2", got)
	}
	s.HandleEvent(key(tui.KeyLeft))
	if got := s.ScrollPosition().X; got != 1 {
		t.Errorf("scroll = %d, want 1", got)
	}
}

func TestScrollPane_ContentShorterThanViewportNeverScrolls(t *testing.T) {
	s := newTestScrollPane(10, 4)
	s.HandleEvent(key(tui.KeyDown))
	if got := s.ScrollPosition().Y; got != 0 {
		t.Errorf("scroll = %d, want 0", got)
	}
}

func TestScrollPane_ScrollToTop(t *testing.T) {
	s := newTestScrollPane(4, 10)
	s.HandleEvent(key(tui.KeyPageDown))
	s.ScrollToTop()
	if got := s.ScrollPosition().Y; got != 0 {
		t.Errorf("scroll = %d, want 0", got)
	}
}

func TestScrollPane_ScrollbarFadesAfterActivity(t *testing.T) {
	s := newTestScrollPane(4, 10)
	now := time.Now()

	bar, rail := s.scrollbarColors(now)
	if bar != colorScrollBar || rail != colorScrollRail {
		t.Errorf("idle scrollbar = %v/%v, want the resting shades", bar, rail)
	}

	s.HandleEvent(key(tui.KeyDown))
	if !s.fade.Running(time.Now()) {
		t.Fatal("scrolling did not restart the fade")
	}
	bar, rail = s.scrollbarColors(time.Now())
	if bar != colorScrollBarActive || rail != colorScrollRailActive {
		t.Errorf("scrollbar right after scrolling = %v/%v, want the active shades", bar, rail)
	}

	bar, rail = s.scrollbarColors(time.Now().Add(scrollFadeDelay + scrollFadeDuration + time.Second))
	if bar != colorScrollBar || rail != colorScrollRail {
		t.Errorf("scrollbar after the fade = %v/%v, want the resting shades", bar, rail)
	}

	action, err := s.Update(tui.TickMessage{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, ok := action.(tui.RenderAction); !ok {
		t.Errorf("expected a repaint request while the fade runs, got %T", action)
	}
}

func TestScrollPane_ReservesScrollbarColumn(t *testing.T) {
	s := newTestScrollPane(4, 10)
	if got := s.Node().Style().Padding.Right; got != 1 {
		t.Errorf("right padding = %d, want 1", got)
	}
}

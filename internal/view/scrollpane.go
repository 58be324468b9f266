package view

import (
	"time"

	"github.com/fogleman/ease"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/oklch"
)

const (
	// How long the scrollbar stays bright after the last movement, and
	// how long the fade back to the resting colors takes.
	scrollFadeDelay    = 500 * time.Millisecond
	scrollFadeDuration = 300 * time.Millisecond
)

// ScrollPane clips a single child vertically and scrolls it with the
// arrow and page keys or the mouse wheel. A sub-cell scrollbar is drawn
// in the reserved rightmost column whenever the content overflows.
type ScrollPane struct {
	tui.BaseComponent

	scroll        tui.Position[int]
	viewport      int
	viewportWidth int
	contentHeight int
	contentWidth  int

	fade *tui.BlendAnimation
}

func NewScrollPane(ids *tui.IDAllocator, style layout.Style, child tui.Component) *ScrollPane {
	style.OverflowX = layout.OverflowHidden
	style.OverflowY = layout.OverflowHidden
	if style.Padding.Right < 1 {
		// The scrollbar column.
		style.Padding.Right = 1
	}
	s := &ScrollPane{
		BaseComponent: tui.NewBaseComponent(ids, style),
		fade:          tui.NewBlendAnimation(ease.OutCubic, scrollFadeDelay, scrollFadeDuration),
	}
	s.AddChildren(child)
	return s
}

func (s *ScrollPane) IsFocusable() bool {
	return true
}

func (s *ScrollPane) ScrollPosition() tui.Position[int] {
	return s.scroll
}

// ScrollToTop resets the scroll position, used when the content is
// replaced.
func (s *ScrollPane) ScrollToTop() {
	if s.scroll.X != 0 || s.scroll.Y != 0 {
		s.scroll = tui.Position[int]{}
		s.Node().MarkAbsoluteDirty()
	}
}

func (s *ScrollPane) AbsoluteLayoutUpdated() {
	abs := s.Node().AbsoluteLayout()
	s.viewport = abs.Content.Height()
	s.viewportWidth = abs.Content.Width()
	s.contentHeight = abs.OverflowSize.Height
	s.contentWidth = abs.OverflowSize.Width
}

// scrollBy moves the scroll position, clamped to the content, returning a
// render request when anything moved.
func (s *ScrollPane) scrollBy(dy int) tui.Action {
	maxScroll := s.contentHeight - s.viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	y := s.scroll.Y + dy
	if y < 0 {
		y = 0
	}
	if y > maxScroll {
		y = maxScroll
	}
	if y == s.scroll.Y {
		return nil
	}
	s.scroll.Y = y
	s.fade.Restart(time.Now())
	s.Node().MarkAbsoluteDirty()
	return tui.RenderAction{}
}

func (s *ScrollPane) scrollByX(dx int) tui.Action {
	maxScroll := s.contentWidth - s.viewportWidth
	if maxScroll < 0 {
		maxScroll = 0
	}
	x := s.scroll.X + dx
	if x < 0 {
		x = 0
	}
	if x > maxScroll {
		x = maxScroll
	}
	if x == s.scroll.X {
		return nil
	}
	s.scroll.X = x
	s.fade.Restart(time.Now())
	s.Node().MarkAbsoluteDirty()
	return tui.RenderAction{}
}

// scrollbarColors blends the bar and rail between their active and
// resting shades according to the fade state.
func (s *ScrollPane) scrollbarColors(now time.Time) (bar, rail oklch.Color) {
	active := oklch.TextColor{FG: colorScrollBarActive, BG: colorScrollRailActive}
	resting := oklch.TextColor{FG: colorScrollBar, BG: colorScrollRail}
	blended := s.fade.Apply(now, active, resting)
	return blended.FG, blended.BG
}

func (s *ScrollPane) Update(msg tui.Message) (tui.Action, error) {
	if _, ok := msg.(tui.TickMessage); ok && s.fade.Running(time.Now()) {
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (s *ScrollPane) HandleEvent(event tui.Event) (tui.HandleEventResult, error) {
	switch e := event.(type) {
	case tui.KeyEvent:
		switch e.Key {
		case tui.KeyUp:
			return tui.HandledWith(s.scrollBy(-1)), nil
		case tui.KeyDown:
			return tui.HandledWith(s.scrollBy(1)), nil
		case tui.KeyPageUp:
			return tui.HandledWith(s.scrollBy(-s.viewport)), nil
		case tui.KeyPageDown:
			return tui.HandledWith(s.scrollBy(s.viewport)), nil
		case tui.KeyLeft:
			return tui.HandledWith(s.scrollByX(-1)), nil
		case tui.KeyRight:
			return tui.HandledWith(s.scrollByX(1)), nil
		}
	case tui.ScrollEvent:
		switch e.Direction {
		case tui.ScrollUp:
			return tui.HandledWith(s.scrollBy(-3)), nil
		case tui.ScrollDown:
			return tui.HandledWith(s.scrollBy(3)), nil
		}
	}
	return tui.Ignore(), nil
}

func (s *ScrollPane) Draw(ctx *tui.DrawContext) {
	for _, child := range s.Children() {
		ctx.DrawComponent(child)
	}

	abs := s.Node().AbsoluteLayout()
	rail := tui.CellRect{
		Min: tui.Position[int]{X: abs.Border.Max.X - 1, Y: abs.Content.Min.Y},
		Max: tui.Position[int]{X: abs.Border.Max.X, Y: abs.Content.Max.Y},
	}
	barColor, railColor := s.scrollbarColors(ctx.Now())
	tui.DrawVerticalScrollbar(ctx, rail, s.contentHeight, s.scroll.Y, barColor, railColor)
}

package view

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/fogleman/ease"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/oklch"
	"github.com/rrr-registry/rrr-tui/internal/registry"
)

const spinnerPeriod = 500 * time.Millisecond

// verdictFade is the color animation a finished lookup settles in with.
func verdictFade(now time.Time) *tui.BlendAnimation {
	return tui.NewStartedBlendAnimation(ease.InOutCubic, 250*time.Millisecond, 750*time.Millisecond, now)
}

// PaneOpen is the sub-record open form: a name input, the encoding the
// name is typed in, an encrypted toggle, a search button and a status
// field. Enter anywhere in the form confirms it; the pane absorbs the key
// before it reaches the focused widget and animates the button itself.
type PaneOpen struct {
	tui.BaseComponent

	state *mainState
	post  func(tui.Action)

	input     *InputField
	encoding  *RadioArray[Encoding]
	encrypted *Checkbox
	search    *Button
	status    *OpenStatus

	searching bool
}

func NewPaneOpen(ids *tui.IDAllocator, style layout.Style, state *mainState) *PaneOpen {
	style.Display = layout.DisplayFlex
	style.Direction = layout.Column
	style.Padding.Top = 1

	p := &PaneOpen{
		BaseComponent: tui.NewBaseComponent(ids, style),
		state:         state,
	}

	labelStyle := layout.DefaultStyle()
	label := NewTextBlock(ids, labelStyle)
	label.SetText("Record name:")
	label.SetTextStyle(tui.NewStyle().Foreground(colorLabel))

	inputStyle := layout.DefaultStyle()
	inputStyle.FlexGrow = 1
	p.input = NewInputField(ids, inputStyle)

	nameRowStyle := layout.DefaultStyle()
	nameRowStyle.Gap = 1
	nameRow := newGroup(ids, nameRowStyle, label, p.input)

	p.encoding = NewRadioArray(ids, layout.DefaultStyle(), encodingOptions(), 0)
	p.encrypted = NewCheckbox(ids, layout.DefaultStyle(), "Encrypted")
	p.search = NewButton(ids, layout.DefaultStyle(), "Search")

	statusStyle := layout.DefaultStyle()
	statusStyle.FlexGrow = 1
	p.status = NewOpenStatus(ids, statusStyle)

	formRowStyle := layout.DefaultStyle()
	formRowStyle.Gap = 2
	formRow := newGroup(ids, formRowStyle, p.encoding, p.encrypted, p.search, p.status)

	p.AddChildren(nameRow, formRow)
	return p
}

// SetPoster installs the callback lookups report their results through.
func (p *PaneOpen) SetPoster(post func(tui.Action)) {
	p.post = post
}

func (p *PaneOpen) HandleEvent(event tui.Event) (tui.HandleEventResult, error) {
	if e, ok := event.(tui.KeyEvent); ok && e.Is(tui.KeyEnter) {
		p.confirm()
		return tui.HandledWith(tui.RenderAction{}), nil
	}
	return tui.Ignore(), nil
}

// confirm submits the form with the typed name.
func (p *PaneOpen) confirm() {
	name, err := decodeName(p.input.Text(), p.encoding.Value())
	if err != nil {
		p.showError(err)
		return
	}
	if p.encrypted.Checked() {
		p.showError(errors.New("encrypted records are not supported"))
		return
	}
	p.beginSearch(name, p.input.Text())
}

// OpenRoot starts a lookup of the registry's root record.
func (p *PaneOpen) OpenRoot() {
	p.beginSearch(registry.RootRecordName, "<root>")
}

func (p *PaneOpen) beginSearch(name registry.RecordName, displayName string) {
	if p.searching || p.post == nil {
		return
	}
	p.searching = true
	p.search.SetPressed(true)
	p.status.SetContent("Searching…", oklch.DefaultTextColor(), tui.IndeterminateRect{
		Period:    spinnerPeriod,
		Highlight: oklch.TextColor{FG: oklch.RGB(0, 0, 0), BG: colorPressed},
	})

	reg := p.state.registry
	parent := slices.Clone(p.state.openedKey)
	post := p.post
	go func() {
		hashed, record, err := lookupRecord(context.Background(), reg, parent, name)
		if err != nil {
			post(tui.Broadcast(tui.ShowErrorMessage{Err: err}))
			return
		}
		post(tui.Broadcast(RecordOpenMessage{HashedKey: hashed, Name: displayName, Record: record}))
	}()
}

func (p *PaneOpen) showError(err error) {
	p.searching = false
	p.search.SetPressed(false)
	p.status.SetContent(err.Error(), oklch.DefaultTextColor().WithFG(colorError), nil)
}

func (p *PaneOpen) Update(msg tui.Message) (tui.Action, error) {
	switch m := msg.(type) {
	case RecordOpenMessage:
		p.searching = false
		p.search.SetPressed(false)
		now := time.Now()
		if m.Record != nil {
			p.status.SetContent("Record found", oklch.DefaultTextColor(), tui.EaseRect{
				Blend: verdictFade(now),
				From:  oklch.DefaultTextColor().WithFG(colorFoundFrom),
				To:    oklch.DefaultTextColor().WithFG(colorFoundTo),
			})
			p.input.SetText("")
		} else {
			p.status.SetContent("Record not found", oklch.DefaultTextColor(), tui.EaseRect{
				Blend: verdictFade(now),
				From:  oklch.DefaultTextColor().WithFG(colorNotFoundFrom),
				To:    oklch.DefaultTextColor().WithFG(colorNotFoundTo),
			})
		}
		return tui.RenderAction{}, nil
	case tui.ShowErrorMessage:
		p.showError(m.Err)
		return tui.RenderAction{}, nil
	case tui.ButtonPressedMessage:
		if m.ID == p.search.ID() {
			p.confirm()
			return tui.RenderAction{}, nil
		}
	case tui.TickMessage:
		if p.status.Animating() {
			return tui.RenderAction{}, nil
		}
	}
	return nil, nil
}

func (p *PaneOpen) Draw(ctx *tui.DrawContext) {
	padding := p.Node().AbsoluteLayout().Padding
	ctx.SetText(padding.Min, "Open Sub-Record [Enter]", tui.NewStyle().Bold())
	for _, child := range p.Children() {
		ctx.DrawComponent(child)
	}
}

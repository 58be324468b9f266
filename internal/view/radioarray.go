package view

import (
	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// RadioOption pairs a value with the label its radio box shows.
type RadioOption[T any] struct {
	Value T
	Label string
}

// RadioArray lays its options out as a row of radio boxes and keeps
// exactly one checked. It listens for the boxes' toggle broadcasts, so
// exclusivity holds no matter how a box was flipped.
type RadioArray[T any] struct {
	tui.BaseComponent

	options []RadioOption[T]
	boxes   []*Checkbox
	checked int
}

func NewRadioArray[T any](ids *tui.IDAllocator, style layout.Style, options []RadioOption[T], checked int) *RadioArray[T] {
	style.Display = layout.DisplayFlex
	style.Direction = layout.Row
	style.Gap = 2

	r := &RadioArray[T]{
		BaseComponent: tui.NewBaseComponent(ids, style),
		options:       options,
		checked:       checked,
	}
	for i, opt := range options {
		box := NewRadioBox(ids, layout.DefaultStyle(), opt.Label)
		box.SetChecked(i == checked)
		r.boxes = append(r.boxes, box)
		r.AddChildren(box)
	}
	return r
}

// Value returns the checked option's value.
func (r *RadioArray[T]) Value() T {
	return r.options[r.checked].Value
}

// CheckedIndex returns the index of the checked option.
func (r *RadioArray[T]) CheckedIndex() int {
	return r.checked
}

// OptionForID maps a radio box component ID back to its option value.
func (r *RadioArray[T]) OptionForID(id tui.ComponentID) (T, bool) {
	for i, box := range r.boxes {
		if box.ID() == id {
			return r.options[i].Value, true
		}
	}
	var zero T
	return zero, false
}

func (r *RadioArray[T]) Update(msg tui.Message) (tui.Action, error) {
	toggled, ok := msg.(tui.CheckboxToggledMessage)
	if !ok {
		return nil, nil
	}
	for i, box := range r.boxes {
		if box.ID() != toggled.ID {
			continue
		}
		if toggled.NewValue {
			r.checked = i
			for j, other := range r.boxes {
				other.SetChecked(j == i)
			}
		} else if i == r.checked {
			// The checked radio cannot be unchecked directly.
			box.SetChecked(true)
		}
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

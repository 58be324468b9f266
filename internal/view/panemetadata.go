package view

import (
	"fmt"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/cborview"
	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// metadataKeyWidth is the fixed width of the key column.
const metadataKeyWidth = 16

type metadataRow struct {
	key   string
	value cborview.Line
}

// PaneMetadata lists the opened record's metadata entries as a two-column
// table, followed by derived rows for the version and content size.
type PaneMetadata struct {
	tui.BaseComponent

	state *mainState
	rows  []metadataRow
}

func NewPaneMetadata(ids *tui.IDAllocator, style layout.Style, state *mainState) *PaneMetadata {
	style.Padding.Top = 1
	return &PaneMetadata{
		BaseComponent: tui.NewBaseComponent(ids, style),
		state:         state,
	}
}

func (p *PaneMetadata) Update(msg tui.Message) (tui.Action, error) {
	if m, ok := msg.(RecordOpenMessage); ok && m.Record != nil {
		p.rebuild()
		return tui.RenderAction{}, nil
	}
	return nil, nil
}

func (p *PaneMetadata) rebuild() {
	record := p.state.opened
	p.rows = p.rows[:0]
	if record == nil {
		return
	}
	for _, entry := range record.Metadata.Entries() {
		p.rows = append(p.rows, metadataRow{
			key:   metadataKeyLabel(entry.Key),
			value: cborview.ValueLine(entry.Value),
		})
	}
	p.rows = append(p.rows,
		metadataRow{key: "Version", value: cborview.ValueLine(record.Version)},
		metadataRow{key: "Content Size", value: cborview.Line{{Text: fmt.Sprintf("%d bytes", len(record.Data))}}},
	)
}

// metadataKeyLabel renders a metadata map key for the key column. String
// keys stand as-is; integer keys get a # prefix.
func metadataKeyLabel(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case uint64:
		return fmt.Sprintf("#%d", k)
	case int64:
		return fmt.Sprintf("#%d", k)
	default:
		return fmt.Sprint(k)
	}
}

func (p *PaneMetadata) Draw(ctx *tui.DrawContext) {
	padding := p.Node().AbsoluteLayout().Padding
	ctx.SetText(padding.Min, "Record [M]etadata", tui.NewStyle().Bold())

	keyStyle := tui.NewStyle().Foreground(colorLabel)
	dimStyle := tui.NewStyle().Foreground(colorDim)
	y := padding.Min.Y + 1
	for _, row := range p.rows {
		ctx.SetText(tui.Position[int]{X: padding.Min.X, Y: y}, row.key, keyStyle)
		x := padding.Min.X + metadataKeyWidth
		for _, run := range row.value {
			style := tui.NewStyle()
			if run.Dim {
				style = dimStyle
			}
			x += ctx.SetText(tui.Position[int]{X: x, Y: y}, run.Text, style)
		}
		y++
	}
}

package view

import (
	"context"
	"strings"
	"testing"
	"time"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// broadcastAll delivers a message to the whole tree the way the app loop
// does, collecting the produced actions.
func broadcastAll(t *testing.T, root tui.Component, msg tui.Message) []tui.Action {
	t.Helper()
	var actions []tui.Action
	tui.VisitDepthFirst(root, func(c tui.Component) tui.VisitResult {
		action, err := c.Update(msg)
		if err != nil {
			t.Fatalf("update on %d: %v", c.ID(), err)
		}
		if action != nil {
			actions = append(actions, action)
		}
		return tui.VisitContinue
	})
	return actions
}

func drawMainView(t *testing.T, m *MainView, width, height int) *tui.Buffer {
	t.Helper()
	surface := layout.Size{Width: width, Height: height}
	tui.PerformLayout(m, surface)
	resolver := &tui.AbsoluteResolver{}
	resolver.Resolve(m, surface)

	buffer := tui.NewBuffer(width, height)
	ctx := tui.NewDrawContext(buffer, time.Unix(0, 0), 0)
	ctx.DrawComponent(m)
	return buffer
}

func rowText(b *tui.Buffer, y int) string {
	var sb strings.Builder
	for x := 0; x < b.Width(); x++ {
		cell := b.Cell(x, y)
		if cell.Width == 0 {
			continue
		}
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

func bufferText(b *tui.Buffer) string {
	var rows []string
	for y := 0; y < b.Height(); y++ {
		rows = append(rows, rowText(b, y))
	}
	return strings.Join(rows, "\n")
}

func TestMainView_DrawsChrome(t *testing.T) {
	reg := newTestRegistry(t, []byte("root content"))
	m := NewMainView(reg)
	b := drawMainView(t, m, 80, 24)

	header := rowText(b, 0)
	if !strings.HasPrefix(header, "RRR TUI v"+Version) {
		t.Errorf("header row = %q", header)
	}

	band := rowText(b, 1)
	for _, want := range []string{"[T]ree", "Record [M]etadata", "[O]verview", "┬"} {
		if !strings.Contains(band, want) {
			t.Errorf("band row %q missing %q", band, want)
		}
	}
	if !strings.Contains(band, "─") {
		t.Errorf("band row %q has no rule", band)
	}

	full := bufferText(b)
	for _, want := range []string{"Record [C]ontent", "Open Sub-Record [Enter]", "Record name:", "(x) UTF-8", "( ) Hex", "[ ] Encrypted", "Search", "┴", "│"} {
		if !strings.Contains(full, want) {
			t.Errorf("view missing %q:\n%s", want, full)
		}
	}
}

func TestMainView_BandGeometry(t *testing.T) {
	reg := newTestRegistry(t, nil)
	m := NewMainView(reg)
	drawMainView(t, m, 80, 24)

	tree := m.tree.Node().AbsoluteLayout().Border
	meta := m.metadata.Node().AbsoluteLayout().Border
	over := m.overview.Node().AbsoluteLayout().Border

	if tree.Min.X != 0 || tree.Width() != 12 {
		t.Errorf("tree column = %+v, want x=0 width=12", tree)
	}
	if over.Max.X != 80 || over.Width() != 12 {
		t.Errorf("overview column = %+v, want right-aligned width 12", over)
	}
	if meta.Min.X != tree.Max.X+1 || meta.Max.X != over.Min.X-1 {
		t.Errorf("metadata column %+v does not sit between the dividers", meta)
	}
	if tree.Min.Y != 1 || tree.Height() != 10 {
		t.Errorf("band rows = %+v, want y=1 height=10", tree)
	}

	content := m.content.Node().AbsoluteLayout().Border
	if content.Min.Y != tree.Max.Y || content.Width() != 80 {
		t.Errorf("content pane = %+v, want full width below the band", content)
	}

	open := m.open.Node().AbsoluteLayout().Border
	if open.Max.Y != 23 {
		t.Errorf("open pane = %+v, want ending above the footer", open)
	}
}

func TestMainView_RecordOpenUpdatesState(t *testing.T) {
	reg := newTestRegistry(t, []byte("root content"))
	m := NewMainView(reg)
	drawMainView(t, m, 80, 24)

	rootKey := writeTestRecord(t, reg, nil, registry.RootRecordName, 1, []byte("root content"))
	record, err := reg.ReadLatestVersion(context.Background(), rootKey)
	if err != nil || record == nil {
		t.Fatalf("reading root record: %v", err)
	}

	msg := RecordOpenMessage{HashedKey: rootKey, Name: "<root>", Record: record}
	broadcastAll(t, m, msg)

	if m.state.opened == nil || string(m.state.opened.Data) != "root content" {
		t.Fatalf("state not updated: %+v", m.state.opened)
	}
	if len(m.state.path) != 1 || m.state.path[0] != "<root>" {
		t.Errorf("path = %v, want [<root>]", m.state.path)
	}

	b := drawMainView(t, m, 80, 24)
	full := bufferText(b)
	for _, want := range []string{"<root>", "root content", "title", "Content Size", "12 bytes"} {
		if !strings.Contains(full, want) {
			t.Errorf("view missing %q after open:\n%s", want, full)
		}
	}
}

func TestMainView_MissReportedWithoutStateChange(t *testing.T) {
	reg := newTestRegistry(t, nil)
	m := NewMainView(reg)
	drawMainView(t, m, 80, 24)

	broadcastAll(t, m, RecordOpenMessage{HashedKey: registry.HashedRecordKey("x"), Name: "gone", Record: nil})

	if m.state.opened != nil {
		t.Errorf("miss replaced the opened record")
	}
	if len(m.state.path) != 0 {
		t.Errorf("miss extended the path: %v", m.state.path)
	}

	b := drawMainView(t, m, 80, 24)
	if !strings.Contains(bufferText(b), "Record not found") {
		t.Errorf("verdict not shown")
	}
}

func TestMainView_ContentEncodingToggle(t *testing.T) {
	reg := newTestRegistry(t, []byte{0x01, 0x02})
	m := NewMainView(reg)
	drawMainView(t, m, 80, 24)

	rootKey := writeTestRecord(t, reg, nil, registry.RootRecordName, 1, []byte{0x01, 0x02})
	record, err := reg.ReadLatestVersion(context.Background(), rootKey)
	if err != nil || record == nil {
		t.Fatalf("reading root record: %v", err)
	}
	broadcastAll(t, m, RecordOpenMessage{HashedKey: rootKey, Name: "<root>", Record: record})

	hexBox := m.content.encoding.boxes[1]
	result, _ := hexBox.HandleEvent(runeKey(' '))
	broadcastAll(t, m, result.Action.(tui.BroadcastAction).Message)

	if got := m.content.text.Text(); !strings.Contains(got, "01 02") {
		t.Errorf("content text = %q, want hex dump", got)
	}
}

func TestMainView_FirstTickOpensRoot(t *testing.T) {
	reg := newTestRegistry(t, []byte("root content"))
	m := NewMainView(reg)

	ch := make(chan tui.Action, 4)
	m.SetPoster(func(action tui.Action) { ch <- action })

	broadcastAll(t, m, tui.TickMessage{})
	msg, ok := awaitBroadcast(t, ch).(RecordOpenMessage)
	if !ok || msg.Record == nil {
		t.Fatalf("first tick did not open the root record: %+v", msg)
	}

	// Later ticks must not re-open it.
	broadcastAll(t, m, msg)
	broadcastAll(t, m, tui.TickMessage{})
	select {
	case action := <-ch:
		t.Fatalf("second tick posted %T", action)
	case <-time.After(50 * time.Millisecond):
	}
}

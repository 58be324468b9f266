package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/rrr-registry/rrr-tui/internal/oklch"
)

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// ClearScrollback clears the scrollback buffer (ESC[3J).
// This helps ensure a clean screen after terminal resize.
func (e *escBuilder) ClearScrollback() {
	e.writeCSI()
	e.buf = append(e.buf, '3', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// BeginSyncUpdate starts a synchronized update block.
// The terminal buffers all output until EndSyncUpdate is called, then
// displays it atomically. Terminals that don't support the sequence
// simply ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// EnableMouse enables mouse reporting using SGR-1006 extended mode, which
// keeps coordinate reporting working beyond column 223.
func (e *escBuilder) EnableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '0', 'h')
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '6', 'h')
}

// DisableMouse disables mouse reporting.
func (e *escBuilder) DisableMouse() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '6', 'l')
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '0', 'l')
}

// EnableBracketedPaste asks the terminal to wrap pasted text in
// ESC[200~ / ESC[201~ markers.
func (e *escBuilder) EnableBracketedPaste() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '0', '4', 'h')
}

// DisableBracketedPaste disables bracketed paste mode.
func (e *escBuilder) DisableBracketedPaste() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '0', '4', 'l')
}

// EnableFocusReporting asks the terminal to send ESC[I / ESC[O when the
// window gains or loses focus.
func (e *escBuilder) EnableFocusReporting() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '4', 'h')
}

// DisableFocusReporting disables focus reporting.
func (e *escBuilder) DisableFocusReporting() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '0', '4', 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits a full style sequence for s. Colors are always 24-bit;
// the style model carries concrete RGB values for both foreground and
// background, so there is nothing to leave at the terminal default.
func (e *escBuilder) SetStyle(s Style) {
	// Always start with a reset to ensure clean state.
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrItalic) {
		e.buf = append(e.buf, ';', '3')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	if s.HasAttr(AttrStrikethrough) {
		e.buf = append(e.buf, ';', '9')
	}

	e.appendRGB(s.Color.FG.RGB8(), true)
	e.appendRGB(s.Color.BG.RGB8(), false)

	e.buf = append(e.buf, 'm')
}

// appendRGB appends a 24-bit color parameter. fg selects between the
// foreground (38) and background (48) introducers.
func (e *escBuilder) appendRGB(c oklch.RGB8, fg bool) {
	base := 48
	if fg {
		base = 38
	}
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	e.buf = append(e.buf, ';', '2', ';')
	e.writeInt(int(c.Red))
	e.buf = append(e.buf, ';')
	e.writeInt(int(c.Green))
	e.buf = append(e.buf, ';')
	e.writeInt(int(c.Blue))
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

package tui

import (
	"strings"
)

// MockTerminal is an in-memory Terminal for tests. Flushed cells land in
// a buffer that tests inspect with CellAt, String, and StringTrimmed,
// and mode changes are recorded so state transitions can be asserted.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	mouseEnabled  bool
	caps          Capabilities

	altScreenEnterCount int
	altScreenExitCount  int
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal of the given size, filled with
// spaces and reporting full capabilities.
func NewMockTerminal(width, height int) *MockTerminal {
	cells := make([]Cell, width*height)
	fillCells(cells, NewCell(' ', NewStyle()))

	return &MockTerminal{
		width:  width,
		height: height,
		cells:  cells,
		caps: Capabilities{
			TrueColor: true,
			Unicode:   true,
			AltScreen: true,
		},
	}
}

func fillCells(cells []Cell, c Cell) {
	for i := range cells {
		cells[i] = c
	}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Flush applies the cell changes to the buffer. Out-of-bounds changes
// are dropped.
func (m *MockTerminal) Flush(changes []CellChange) {
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

// Clear resets every cell to a space and homes the cursor.
func (m *MockTerminal) Clear() {
	fillCells(m.cells, NewCell(' ', NewStyle()))
	m.cursorX = 0
	m.cursorY = 0
}

// ClearToEnd clears from the cursor to the end of the buffer.
func (m *MockTerminal) ClearToEnd() {
	start := m.cursorY*m.width + m.cursorX
	fillCells(m.cells[start:], NewCell(' ', NewStyle()))
}

// SetCursor moves the cursor to the given position.
func (m *MockTerminal) SetCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
}

// HideCursor records the cursor as hidden.
func (m *MockTerminal) HideCursor() {
	m.cursorHidden = true
}

// ShowCursor records the cursor as visible.
func (m *MockTerminal) ShowCursor() {
	m.cursorHidden = false
}

// EnterRawMode records the switch into raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

// ExitRawMode records the switch back to cooked mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// EnterAltScreen records a switch to the alternate screen buffer.
func (m *MockTerminal) EnterAltScreen() {
	m.inAltScreen = true
	m.altScreenEnterCount++
}

// ExitAltScreen records a switch back to the main screen buffer.
func (m *MockTerminal) ExitAltScreen() {
	m.inAltScreen = false
	m.altScreenExitCount++
}

// EnableInputModes records mouse, paste, and focus reporting as enabled.
func (m *MockTerminal) EnableInputModes() {
	m.mouseEnabled = true
}

// DisableInputModes records mouse, paste, and focus reporting as disabled.
func (m *MockTerminal) DisableInputModes() {
	m.mouseEnabled = false
}

// Caps returns the configured capabilities.
func (m *MockTerminal) Caps() Capabilities {
	return m.caps
}

// WriteDirect discards raw escape sequences. The mock does not parse
// ANSI output.
func (m *MockTerminal) WriteDirect(b []byte) (int, error) {
	return len(b), nil
}

// SetCaps overrides the reported capabilities.
func (m *MockTerminal) SetCaps(caps Capabilities) {
	m.caps = caps
}

// CellAt returns the cell at (x, y), or a zero Cell when out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String renders the buffer as newline-separated rows. Continuation
// cells of wide runes are skipped so each row reads as its visible text.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		sb.WriteString(m.rowString(y))
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed renders the buffer like String but strips trailing
// spaces from each row.
func (m *MockTerminal) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		sb.WriteString(strings.TrimRight(m.rowString(y), " "))
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func (m *MockTerminal) rowString(y int) string {
	var line strings.Builder
	for x := 0; x < m.width; x++ {
		cell := m.cells[y*m.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			line.WriteRune(' ')
		} else {
			line.WriteRune(cell.Rune)
		}
	}
	return line.String()
}

// Cursor returns the current cursor position.
func (m *MockTerminal) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	return m.cursorHidden
}

// IsInRawMode reports whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool {
	return m.inRawMode
}

// IsInAltScreen reports whether the alternate screen buffer is active.
func (m *MockTerminal) IsInAltScreen() bool {
	return m.inAltScreen
}

// AltScreenEnterCount returns how many times EnterAltScreen ran.
func (m *MockTerminal) AltScreenEnterCount() int {
	return m.altScreenEnterCount
}

// AltScreenExitCount returns how many times ExitAltScreen ran.
func (m *MockTerminal) AltScreenExitCount() int {
	return m.altScreenExitCount
}

// IsMouseEnabled reports whether input mode reporting is enabled.
func (m *MockTerminal) IsMouseEnabled() bool {
	return m.mouseEnabled
}

// Reset returns the mock to its initial state, keeping its size and
// capabilities.
func (m *MockTerminal) Reset() {
	m.Clear()
	m.cursorHidden = false
	m.inRawMode = false
	m.inAltScreen = false
	m.mouseEnabled = false
	m.altScreenEnterCount = 0
	m.altScreenExitCount = 0
}

// Resize changes the dimensions, keeping the overlapping region's
// content.
func (m *MockTerminal) Resize(width, height int) {
	newCells := make([]Cell, width*height)
	fillCells(newCells, NewCell(' ', NewStyle()))

	copyWidth := min(width, m.width)
	copyHeight := min(height, m.height)
	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			newCells[y*width+x] = m.cells[y*m.width+x]
		}
	}

	m.width = width
	m.height = height
	m.cells = newCells
}

// SetCell writes a single cell directly, for arranging test scenarios.
func (m *MockTerminal) SetCell(x, y int, c Cell) {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		m.cells[y*m.width+x] = c
	}
}

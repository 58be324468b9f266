package tui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	// TrueColor indicates whether 24-bit RGB colors are supported.
	TrueColor bool
	// Unicode indicates whether the terminal can render Unicode characters.
	Unicode bool
	// AltScreen indicates whether the terminal supports the alternate
	// screen buffer.
	AltScreen bool
}

// DetectCapabilities determines terminal capabilities from environment
// variables. Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Unicode:   true,
		AltScreen: true,
	}

	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.TrueColor = true
	}

	// Terminal emulators known to support true color without advertising
	// it through COLORTERM.
	for _, env := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(env) != "" {
			caps.TrueColor = true
		}
	}

	termEnv := strings.ToLower(os.Getenv("TERM"))
	switch {
	case termEnv == "dumb":
		return Capabilities{}
	case strings.Contains(termEnv, "truecolor"):
		caps.TrueColor = true
	}

	return caps
}

// Terminal abstracts terminal operations for rendering and input.
// Implementations speak ANSI to a real terminal or record calls for tests.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order for optimal performance.
	Flush(changes []CellChange)

	// Clear clears the entire terminal screen.
	Clear()

	// SetCursor moves the cursor to the specified position (0-indexed).
	SetCursor(x, y int)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode puts the terminal into raw mode for
	// character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer,
	// preserving the original terminal content.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	// EnableInputModes turns on mouse, bracketed paste, and focus
	// reporting.
	EnableInputModes()

	// DisableInputModes turns mouse, bracketed paste, and focus
	// reporting back off.
	DisableInputModes()

	// Caps returns the terminal's capabilities.
	Caps() Capabilities
}

// ANSITerminal implements Terminal using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSITerminal struct {
	out       io.Writer
	in        io.Reader
	caps      Capabilities
	lastStyle Style
	haveStyle bool
	esc       *escBuilder
	inFd      int
	outFd     int
	rawState  *term.State
}

// NewANSITerminal creates a new ANSI terminal with auto-detected
// capabilities. The output writer is typically os.Stdout and the input
// reader os.Stdin.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	return NewANSITerminalWithCaps(out, in, DetectCapabilities())
}

// NewANSITerminalWithCaps creates a new ANSI terminal with explicit
// capabilities, overriding auto-detection.
func NewANSITerminalWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		in:    in,
		caps:  caps,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd >= 0 {
		if w, h, err := term.GetSize(t.outFd); err == nil {
			return w, h
		}
	}
	return 80, 24
}

// Flush writes the given cell changes to the terminal.
// It optimizes cursor movement and style changes for efficiency.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// Continuation cells are the second column of a wide character,
		// already rendered by the primary cell.
		if ch.Cell.IsContinuation() {
			continue
		}

		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}

		if !t.haveStyle || !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style)
			t.lastStyle = ch.Cell.Style
			t.haveStyle = true
		}

		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}

		lastX = ch.X
		if ch.Cell.Width > 1 {
			lastX = ch.X + int(ch.Cell.Width) - 1
		}
		lastY = ch.Y
	}

	t.out.Write(t.esc.Bytes())
}

// Clear clears the entire terminal screen.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.ClearScrollback()
	t.esc.MoveTo(0, 0)
	t.out.Write(t.esc.Bytes())
	t.haveStyle = false
}

// SetCursor moves the cursor to the specified position (0-indexed).
func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	t.out.Write(t.esc.Bytes())
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// EnterRawMode puts the terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.inFd < 0 {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.out.Write(t.esc.Bytes())
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.out.Write(t.esc.Bytes())
}

// EnableInputModes turns on mouse reporting, bracketed paste, and focus
// reporting.
func (t *ANSITerminal) EnableInputModes() {
	t.esc.Reset()
	t.esc.EnableMouse()
	t.esc.EnableBracketedPaste()
	t.esc.EnableFocusReporting()
	t.out.Write(t.esc.Bytes())
}

// DisableInputModes turns mouse reporting, bracketed paste, and focus
// reporting back off.
func (t *ANSITerminal) DisableInputModes() {
	t.esc.Reset()
	t.esc.DisableFocusReporting()
	t.esc.DisableBracketedPaste()
	t.esc.DisableMouse()
	t.out.Write(t.esc.Bytes())
}

// BeginSyncUpdate starts a synchronized update block.
// Output is buffered until EndSyncUpdate, then displayed atomically.
func (t *ANSITerminal) BeginSyncUpdate() {
	t.esc.Reset()
	t.esc.BeginSyncUpdate()
	t.out.Write(t.esc.Bytes())
}

// EndSyncUpdate ends a synchronized update block.
func (t *ANSITerminal) EndSyncUpdate() {
	t.esc.Reset()
	t.esc.EndSyncUpdate()
	t.out.Write(t.esc.Bytes())
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

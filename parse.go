package tui

import (
	"bytes"
	"unicode/utf8"
)

// parseInput parses buffered bytes into events.
// Handles:
// - Single printable characters -> KeyEvent{Key: KeyRune, Rune: r}
// - Control characters (0x00-0x1F) -> appropriate KeyEvent
// - CSI sequences (\x1b[...) -> Arrow keys, function keys with modifiers
// - SS3 sequences (\x1bO...) -> Some function keys
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
// - SGR mouse wheel sequences -> ScrollEvent
// - Bracketed paste -> PasteEvent
// - Focus reporting (\x1b[I, \x1b[O) -> TerminalFocusEvent
func parseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// Lone escape at end
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			next := data[i+1]
			switch next {
			case '[':
				if i+2 < len(data) {
					switch data[i+2] {
					case '<':
						if ev, consumed := parseMouseSGR(data[i:]); consumed > 0 {
							if ev != nil {
								events = append(events, ev)
							}
							i += consumed
							continue
						}
					case 'I':
						events = append(events, TerminalFocusEvent{Gained: true})
						i += 3
						continue
					case 'O':
						events = append(events, TerminalFocusEvent{Gained: false})
						i += 3
						continue
					}
				}
				if text, consumed := parseBracketedPaste(data[i:]); consumed > 0 {
					events = append(events, PasteEvent{Text: text})
					i += consumed
					continue
				}
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			case 'O':
				// SS3 sequence (function keys)
				if i+2 < len(data) {
					if key := parseSS3(data[i+2]); key != KeyNone {
						events = append(events, KeyEvent{Key: key})
						i += 3
						continue
					}
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			default:
				// Alt+key combination
				if next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
		}

		// Control characters (0x00-0x1F, except 0x1b which is handled above)
		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlToKey(b)})
			i++
			continue
		}

		// DEL (0x7F) is backspace on most terminals
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08: // Ctrl+H, backspace on some terminals
		return KeyBackspace
	case 0x09: // Ctrl+I
		return KeyTab
	case 0x0d: // Ctrl+M
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// parseBracketedPaste parses a bracketed paste block starting at data[0].
// Returns the pasted text and bytes consumed, or ("", 0) if data does not
// start a paste block.
func parseBracketedPaste(data []byte) (string, int) {
	if !bytes.HasPrefix(data, pasteStart) {
		return "", 0
	}
	body := data[len(pasteStart):]
	end := bytes.Index(body, pasteEnd)
	if end < 0 {
		// Incomplete paste; consume everything and deliver what arrived.
		return string(body), len(data)
	}
	return string(body[:end]), len(pasteStart) + end + len(pasteEnd)
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed.
// Returns (KeyNone, ModNone, 0) if parsing fails.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	currentParam := 0
	hasParam := false
	i := 2

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			currentParam = currentParam*10 + int(b-'0')
			hasParam = true
			i++
			continue
		}

		if b == ';' {
			params = append(params, currentParam)
			currentParam = 0
			hasParam = false
			i++
			continue
		}

		// Final byte (determines the key)
		if b >= 0x40 && b <= 0x7e {
			if hasParam {
				params = append(params, currentParam)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		}

		return KeyNone, ModNone, 0
	}

	// Incomplete sequence
	return KeyNone, ModNone, 0
}

// parseCSI parses a complete CSI sequence given parameters and final byte.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone

	// Modifier from params (xterm-style: CSI 1;mod X)
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1:
			return KeyHome, mod
		case 2:
			return KeyInsert, mod
		case 3:
			return KeyDelete, mod
		case 4:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		case 11, 12, 13, 14, 15:
			return KeyF1 + Key(params[0]-11), mod
		case 17, 18, 19, 20, 21:
			return KeyF6 + Key(params[0]-17), mod
		case 23, 24:
			return KeyF11 + Key(params[0]-23), mod
		}
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(final-'P'), mod
	case 'Z':
		// Backtab
		return KeyTab, ModShift
	}

	return KeyNone, ModNone
}

// parseSS3 parses an SS3 function key sequence.
func parseSS3(b byte) Key {
	switch b {
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(b-'P')
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as 1 plus a flag set: 1=shift, 2=alt, 4=ctrl.
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse sequence.
// Format: ESC [ < button ; x ; y M (press) or ESC [ < button ; x ; y m (release).
// Only wheel events are surfaced (button codes 64-67); clicks and drags are
// consumed and dropped. Returns (event, bytes consumed); the event is nil for
// dropped sequences. Returns (nil, 0) on failure.
func parseMouseSGR(data []byte) (Event, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return nil, 0
	}

	// Parse: button ; x ; y
	i := 3
	button, x, y := 0, 0, 0
	stage := 0 // 0=button, 1=x, 2=y

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			switch stage {
			case 0:
				button = button*10 + int(b-'0')
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				return nil, 0
			}
			i++
			continue
		}

		if b == 'M' || b == 'm' {
			if stage != 2 {
				return nil, 0
			}

			// Not a wheel event; consume silently.
			if button&64 == 0 {
				return nil, i + 1
			}

			ev := ScrollEvent{
				X: x - 1, // 1-indexed on the wire
				Y: y - 1,
			}
			if button&4 != 0 {
				ev.Mod |= ModShift
			}
			if button&8 != 0 {
				ev.Mod |= ModAlt
			}
			if button&16 != 0 {
				ev.Mod |= ModCtrl
			}
			switch button & 3 {
			case 0:
				ev.Direction = ScrollUp
			case 1:
				ev.Direction = ScrollDown
			case 2:
				ev.Direction = ScrollLeft
			case 3:
				ev.Direction = ScrollRight
			}
			return ev, i + 1
		}

		return nil, 0
	}

	// Incomplete sequence
	return nil, 0
}

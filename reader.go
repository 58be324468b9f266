//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd         int            // stdin file descriptor
	buf        []byte         // Read buffer for escape sequences
	partialBuf []byte         // Buffer for incomplete UTF-8 sequences
	pending    []Event        // Parsed events waiting to be returned
	sigCh      chan os.Signal // For SIGWINCH (resize) handling

	// Resize debouncing. Rapid SIGWINCH bursts during window dragging
	// collapse into a single ResizeEvent.
	pendingResize  *ResizeEvent
	lastResizeTime time.Time

	// Self-pipe used to wake a blocking PollEvent.
	hasInterrupt bool
	interruptR   int
	interruptW   int
}

var _ InterruptibleReader = (*stdinReader)(nil)

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}

	signal.Notify(r.sigCh, syscall.SIGWINCH)

	return r, nil
}

// PollEvent reads the next event with a timeout.
// Returns (event, true) if an event was read, or (nil, false) on timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}

	r.drainResizeSignals()
	if ev, ok := r.dueResize(); ok {
		return ev, true
	}

	interruptFd := -1
	if r.hasInterrupt {
		interruptFd = r.interruptR
	}
	ready, interrupted, err := selectWithTimeoutAndInterrupt(r.fd, interruptFd, timeout)
	if err != nil || interrupted {
		if interrupted {
			r.drainInterrupt()
		}
		return nil, false
	}
	if !ready {
		// The select may have returned early for a signal; check again.
		r.drainResizeSignals()
		if ev, ok := r.dueResize(); ok {
			return ev, true
		}
		return nil, false
	}

	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partialBuf) > 0 {
		data = append(r.partialBuf, data...)
		r.partialBuf = nil
	}

	events, remaining := parseInputWithRemainder(data)
	if len(remaining) > 0 {
		r.partialBuf = make([]byte, len(remaining))
		copy(r.partialBuf, remaining)
	}

	r.pending = events
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}

	return nil, false
}

// drainResizeSignals folds any queued SIGWINCH deliveries into the pending
// resize, restarting the debounce window.
func (r *stdinReader) drainResizeSignals() {
	for {
		select {
		case <-r.sigCh:
			w, h := getTerminalSizeForReader(r.fd)
			r.pendingResize = &ResizeEvent{Width: w, Height: h}
			r.lastResizeTime = time.Now()
		default:
			return
		}
	}
}

// dueResize emits the pending resize once the debounce window has passed.
func (r *stdinReader) dueResize() (Event, bool) {
	if r.pendingResize == nil {
		return nil, false
	}
	if time.Since(r.lastResizeTime) < resizeDebounceWindow {
		return nil, false
	}
	ev := *r.pendingResize
	r.pendingResize = nil
	return ev, true
}

// EnableInterrupt sets up the self-pipe used to wake blocking polls.
func (r *stdinReader) EnableInterrupt() error {
	if r.hasInterrupt {
		return nil
	}
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		return err
	}
	unix.SetNonblock(fds[0], true)
	unix.SetNonblock(fds[1], true)
	r.hasInterrupt = true
	r.interruptR = fds[0]
	r.interruptW = fds[1]
	return nil
}

// Interrupt wakes up a blocking PollEvent call.
// Safe to call even if not currently blocking.
func (r *stdinReader) Interrupt() error {
	if !r.hasInterrupt {
		return nil
	}
	_, err := unix.Write(r.interruptW, []byte{0})
	if err == unix.EAGAIN {
		// Pipe already holds a wakeup byte.
		return nil
	}
	return err
}

// drainInterrupt empties the self-pipe after a wakeup.
func (r *stdinReader) drainInterrupt() {
	var tmp [16]byte
	for {
		n, err := unix.Read(r.interruptR, tmp[:])
		if err != nil || n == 0 {
			return
		}
	}
}

// Close releases resources.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	close(r.sigCh)
	if r.hasInterrupt {
		unix.Close(r.interruptR)
		unix.Close(r.interruptW)
		r.hasInterrupt = false
	}
	return nil
}

// parseInputWithRemainder parses input and returns any incomplete trailing
// bytes so a partial UTF-8 sequence can complete on the next read.
func parseInputWithRemainder(data []byte) ([]Event, []byte) {
	remaining := findIncompleteUTF8Suffix(data)
	if len(remaining) > 0 {
		data = data[:len(data)-len(remaining)]
	}
	events := parseInput(data)
	return events, remaining
}

// findIncompleteUTF8Suffix finds any incomplete UTF-8 sequence at the end
// of data.
func findIncompleteUTF8Suffix(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]

		if b >= 0xC0 {
			var expectedLen int
			switch {
			case b < 0xE0:
				expectedLen = 2
			case b < 0xF0:
				expectedLen = 3
			default:
				expectedLen = 4
			}
			if i < expectedLen {
				return data[len(data)-i:]
			}
			return nil
		}

		// Continuation byte, keep looking for the lead byte.
		if b >= 0x80 {
			continue
		}

		return nil
	}

	return nil
}

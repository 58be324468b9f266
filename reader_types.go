package tui

import "time"

// EventReader supplies terminal input events to the run loop.
type EventReader interface {
	// PollEvent waits up to timeout for the next event. A zero timeout
	// checks without blocking and a negative timeout blocks until an
	// event arrives. The second return value is false on timeout.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases the reader's resources.
	Close() error
}

// InterruptibleReader is an EventReader whose blocking PollEvent can be
// woken from another goroutine. Required when the run loop polls with a
// negative timeout.
type InterruptibleReader interface {
	EventReader

	// EnableInterrupt prepares the wake-up mechanism. Must be called
	// before the first blocking poll.
	EnableInterrupt() error

	// Interrupt wakes a blocked PollEvent. A no-op when nothing is
	// blocked.
	Interrupt() error
}

// resizeDebounceWindow coalesces the burst of SIGWINCH signals produced
// while a window is being dragged into a single ResizeEvent.
const resizeDebounceWindow = 16 * time.Millisecond

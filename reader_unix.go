//go:build unix

package tui

import (
	"time"

	"golang.org/x/sys/unix"
)

// getTerminalSizeForReader queries the terminal dimensions directly via
// ioctl so the reader can emit ResizeEvents without holding a Terminal.
func getTerminalSizeForReader(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeout waits until fd is readable or the timeout expires.
// A negative timeout blocks indefinitely. EINTR is reported as a plain
// timeout so signal delivery does not surface as an error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}

// selectWithTimeoutAndInterrupt waits on fd and, when interruptFd is
// non-negative, on the interrupt pipe as well. interrupted reports that
// the pipe fired; it takes precedence over fd readiness. EINTR is
// treated the same as a timeout.
func selectWithTimeoutAndInterrupt(fd, interruptFd int, timeout time.Duration) (ready, interrupted bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	maxFd := fd
	if interruptFd >= 0 {
		readFds.Set(interruptFd)
		if interruptFd > maxFd {
			maxFd = interruptFd
		}
	}

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(maxFd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, false, nil
		}
		return false, false, err
	}
	if n == 0 {
		return false, false, nil
	}

	if interruptFd >= 0 && readFds.IsSet(interruptFd) {
		return false, true, nil
	}

	return readFds.IsSet(fd), false, nil
}

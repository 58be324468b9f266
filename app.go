package tui

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log/slog"

	"github.com/rrr-registry/rrr-tui/internal/layout"
)

// App manages the application lifecycle: terminal setup, the event loop,
// layout, and rendering of a retained component tree.
type App struct {
	terminal Terminal
	reader   EventReader
	buffer   *Buffer
	root     Component
	focus    *FocusManager
	resolver *AbsoluteResolver

	actions []Action

	postMu sync.Mutex
	posted []Action

	tickRate  float64
	frameRate float64
	maxWidth  int
	maxHeight int

	shouldQuit    bool
	shouldSuspend bool
	dirty         bool
	startTime     time.Time
	lastFrame     time.Time
}

// AppOption configures an App during construction.
type AppOption func(*App)

// WithTickRate sets how many TickMessage broadcasts are delivered per
// second. The default is 4.
func WithTickRate(perSecond float64) AppOption {
	return func(a *App) {
		if perSecond > 0 {
			a.tickRate = perSecond
		}
	}
}

// WithFrameRate sets the maximum number of rendered frames per second.
// The default is 60.
func WithFrameRate(perSecond float64) AppOption {
	return func(a *App) {
		if perSecond > 0 {
			a.frameRate = perSecond
		}
	}
}

// WithMaxSize caps the render surface. Zero or negative values leave the
// corresponding axis unbounded. The terminal outside the capped surface is
// left untouched.
func WithMaxSize(width, height int) AppOption {
	return func(a *App) {
		a.maxWidth = width
		a.maxHeight = height
	}
}

// WithTerminal replaces the default ANSI terminal. Used by tests to run
// the full loop against a MockTerminal.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) {
		a.terminal = t
	}
}

// WithReader replaces the default stdin event reader.
func WithReader(r EventReader) AppOption {
	return func(a *App) {
		a.reader = r
	}
}

// NewApp creates an application rendering the given root component.
// The terminal is not touched until Run is called.
func NewApp(root Component, opts ...AppOption) (*App, error) {
	a := &App{
		root:      root,
		focus:     &FocusManager{},
		resolver:  &AbsoluteResolver{},
		tickRate:  4,
		frameRate: 60,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.terminal == nil {
		a.terminal = NewANSITerminal(os.Stdout, os.Stdin)
	}
	if a.reader == nil {
		reader, err := NewEventReader(os.Stdin)
		if err != nil {
			return nil, err
		}
		a.reader = reader
	}

	w, h := a.terminal.Size()
	w, h = a.clampSurface(w, h)
	a.buffer = NewBuffer(w, h)

	return a, nil
}

// Run enters the terminal UI and blocks until a QuitAction is processed
// or SIGINT is received. The terminal is restored before returning.
func (a *App) Run() error {
	if err := a.enter(); err != nil {
		return err
	}
	defer a.exit()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	a.startTime = time.Now()
	a.lastFrame = a.startTime
	a.dirty = true

	tickInterval := time.Duration(float64(time.Second) / a.tickRate)
	frameInterval := time.Duration(float64(time.Second) / a.frameRate)
	nextTick := a.startTime.Add(tickInterval)
	nextFrame := a.startTime.Add(frameInterval)

	for {
		select {
		case <-sigCh:
			a.queue(QuitAction{})
		default:
		}

		now := time.Now()
		if !now.Before(nextTick) {
			if err := a.broadcast(TickMessage{}); err != nil {
				return err
			}
			nextTick = nextTick.Add(tickInterval)
			if nextTick.Before(now) {
				nextTick = now.Add(tickInterval)
			}
		}
		if !now.Before(nextFrame) {
			if a.dirty {
				a.render()
			}
			nextFrame = nextFrame.Add(frameInterval)
			if nextFrame.Before(now) {
				nextFrame = now.Add(frameInterval)
			}
		}

		a.drainPosted()
		if err := a.processActions(); err != nil {
			return err
		}

		if a.shouldSuspend {
			a.shouldSuspend = false
			if err := a.suspend(); err != nil {
				return err
			}
			a.queue(ResumeAction{})
			a.queue(ClearScreenAction{})
			continue
		}
		if a.shouldQuit {
			return nil
		}

		timeout := time.Until(earlier(nextTick, nextFrame))
		if timeout < 0 {
			timeout = 0
		}
		if ev, ok := a.reader.PollEvent(timeout); ok {
			if err := a.handleEvent(ev); err != nil {
				return err
			}
			// Pull in whatever else already arrived before rendering.
			for {
				ev, ok := a.reader.PollEvent(0)
				if !ok {
					break
				}
				if err := a.handleEvent(ev); err != nil {
					return err
				}
			}
		}
	}
}

// enter prepares the terminal for full-screen rendering.
func (a *App) enter() error {
	if err := a.terminal.EnterRawMode(); err != nil {
		return err
	}
	if a.terminal.Caps().AltScreen {
		a.terminal.EnterAltScreen()
	}
	a.terminal.HideCursor()
	a.terminal.EnableInputModes()
	a.terminal.Clear()
	if interruptible, ok := a.reader.(InterruptibleReader); ok {
		if err := interruptible.EnableInterrupt(); err != nil {
			return err
		}
	}
	return nil
}

// exit restores the terminal to its original state.
func (a *App) exit() {
	a.terminal.DisableInputModes()
	a.terminal.ShowCursor()
	if a.terminal.Caps().AltScreen {
		a.terminal.ExitAltScreen()
	}
	if err := a.terminal.ExitRawMode(); err != nil {
		slog.Error("failed to restore terminal mode", "error", err)
	}
	a.reader.Close()
}

// suspend hands the terminal back to the shell and stops the process.
// Execution resumes here when the process is continued.
func (a *App) suspend() error {
	a.exit()
	if err := syscall.Kill(os.Getpid(), syscall.SIGTSTP); err != nil {
		return err
	}
	return a.enter()
}

// queue appends an action for the next processActions pass.
func (a *App) queue(action Action) {
	if action != nil {
		a.actions = append(a.actions, action)
	}
}

// Post enqueues an action from any goroutine. Background work reports its
// results exclusively through here; the action is picked up on the next
// loop iteration.
func (a *App) Post(action Action) {
	if action == nil {
		return
	}
	a.postMu.Lock()
	a.posted = append(a.posted, action)
	a.postMu.Unlock()
}

// drainPosted moves externally posted actions onto the loop's queue.
func (a *App) drainPosted() {
	a.postMu.Lock()
	posted := a.posted
	a.posted = nil
	a.postMu.Unlock()
	for _, action := range posted {
		a.queue(action)
		a.dirty = true
	}
}

func (a *App) clampSurface(w, h int) (int, int) {
	if a.maxWidth > 0 && w > a.maxWidth {
		w = a.maxWidth
	}
	if a.maxHeight > 0 && h > a.maxHeight {
		h = a.maxHeight
	}
	return w, h
}

// handleEvent translates a terminal event into actions and dispatches it
// along the focus path.
func (a *App) handleEvent(ev Event) error {
	switch e := ev.(type) {
	case ResizeEvent:
		a.queue(ResizeAction{Width: e.Width, Height: e.Height})
		return nil
	case KeyEvent:
		if e.Kind == KeyRelease {
			break
		}
		switch {
		case e.Is(CtrlKey('c')) || e.Is(CtrlKey('d')):
			a.queue(QuitAction{})
			return nil
		case e.Key == KeyCtrlZ:
			a.queue(SuspendAction{})
			return nil
		case e.Key == KeyTab && e.Mod == ModNone:
			a.queue(FocusChangeAction{Direction: FocusForward, Scope: FocusScopeAll})
			return nil
		case e.Key == KeyTab && e.Mod == ModShift:
			a.queue(FocusChangeAction{Direction: FocusBackward, Scope: FocusScopeAll})
			return nil
		}
	}

	actions, err := a.focus.DispatchEvent(a.root, ev)
	if err != nil {
		return err
	}
	for _, action := range actions {
		a.queue(action)
	}
	a.dirty = true
	return nil
}

// processActions drains the action queue, including actions enqueued by
// the components it updates along the way.
func (a *App) processActions() error {
	for len(a.actions) > 0 {
		action := a.actions[0]
		a.actions = a.actions[1:]

		switch act := action.(type) {
		case QuitAction:
			a.shouldQuit = true
		case SuspendAction:
			a.shouldSuspend = true
		case ResumeAction:
			// Handled by the suspend flow; nothing to do here.
		case ClearScreenAction:
			a.terminal.Clear()
			a.buffer.Swap()
			a.buffer.Clear()
			a.renderFull()
		case ResizeAction:
			w, h := a.clampSurface(act.Width, act.Height)
			a.buffer.Resize(w, h)
			a.terminal.Clear()
			a.renderFull()
		case RenderAction:
			a.dirty = true
		case FocusChangeAction:
			a.focus.ChangeFocus(a.root, act.Direction, act.Scope)
			a.dirty = true
		case BroadcastAction:
			if err := a.broadcast(act.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

// broadcast delivers a message to every component in the tree, queuing
// any actions they produce. The first update error stops the traversal
// and aborts the frame.
func (a *App) broadcast(msg Message) error {
	var updateErr error
	VisitDepthFirst(a.root, func(c Component) VisitResult {
		action, err := c.Update(msg)
		if err != nil {
			updateErr = fmt.Errorf("updating component %d: %w", c.ID(), err)
			return VisitStop
		}
		a.queue(action)
		return VisitContinue
	})
	return updateErr
}

// render runs the layout passes and paints the tree into the buffer,
// flushing only changed cells.
func (a *App) render() {
	a.layoutAndDraw()
	Render(a.terminal, a.buffer)
	a.dirty = false
}

// renderFull repaints every cell, used after resize or screen clears.
func (a *App) renderFull() {
	a.layoutAndDraw()
	RenderFull(a.terminal, a.buffer)
	a.dirty = false
}

func (a *App) layoutAndDraw() {
	now := time.Now()
	surface := layout.Size{Width: a.buffer.Width(), Height: a.buffer.Height()}

	PerformLayout(a.root, surface)
	a.resolver.Resolve(a.root, surface)

	a.buffer.Clear()
	ctx := NewDrawContext(a.buffer, now, now.Sub(a.startTime))
	ctx.DrawComponent(a.root)

	a.lastFrame = now
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

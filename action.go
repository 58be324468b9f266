package tui

// Action is a request emitted by event handlers and component updates,
// consumed by the application loop.
type Action interface {
	isAction()
}

// QuitAction stops the application.
type QuitAction struct{}

func (QuitAction) isAction() {}

// SuspendAction backgrounds the application, restoring the terminal.
type SuspendAction struct{}

func (SuspendAction) isAction() {}

// ResumeAction re-enters the terminal after a suspend.
type ResumeAction struct{}

func (ResumeAction) isAction() {}

// RenderAction forces a render this frame.
type RenderAction struct{}

func (RenderAction) isAction() {}

// ClearScreenAction redraws the whole surface from scratch.
type ClearScreenAction struct{}

func (ClearScreenAction) isAction() {}

// ResizeAction resizes the render surface.
type ResizeAction struct {
	Width  int
	Height int
}

func (ResizeAction) isAction() {}

// FocusChangeAction moves keyboard focus to the next or previous focusable
// component.
type FocusChangeAction struct {
	Direction FocusDirection
	Scope     FocusScope
}

func (FocusChangeAction) isAction() {}

// BroadcastAction delivers a message to every component in the tree.
type BroadcastAction struct {
	Message Message
}

func (BroadcastAction) isAction() {}

// Broadcast wraps a message in a BroadcastAction.
func Broadcast(msg Message) Action {
	return BroadcastAction{Message: msg}
}

// FocusDirection selects which neighbor in the focus order to move to.
type FocusDirection uint8

const (
	// FocusForward moves to the next focusable component.
	FocusForward FocusDirection = iota
	// FocusBackward moves to the previous focusable component.
	FocusBackward
)

// FocusScope restricts which components a focus change considers.
type FocusScope uint8

const (
	// FocusScopeAll considers every focusable component.
	FocusScopeAll FocusScope = iota
	// FocusScopeHorizontal would consider only components on the same row.
	// Not implemented; using it is a fatal error.
	FocusScopeHorizontal
	// FocusScopeVertical would consider only components in the same column.
	// Not implemented; using it is a fatal error.
	FocusScopeVertical
)

// Message is a broadcast payload delivered to every component via Update.
type Message interface {
	isMessage()
}

// BaseMessage is embedded by packages outside this one to define their own
// broadcast messages.
type BaseMessage struct{}

func (BaseMessage) isMessage() {}

// TickMessage fires at the configured tick rate.
type TickMessage struct{}

func (TickMessage) isMessage() {}

// CheckboxToggledMessage announces that a checkbox changed state.
type CheckboxToggledMessage struct {
	ID       ComponentID
	NewValue bool
}

func (CheckboxToggledMessage) isMessage() {}

// ButtonPressedMessage announces that a button was activated.
type ButtonPressedMessage struct {
	ID ComponentID
}

func (ButtonPressedMessage) isMessage() {}

// ShowErrorMessage surfaces a background failure to the UI.
type ShowErrorMessage struct {
	Err error
}

func (ShowErrorMessage) isMessage() {}

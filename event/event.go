package event

// Name identifies an event kind. The constants below cover the canonical
// vocabulary fired by the built-in loop and surface implementations, but
// any non-empty string is a valid name: subscription is by string, and
// unknown names simply never match a canonical firing.
type Name string

// Canonical event names.
const (
	StartEvent            Name = "StartEvent"
	EndEvent              Name = "EndEvent"
	RenderEvent           Name = "RenderEvent"
	ModifiedEvent         Name = "ModifiedEvent"
	DeleteEvent           Name = "DeleteEvent"
	WindowResizeEvent     Name = "WindowResizeEvent"
	StartInteractionEvent Name = "StartInteractionEvent"
	EndInteractionEvent   Name = "EndInteractionEvent"
	TimerEvent            Name = "TimerEvent"
	ExitEvent             Name = "ExitEvent"
	UserEvent             Name = "UserEvent"
)

// Token identifies one subscription on one Source. Token 0 is reserved
// and always invalid.
type Token uint64

// Command is the observer callback, invoked once per matching event
// firing. Implementations that also implement Releaser get their Release
// method called exactly once when the subscription dies.
type Command interface {
	Execute(name Name)
}

// Releaser is optionally implemented by Commands that hold an external
// resource (a callback handle, a guest function slot) needing cleanup.
type Releaser interface {
	Release()
}

// Source is the generic subscribe/unsubscribe-by-name mechanism every
// observable object exposes. AddObserver returns 0 only when the source
// no longer accepts subscriptions. RemoveObserver reports whether the
// token named a live subscription; removing twice returns false the
// second time.
type Source interface {
	AddObserver(name Name, cmd Command) Token
	RemoveObserver(token Token) bool
}

// CallbackCommand adapts plain functions to the Command interface. It is
// the closure-capturing bridge used when forwarding native events to an
// external callback: Func receives the event, Cleanup (if set) runs when
// the subscription dies.
type CallbackCommand struct {
	Func    func(name Name)
	Cleanup func()
}

func (c *CallbackCommand) Execute(name Name) {
	if c.Func != nil {
		c.Func(name)
	}
}

func (c *CallbackCommand) Release() {
	if c.Cleanup != nil {
		c.Cleanup()
		c.Cleanup = nil
	}
}

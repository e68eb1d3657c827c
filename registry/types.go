package registry

import (
	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
)

// Handle is an opaque reference to a registered object.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Capability records the operation sets a registered object supports.
type Capability uint16

const (
	CapRenderable Capability = 1 << iota
	CapResizable
	CapCameraOwner
	CapObservable
)

// Has reports whether every bit in want is set.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// CapsOf computes the capability set of a value from interface
// assertions. Evaluated once at registration.
func CapsOf(value any) Capability {
	var caps Capability
	if _, ok := value.(scenelink.RenderSurface); ok {
		caps |= CapRenderable | CapResizable
	}
	if _, ok := value.(scenelink.CameraOwner); ok {
		caps |= CapCameraOwner
	}
	if _, ok := value.(event.Source); ok {
		caps |= CapObservable
	}
	return caps
}

// EventType for table lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventUnregistered
)

// Event describes one table lifecycle change.
type Event struct {
	Value  any
	Handle Handle
	Caps   Capability
	Type   EventType
}

// Observer receives table lifecycle notifications.
type Observer interface {
	OnObjectEvent(Event)
}

// Deleter is optionally implemented by registered values that need
// cleanup when they leave the table.
type Deleter interface {
	Delete()
}

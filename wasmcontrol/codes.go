package wasmcontrol

import (
	"github.com/scenelink/scenelink/event"
)

// Event codes passed to the guest callback. Code 0 is reserved for names
// outside the canonical vocabulary.
const (
	CodeUnknown uint32 = iota
	CodeStart
	CodeEnd
	CodeRender
	CodeModified
	CodeDelete
	CodeWindowResize
	CodeStartInteraction
	CodeEndInteraction
	CodeTimer
	CodeExit
	CodeUser
)

var eventCodes = map[event.Name]uint32{
	event.StartEvent:            CodeStart,
	event.EndEvent:              CodeEnd,
	event.RenderEvent:           CodeRender,
	event.ModifiedEvent:         CodeModified,
	event.DeleteEvent:           CodeDelete,
	event.WindowResizeEvent:     CodeWindowResize,
	event.StartInteractionEvent: CodeStartInteraction,
	event.EndInteractionEvent:   CodeEndInteraction,
	event.TimerEvent:            CodeTimer,
	event.ExitEvent:             CodeExit,
	event.UserEvent:             CodeUser,
}

var codeNames = func() map[uint32]event.Name {
	m := make(map[uint32]event.Name, len(eventCodes))
	for name, code := range eventCodes {
		m[code] = name
	}
	return m
}()

// EventCode returns the u32 code for a canonical event name, or
// CodeUnknown for names outside the canonical vocabulary.
func EventCode(name event.Name) uint32 {
	return eventCodes[name]
}

// EventName returns the canonical name for a code, or "" for
// CodeUnknown and unassigned codes.
func EventName(code uint32) event.Name {
	return codeNames[code]
}

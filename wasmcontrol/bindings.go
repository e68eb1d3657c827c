package wasmcontrol

import (
	"context"

	"go.uber.org/zap"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/registry"
	"github.com/scenelink/scenelink/scene"
)

// EventSink receives observer firings destined for the guest.
// Implementations call back into guest code, so delivery errors mean the
// guest trapped or went away; the bridge logs them and keeps going.
type EventSink interface {
	OnSceneEvent(ctx context.Context, sender uint32, code uint32) error
}

// Bindings is the wasm ABI layer over a scene manager: every method
// takes and returns the integer shapes that cross the guest boundary.
// It carries no wazero state of its own, so it is usable (and testable)
// with any EventSink.
type Bindings struct {
	mgr *scene.Manager
}

// NewBindings wraps mgr for guest consumption.
func NewBindings(mgr *scene.Manager) *Bindings {
	return &Bindings{mgr: mgr}
}

// SetSize resizes the object at id. Returns 1 on success, 0 on miss.
func (b *Bindings) SetSize(id, width, height uint32) uint32 {
	return abiBool(b.mgr.SetSize(registry.Handle(id), int(width), int(height)))
}

// Render renders the object at id.
func (b *Bindings) Render(id uint32) uint32 {
	return abiBool(b.mgr.Render(registry.Handle(id)))
}

// ResetCamera resets the camera of the object at id.
func (b *Bindings) ResetCamera(id uint32) uint32 {
	return abiBool(b.mgr.ResetCamera(registry.Handle(id)))
}

// StartEventLoop blocks inside the host call until the loop stops, so
// the guest's call does not return until then. Guests wanting async
// control must arrange their own concurrency on the host side.
func (b *Bindings) StartEventLoop(id uint32) uint32 {
	return abiBool(b.mgr.StartEventLoop(registry.Handle(id)))
}

// StopEventLoop signals the loop of the object at id to terminate. Safe
// to call from inside on_scene_event.
func (b *Bindings) StopEventLoop(id uint32) uint32 {
	return abiBool(b.mgr.StopEventLoop(registry.Handle(id)))
}

// AddObserver bridges the named event of the object at id into sink.
// The returned token is 0 on miss. The sink is released exactly once
// when the subscription dies, whether by RemoveObserver or by object
// teardown.
func (b *Bindings) AddObserver(ctx context.Context, id uint32, eventName string, sink EventSink) uint64 {
	cmd := &event.CallbackCommand{
		Func: func(name event.Name) {
			if err := sink.OnSceneEvent(ctx, id, EventCode(name)); err != nil {
				scenelink.Logger().Warn("guest event delivery failed",
					zap.Uint32("sender", id),
					zap.String("event", string(name)),
					zap.Error(err))
			}
		},
		Cleanup: func() {
			if r, ok := sink.(interface{ Release() }); ok {
				r.Release()
			}
		},
	}
	return uint64(b.mgr.AddObserverCommand(registry.Handle(id), eventName, cmd))
}

// RemoveObserver drops the subscription named by token. Returns 1 on
// success, 0 when the handle or token misses (including double removal).
func (b *Bindings) RemoveObserver(id uint32, token uint64) uint32 {
	return abiBool(b.mgr.RemoveObserver(registry.Handle(id), event.Token(token)))
}

func abiBool(ok bool) uint32 {
	if ok {
		return 1
	}
	return 0
}

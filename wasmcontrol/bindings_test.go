package wasmcontrol

import (
	"context"
	"testing"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/registry"
	"github.com/scenelink/scenelink/scene"
)

type fakeSink struct {
	calls    [][2]uint32
	released int
}

func (s *fakeSink) OnSceneEvent(_ context.Context, sender, code uint32) error {
	s.calls = append(s.calls, [2]uint32{sender, code})
	return nil
}

func (s *fakeSink) Release() {
	s.released++
}

type guestWindow struct {
	event.Emitter
	renders int
	iren    scenelink.Interactor
}

func (w *guestWindow) Render() {
	w.renders++
}

func (w *guestWindow) UpdateSize(width, height int) {}

func (w *guestWindow) Interactor() scenelink.Interactor {
	return w.iren
}

func (w *guestWindow) Delete() {
	w.Emitter.Close()
}

func TestBindings_BoolABI(t *testing.T) {
	mgr := scene.NewManager()
	defer mgr.Close()
	b := NewBindings(mgr)

	win := &guestWindow{}
	id := uint32(mgr.Register(win))

	if b.Render(id) != 1 {
		t.Fatal("Render on live handle should return 1")
	}
	if b.Render(999) != 0 {
		t.Fatal("Render on bogus handle should return 0")
	}
	if b.SetSize(id, 100, 100) != 0 {
		t.Fatal("SetSize without interactor should return 0")
	}
	if b.ResetCamera(id) != 0 {
		t.Fatal("ResetCamera on a surface should return 0")
	}
}

func TestBindings_ObserverBridge(t *testing.T) {
	mgr := scene.NewManager()
	defer mgr.Close()
	b := NewBindings(mgr)

	win := &guestWindow{}
	id := uint32(mgr.Register(win))

	sink := &fakeSink{}
	token := b.AddObserver(context.Background(), id, "RenderEvent", sink)
	if token == 0 {
		t.Fatal("Expected non-zero token")
	}
	if b.AddObserver(context.Background(), 999, "RenderEvent", sink) != 0 {
		t.Fatal("AddObserver on bogus handle should return 0")
	}

	win.Invoke(event.RenderEvent)
	if len(sink.calls) != 1 {
		t.Fatalf("Expected 1 delivery, got %d", len(sink.calls))
	}
	if sink.calls[0] != [2]uint32{id, CodeRender} {
		t.Fatalf("Unexpected delivery %v", sink.calls[0])
	}

	if b.RemoveObserver(id, token) != 1 {
		t.Fatal("RemoveObserver should return 1")
	}
	if b.RemoveObserver(id, token) != 0 {
		t.Fatal("Second RemoveObserver should return 0")
	}
	if sink.released != 1 {
		t.Fatalf("Expected sink released once, got %d", sink.released)
	}

	win.Invoke(event.RenderEvent)
	if len(sink.calls) != 1 {
		t.Fatal("Delivery after removal")
	}
}

func TestBindings_SinkReleasedOnUnregister(t *testing.T) {
	mgr := scene.NewManager()
	defer mgr.Close()
	b := NewBindings(mgr)

	win := &guestWindow{}
	id := uint32(mgr.Register(win))

	sink := &fakeSink{}
	if b.AddObserver(context.Background(), id, "StartEvent", sink) == 0 {
		t.Fatal("AddObserver failed")
	}

	mgr.Unregister(registry.Handle(id))
	if sink.released != 1 {
		t.Fatalf("Expected sink released on unregister, got %d", sink.released)
	}
}

func TestEventCodes_RoundTrip(t *testing.T) {
	names := []event.Name{
		event.StartEvent, event.EndEvent, event.RenderEvent,
		event.ModifiedEvent, event.DeleteEvent, event.WindowResizeEvent,
		event.StartInteractionEvent, event.EndInteractionEvent,
		event.TimerEvent, event.ExitEvent, event.UserEvent,
	}
	seen := make(map[uint32]bool)
	for _, n := range names {
		code := EventCode(n)
		if code == CodeUnknown {
			t.Fatalf("Canonical name %s has no code", n)
		}
		if seen[code] {
			t.Fatalf("Code %d assigned twice", code)
		}
		seen[code] = true
		if EventName(code) != n {
			t.Fatalf("Code %d maps back to %s, want %s", code, EventName(code), n)
		}
	}
	if EventCode("NoSuchEvent") != CodeUnknown {
		t.Fatal("Non-canonical name should map to CodeUnknown")
	}
	if EventName(CodeUnknown) != "" {
		t.Fatal("CodeUnknown should have no name")
	}
}

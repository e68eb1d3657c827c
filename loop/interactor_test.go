package loop

import (
	"testing"
	"time"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/scene"
)

type stubSurface struct {
	event.Emitter
	renders int
	w, h    int
	iren    scenelink.Interactor
}

func (s *stubSurface) Render() {
	s.renders++
}

func (s *stubSurface) UpdateSize(width, height int) {
	s.w, s.h = width, height
}

func (s *stubSurface) Interactor() scenelink.Interactor {
	return s.iren
}

func (s *stubSurface) Delete() {
	s.Emitter.Close()
}

func TestInteractor_SelfDrivenDrainsAndReturns(t *testing.T) {
	i := New()

	var order []int
	i.Post(func() { order = append(order, 1) })
	i.Post(func() { order = append(order, 2) })

	done := make(chan struct{})
	go func() {
		i.Start()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Self-driven Start did not return once idle")
	}

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Posted work ran out of order: %v", order)
	}
}

func TestInteractor_TerminateFromCallback(t *testing.T) {
	i := New()
	i.SetExternallyDriven(true)

	ran := false
	i.Post(func() {
		ran = true
		i.TerminateApp()
	})

	// Same goroutine: Start must return because the callback terminated
	// the loop it runs on.
	i.Start()

	if !ran {
		t.Fatal("Posted callback did not run")
	}
}

func TestInteractor_ExternallyDrivenBlocksUntilTerminate(t *testing.T) {
	i := New()
	i.SetExternallyDriven(true)

	done := make(chan struct{})
	go func() {
		i.Start()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Externally-driven Start returned while idle")
	case <-time.After(50 * time.Millisecond):
	}

	ran := make(chan struct{})
	i.Post(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("Posted work never dispatched")
	}

	i.TerminateApp()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after TerminateApp")
	}
}

func TestInteractor_StartAndExitEvents(t *testing.T) {
	i := New()

	var names []event.Name
	i.AddObserver(event.StartEvent, &event.CallbackCommand{
		Func: func(n event.Name) { names = append(names, n) },
	})
	i.AddObserver(event.ExitEvent, &event.CallbackCommand{
		Func: func(n event.Name) { names = append(names, n) },
	})

	i.Start()

	if len(names) != 2 || names[0] != event.StartEvent || names[1] != event.ExitEvent {
		t.Fatalf("Expected StartEvent then ExitEvent, got %v", names)
	}
}

func TestInteractor_UpdateSize(t *testing.T) {
	i := New()
	s := &stubSurface{}
	i.SetSurface(s)

	resized := false
	i.AddObserver(event.WindowResizeEvent, &event.CallbackCommand{
		Func: func(event.Name) { resized = true },
	})

	i.UpdateSize(320, 240)

	if s.w != 320 || s.h != 240 {
		t.Fatalf("Surface saw %dx%d, want 320x240", s.w, s.h)
	}
	if !resized {
		t.Fatal("WindowResizeEvent did not fire")
	}
}

// The remote lifecycle: a controller starts the loop, an observer fired
// inside the loop stops it, and StartEventLoop unblocks.
func TestInteractor_RemoteLoopControl(t *testing.T) {
	mgr := scene.NewManager()
	defer mgr.Close()

	i := New()
	s := &stubSurface{iren: i}
	i.SetSurface(s)
	id := mgr.Register(s)

	stopped := make(chan struct{})
	token := mgr.AddObserver(id, string(event.UserEvent), func(sender uint32, name string) {
		if !mgr.StopEventLoop(id) {
			t.Errorf("StopEventLoop failed inside callback")
		}
		close(stopped)
	})
	if token == 0 {
		t.Fatal("AddObserver failed")
	}

	// Wire the user event through the loop so the callback runs on the
	// loop goroutine, as native events do.
	i.Post(func() { s.Invoke(event.UserEvent) })

	done := make(chan struct{})
	go func() {
		if !mgr.StartEventLoop(id) {
			t.Errorf("StartEventLoop failed")
		}
		close(done)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Observer callback never fired")
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("StartEventLoop did not return after StopEventLoop")
	}
}

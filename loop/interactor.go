package loop

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
)

// Interactor is a cooperative event loop attached to a render surface.
// It is observable: StartEvent and ExitEvent fire around the loop, and
// WindowResizeEvent fires on UpdateSize.
type Interactor struct {
	event.Emitter

	mu      sync.Mutex
	pending []func()
	surface scenelink.RenderSurface

	// wake carries at most one token; Post and TerminateApp use it to
	// rouse an idle externally-driven loop without ever blocking.
	wake chan struct{}

	running    atomic.Bool
	terminated atomic.Bool
	external   atomic.Bool
}

// New creates a detached interactor. Attach a surface with SetSurface
// before resizing through it.
func New() *Interactor {
	return &Interactor{
		wake: make(chan struct{}, 1),
	}
}

// SetSurface attaches the render surface this interactor resizes.
func (i *Interactor) SetSurface(s scenelink.RenderSurface) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.surface = s
}

// Surface returns the attached render surface, or nil.
func (i *Interactor) Surface() scenelink.RenderSurface {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.surface
}

// SetExternallyDriven selects who owns the loop's lifetime. Externally
// driven, Start blocks at idle until TerminateApp; self-driven, Start
// returns once the pending queue drains.
func (i *Interactor) SetExternallyDriven(v bool) {
	i.external.Store(v)
}

// Post schedules fn to run on the loop goroutine. Never blocks; safe
// from any goroutine, including from inside a dispatched callback.
func (i *Interactor) Post(fn func()) {
	if fn == nil {
		return
	}
	i.mu.Lock()
	i.pending = append(i.pending, fn)
	i.mu.Unlock()

	select {
	case i.wake <- struct{}{}:
	default:
	}
}

// Start runs the loop on the calling goroutine. It dispatches posted
// work one item at a time, checking for termination between items; a
// TerminateApp issued from inside a callback therefore ends the loop
// without interrupting that callback. Nested Start calls are rejected.
func (i *Interactor) Start() {
	if !i.running.CompareAndSwap(false, true) {
		scenelink.Logger().Warn("interactor loop already running")
		return
	}
	defer i.running.Store(false)

	i.terminated.Store(false)
	i.Invoke(event.StartEvent)

	for !i.terminated.Load() {
		fn := i.take()
		if fn != nil {
			fn()
			continue
		}
		if !i.external.Load() {
			// Self-driven and idle: hand control back to the caller.
			break
		}
		<-i.wake
	}

	i.Invoke(event.ExitEvent)
}

// TerminateApp signals the loop to end after the current dispatch
// completes. Callable from inside a callback running on the loop, or
// from any other goroutine. Idempotent.
func (i *Interactor) TerminateApp() {
	i.terminated.Store(true)
	select {
	case i.wake <- struct{}{}:
	default:
	}
}

// UpdateSize resizes the attached surface and fires WindowResizeEvent.
// Without a surface only the event fires.
func (i *Interactor) UpdateSize(width, height int) {
	i.mu.Lock()
	s := i.surface
	i.mu.Unlock()

	if s != nil {
		s.UpdateSize(width, height)
	}
	scenelink.Logger().Debug("interactor resize",
		zap.Int("width", width), zap.Int("height", height))
	i.Invoke(event.WindowResizeEvent)
}

// Delete terminates the loop and releases every subscription.
func (i *Interactor) Delete() {
	i.TerminateApp()
	i.Emitter.Close()
}

func (i *Interactor) take() func() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.pending) == 0 {
		return nil
	}
	fn := i.pending[0]
	i.pending = i.pending[1:]
	return fn
}

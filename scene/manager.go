package scene

import (
	"sync"

	"go.uber.org/zap"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/registry"
)

// ObserverFunc is the external callback attached through AddObserver.
// It receives the sender's handle and the canonical event name, and runs
// synchronously on the goroutine that fired the event.
type ObserverFunc func(sender uint32, eventName string)

// Manager resolves opaque handles to native scene objects and performs
// remote-controllable operations on them.
type Manager struct {
	objects *registry.Table

	mu      sync.Mutex
	bridges map[registry.Handle]map[event.Token]struct{}
}

// NewManager creates a manager with its own empty object table.
func NewManager() *Manager {
	m := &Manager{
		objects: registry.NewTable(),
		bridges: make(map[registry.Handle]map[event.Token]struct{}),
	}
	m.objects.Subscribe(m)
	return m
}

// Register adds a native object and returns its handle.
func (m *Manager) Register(value any) registry.Handle {
	return m.objects.Register(value)
}

// Unregister drops a handle. Outstanding observer registrations on that
// object are torn down before any other caller can observe the removal.
func (m *Manager) Unregister(id registry.Handle) bool {
	_, ok := m.objects.Unregister(id)
	return ok
}

// Objects exposes the underlying table for enumeration and lifecycle
// subscription.
func (m *Manager) Objects() *registry.Table {
	return m.objects
}

// SetSize resizes a render surface through its interactor. A surface
// without an attached interactor cannot be resized remotely; that is a
// miss, not a silent no-op on the surface itself.
func (m *Manager) SetSize(id registry.Handle, width, height int) bool {
	obj, ok := m.objects.GetWithCaps(id, registry.CapResizable)
	if !ok {
		m.miss("SetSize", id)
		return false
	}
	surface := obj.(scenelink.RenderSurface)
	iren := surface.Interactor()
	if iren == nil {
		scenelink.Logger().Warn("resize requires an attached interactor",
			zap.Uint32("id", uint32(id)))
		return false
	}
	iren.UpdateSize(width, height)
	return true
}

// Render triggers a render on a render surface.
func (m *Manager) Render(id registry.Handle) bool {
	obj, ok := m.objects.GetWithCaps(id, registry.CapRenderable)
	if !ok {
		m.miss("Render", id)
		return false
	}
	obj.(scenelink.RenderSurface).Render()
	return true
}

// ResetCamera resets the camera of a renderer-like object.
func (m *Manager) ResetCamera(id registry.Handle) bool {
	obj, ok := m.objects.GetWithCaps(id, registry.CapCameraOwner)
	if !ok {
		m.miss("ResetCamera", id)
		return false
	}
	obj.(scenelink.CameraOwner).ResetCamera()
	return true
}

// StartEventLoop runs the blocking event loop of the surface's
// interactor. It does not return until StopEventLoop (or a direct
// TerminateApp) is issued, typically from an observer callback fired on
// the loop goroutine. Interactors supporting external driving are put
// into that mode for the duration of the call.
func (m *Manager) StartEventLoop(id registry.Handle) bool {
	iren, ok := m.interactorOf(id)
	if !ok {
		m.miss("StartEventLoop", id)
		return false
	}

	if ld, ok := iren.(scenelink.LoopDriven); ok {
		ld.SetExternallyDriven(true)
		defer ld.SetExternallyDriven(false)
	}

	scenelink.Logger().Info("started event loop", zap.Uint32("id", uint32(id)))
	iren.Start()
	return true
}

// StopEventLoop signals the interactor's loop to terminate. Safe to call
// from within a callback dispatched by the running loop.
func (m *Manager) StopEventLoop(id registry.Handle) bool {
	iren, ok := m.interactorOf(id)
	if !ok {
		m.miss("StopEventLoop", id)
		return false
	}
	scenelink.Logger().Info("stopping event loop", zap.Uint32("id", uint32(id)))
	iren.TerminateApp()
	return true
}

// AddObserver attaches callback to the named event of the object at id.
// Returns the subscription token, or 0 when the handle misses or the
// object accepts no observers. The same (id, eventName) pair may be
// subscribed repeatedly; each call yields an independent token.
func (m *Manager) AddObserver(id registry.Handle, eventName string, callback ObserverFunc) event.Token {
	sender := uint32(id)
	return m.AddObserverCommand(id, eventName, &event.CallbackCommand{
		Func: func(name event.Name) {
			callback(sender, string(name))
		},
	})
}

// AddObserverCommand is the Command-level variant of AddObserver for
// callers that need Release semantics on their callback (for example a
// guest function slot that must be freed exactly once).
func (m *Manager) AddObserverCommand(id registry.Handle, eventName string, cmd event.Command) event.Token {
	obj, ok := m.objects.GetWithCaps(id, registry.CapObservable)
	if !ok {
		m.miss("AddObserver", id)
		return 0
	}
	src := obj.(event.Source)

	bridge := &trackedCommand{inner: cmd}
	token := src.AddObserver(event.Name(eventName), bridge)
	if token == 0 {
		return 0
	}
	bridge.untrack = func() { m.untrack(id, token) }
	m.track(id, token)
	return token
}

// RemoveObserver removes the subscription named by token from the object
// at id. Returns false when the handle misses or the token is unknown or
// already removed.
func (m *Manager) RemoveObserver(id registry.Handle, token event.Token) bool {
	obj, ok := m.objects.GetWithCaps(id, registry.CapObservable)
	if !ok {
		m.miss("RemoveObserver", id)
		return false
	}
	return obj.(event.Source).RemoveObserver(token)
}

// Close tears down every registered object and its subscriptions.
func (m *Manager) Close() error {
	return m.objects.Close()
}

// OnObjectEvent implements registry.Observer. When an object leaves the
// table without tearing down its own subscriptions, the manager removes
// the bridges it created so no callback fires for a dead handle.
func (m *Manager) OnObjectEvent(e registry.Event) {
	if e.Type != registry.EventUnregistered {
		return
	}

	m.mu.Lock()
	tokens := m.bridges[e.Handle]
	delete(m.bridges, e.Handle)
	m.mu.Unlock()

	if len(tokens) == 0 {
		return
	}
	if src, ok := e.Value.(event.Source); ok {
		for t := range tokens {
			src.RemoveObserver(t)
		}
	}
}

func (m *Manager) track(id registry.Handle, token event.Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bridges[id] == nil {
		m.bridges[id] = make(map[event.Token]struct{})
	}
	m.bridges[id][token] = struct{}{}
}

func (m *Manager) untrack(id registry.Handle, token event.Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tokens, ok := m.bridges[id]; ok {
		delete(tokens, token)
		if len(tokens) == 0 {
			delete(m.bridges, id)
		}
	}
}

func (m *Manager) interactorOf(id registry.Handle) (scenelink.Interactor, bool) {
	obj, ok := m.objects.GetWithCaps(id, registry.CapRenderable)
	if !ok {
		return nil, false
	}
	iren := obj.(scenelink.RenderSurface).Interactor()
	if iren == nil {
		return nil, false
	}
	return iren, true
}

func (m *Manager) miss(op string, id registry.Handle) {
	scenelink.Logger().Debug("handle miss",
		zap.String("op", op), zap.Uint32("id", uint32(id)))
}

// trackedCommand chains the manager's bookkeeping onto a caller-supplied
// Command so the bridge entry disappears exactly when the subscription
// dies, whichever side kills it first.
type trackedCommand struct {
	inner   event.Command
	untrack func()
}

func (c *trackedCommand) Execute(name event.Name) {
	c.inner.Execute(name)
}

func (c *trackedCommand) Release() {
	if r, ok := c.inner.(event.Releaser); ok {
		r.Release()
	}
	if c.untrack != nil {
		c.untrack()
		c.untrack = nil
	}
}

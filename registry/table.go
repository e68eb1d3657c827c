package registry

import (
	"sync"
)

type tableEntry struct {
	value any
	caps  Capability
}

// Table maps handles to live native objects.
//
// Handles are issued from a monotonic counter and never reused, so a
// stale handle held across an unregister/register cycle can only miss,
// never alias a different object.
type Table struct {
	mu        sync.RWMutex
	next      Handle
	entries   map[Handle]tableEntry
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]tableEntry),
	}
}

// Register stores value and returns its fresh handle.
// Returns 0 after Close.
func (t *Table) Register(value any) Handle {
	caps := CapsOf(value)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}
	t.next++
	handle := t.next
	t.entries[handle] = tableEntry{value: value, caps: caps}
	t.mu.Unlock()

	t.notify(Event{
		Type:   EventRegistered,
		Handle: handle,
		Caps:   caps,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[handle]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Capability returns the capability set recorded at registration.
func (t *Table) Capability(handle Handle) (Capability, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[handle]
	if !ok {
		return 0, false
	}
	return e.caps, true
}

// GetWithCaps resolves a handle and checks required capability bits in
// one lookup.
func (t *Table) GetWithCaps(handle Handle, want Capability) (any, bool) {
	t.mu.RLock()
	e, ok := t.entries[handle]
	t.mu.RUnlock()

	if !ok || !e.caps.Has(want) {
		return nil, false
	}
	return e.value, true
}

// Unregister drops a handle and returns (value, true) if it was live.
// Values implementing Deleter get their Delete method run, which tears
// down any subscriptions the object still carries.
func (t *Table) Unregister(handle Handle) (any, bool) {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if ok {
		delete(t.entries, handle)
	}
	t.mu.Unlock()

	if !ok {
		return nil, false
	}

	if d, ok := e.value.(Deleter); ok {
		d.Delete()
	}

	t.notify(Event{
		Type:   EventUnregistered,
		Handle: handle,
		Caps:   e.caps,
		Value:  e.value,
	})

	return e.value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Each iterates over live entries in unspecified order.
func (t *Table) Each(fn func(Handle, Capability, any) bool) {
	t.mu.RLock()
	snapshot := make(map[Handle]tableEntry, len(t.entries))
	for h, e := range t.entries {
		snapshot[h] = e
	}
	t.mu.RUnlock()

	for h, e := range snapshot {
		if !fn(h, e.caps, e.value) {
			return
		}
	}
}

// Clear unregisters every live entry.
func (t *Table) Clear() {
	t.mu.RLock()
	handles := make([]Handle, 0, len(t.entries))
	for h := range t.entries {
		handles = append(handles, h)
	}
	t.mu.RUnlock()

	for _, h := range handles {
		t.Unregister(h)
	}
}

// Close unregisters everything and stops accepting registrations.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.Clear()
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnObjectEvent(e)
	}
}

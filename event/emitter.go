package event

import (
	"sync"
)

type subscription struct {
	name Name
	cmd  Command
}

// Emitter is an embeddable Source implementation.
//
// The zero value is ready to use. Dispatch via Invoke is synchronous:
// every matching Command runs on the caller's goroutine before Invoke
// returns. Removing a subscription suppresses future dispatch only; it
// never interrupts a running Execute.
type Emitter struct {
	mu     sync.Mutex
	next   Token
	subs   map[Token]subscription
	closed bool
}

// AddObserver attaches cmd under name and returns its token.
// Returns 0 after Close. The same name may be subscribed any number of
// times; each call yields an independent token and an independent
// invocation per firing.
func (e *Emitter) AddObserver(name Name, cmd Command) Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}
	if e.subs == nil {
		e.subs = make(map[Token]subscription)
	}

	e.next++
	e.subs[e.next] = subscription{name: name, cmd: cmd}
	return e.next
}

// RemoveObserver drops the subscription named by token, running its
// Release (if any) exactly once. Unknown or already-removed tokens
// return false.
func (e *Emitter) RemoveObserver(token Token) bool {
	e.mu.Lock()
	sub, ok := e.subs[token]
	if ok {
		delete(e.subs, token)
	}
	e.mu.Unlock()

	if !ok {
		return false
	}
	release(sub.cmd)
	return true
}

// Invoke fires every subscription matching name. Commands run outside
// the emitter lock, so a running Command may add or remove observers on
// the same emitter; a subscription removed mid-dispatch does not fire
// again within the same Invoke.
func (e *Emitter) Invoke(name Name) {
	e.mu.Lock()
	if e.closed || len(e.subs) == 0 {
		e.mu.Unlock()
		return
	}
	tokens := make([]Token, 0, len(e.subs))
	for t, sub := range e.subs {
		if sub.name == name {
			tokens = append(tokens, t)
		}
	}
	e.mu.Unlock()

	for _, t := range tokens {
		e.mu.Lock()
		sub, ok := e.subs[t]
		e.mu.Unlock()
		if ok {
			sub.cmd.Execute(name)
		}
	}
}

// HasObservers reports whether any subscription matches name.
func (e *Emitter) HasObservers(name Name) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, sub := range e.subs {
		if sub.name == name {
			return true
		}
	}
	return false
}

// Close drops every live subscription, running each Release exactly
// once, and rejects further AddObserver calls. Safe to call more than
// once.
func (e *Emitter) Close() {
	e.mu.Lock()
	subs := e.subs
	e.subs = nil
	e.closed = true
	e.mu.Unlock()

	for _, sub := range subs {
		release(sub.cmd)
	}
}

func release(cmd Command) {
	if r, ok := cmd.(Releaser); ok {
		r.Release()
	}
}

// Package event provides the observer mechanism scene objects expose to
// remote controllers.
//
// Objects embed an Emitter and fire named events with Invoke. Observers
// attach a Command under a canonical event name and receive a Token for
// later removal. Dispatch is synchronous on the goroutine that invoked
// the event; there is no queue.
//
// # Subscription Lifecycle
//
// A subscription dies in exactly one of two ways: RemoveObserver with its
// token, or Close of the owning emitter. In either case, if the Command
// implements Releaser, Release runs exactly once. Bridges that capture an
// external callback handle rely on this to free the handle without
// double-release or leak.
//
// # Ordering
//
// Two subscriptions for the same event name fire in unspecified order.
package event

// Package registry provides the handle table behind the scene control
// surface.
//
// Native objects are registered into a Table and addressed afterwards
// only by their Handle, an opaque uint32 that is never reused for the
// lifetime of the process. Resolving an unknown or unregistered handle is
// an ordinary miss, reported as (nil, false), because remote callers race
// object teardown as a matter of course.
//
// # Capabilities
//
// What a registered object can do (render, resize, reset a camera, accept
// observers) is recorded as a Capability bit set computed once at
// registration from interface assertions. Callers check capability bits
// instead of repeating type switches at every operation.
//
// # Lifecycle
//
// Unregistering a value that implements Deleter runs its Delete method,
// which is where emitter-backed objects tear down their outstanding
// subscriptions. Table observers receive a notification for every
// registration and unregistration, letting higher layers drop per-handle
// bookkeeping when an object disappears.
package registry

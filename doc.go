// Package scenelink lets a remote controller drive live native scene
// objects (render surfaces, renderers, interactors) through opaque
// integer handles, without ever handing a native reference across the
// boundary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	scenelink/       Root package with the collaborator interfaces
//	├── scene/       High-level handle-addressed control surface
//	├── registry/    Handle table with capability tags
//	├── event/       Typed event names, observable emitter, callback bridges
//	├── loop/        Cooperative single-threaded interactor loop
//	├── wasmcontrol/ wazero host module exposing the control surface to guests
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Register an object, then drive it by handle:
//
//	mgr := scene.NewManager()
//	defer mgr.Close()
//
//	id := mgr.Register(window)
//	mgr.SetSize(id, 800, 600)
//	mgr.Render(id)
//
//	token := mgr.AddObserver(id, "RenderEvent", func(sender uint32, name string) {
//	    fmt.Printf("object %d fired %s\n", sender, name)
//	})
//	defer mgr.RemoveObserver(id, token)
//
// # Handle Semantics
//
// Handles are opaque uint32 values, unique for the process lifetime and
// never reused. Every operation on an unknown or unregistered handle
// reports a miss (false, or a zero token) rather than an error: remote
// callers routinely race object teardown, and a miss is an ordinary
// outcome, not a fault.
//
// # Event Delivery
//
// Observer callbacks run synchronously on the goroutine that fired the
// native event. There is no queue and no reordering; a slow callback
// blocks the event pipeline of its sender.
package scenelink

package scenelink

// Interactor drives a surface's cooperative event loop.
//
// Start blocks the calling goroutine until TerminateApp is invoked,
// typically from within an observer callback dispatched by the loop
// itself. TerminateApp only signals termination; it never interrupts a
// callback that is already running.
type Interactor interface {
	Start()
	TerminateApp()
	UpdateSize(width, height int)
}

// RenderSurface is a render-window-like object. Interactor returns the
// attached interactor, or nil when none is attached. Resizing goes
// through the interactor, so a surface without one cannot be resized
// remotely.
type RenderSurface interface {
	Render()
	UpdateSize(width, height int)
	Interactor() Interactor
}

// CameraOwner is a renderer-like object holding a resettable camera.
type CameraOwner interface {
	ResetCamera()
}

// LoopDriven is implemented by interactors whose loop can be driven
// externally. A controller sets external driving for the duration of a
// Start call instead of mutating process-global state.
type LoopDriven interface {
	SetExternallyDriven(bool)
}

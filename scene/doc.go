// Package scene is the handle-addressed control surface a remote caller
// drives.
//
// Every operation resolves its handle through the registry, checks the
// required capability, and reports plain success or failure. A miss
// (unknown handle, missing capability, detached interactor) is never an
// error: remote controllers race object lifecycle by design, and the
// contract is that racing loses quietly.
//
//	mgr := scene.NewManager()
//	id := mgr.Register(window)
//	mgr.Render(id)        // true
//	mgr.Render(999)       // false, not an error
//
// StartEventLoop blocks its caller until the loop is stopped, usually by
// StopEventLoop issued from an observer callback running inside the loop.
package scene

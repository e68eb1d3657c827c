// Package errors provides structured error types for the scenelink library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Boundary operations on the scene manager report
// misses as plain booleans by contract; these errors are for the layers
// around them: wasm host wiring, loop misuse, and configuration.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseResolve, "object", 42)
//	err := errors.MissingExport("on_scene_event")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

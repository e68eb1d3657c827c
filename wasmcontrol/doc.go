// Package wasmcontrol exposes the scene control surface to WebAssembly
// guests running under wazero.
//
// The host module "scenelink:control" exports one function per boundary
// operation. Handles and booleans cross the boundary as u32 (1 success,
// 0 miss), observer tokens as u64 with 0 meaning failure, matching the
// miss-not-fault contract of the scene manager.
//
// Guests that attach observers must export
//
//	on_scene_event(sender u32, code u32)
//
// which the host calls synchronously whenever an observed native event
// fires. Event names cross as stable u32 codes; see EventCode.
//
// Usage:
//
//	r := wazero.NewRuntime(ctx)
//	closer, err := wasmcontrol.Instantiate(ctx, r, mgr)
//	defer closer.Close(ctx)
//	// ... instantiate the guest module against r as usual.
package wasmcontrol

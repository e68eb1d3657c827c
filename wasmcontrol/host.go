package wasmcontrol

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/errors"
	"github.com/scenelink/scenelink/scene"
)

const (
	// ModuleName is the import namespace guests bind against.
	ModuleName = "scenelink:control"

	// GuestEventExport is the function a guest must export to receive
	// observer events.
	GuestEventExport = "on_scene_event"
)

// Instantiate registers the host module on r, backed by mgr. The
// returned closer unregisters it. Guests importing ModuleName can then
// drive any object registered with mgr by its handle.
func Instantiate(ctx context.Context, r wazero.Runtime, mgr *scene.Manager) (api.Closer, error) {
	b := NewBindings(mgr)

	i32 := api.ValueTypeI32
	i64 := api.ValueTypeI64

	builder := r.NewHostModuleBuilder(ModuleName)

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.SetSize(uint32(stack[0]), uint32(stack[1]), uint32(stack[2])))
		}), []api.ValueType{i32, i32, i32}, []api.ValueType{i32}).
		Export("set_size")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.Render(uint32(stack[0])))
		}), []api.ValueType{i32}, []api.ValueType{i32}).
		Export("render")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.ResetCamera(uint32(stack[0])))
		}), []api.ValueType{i32}, []api.ValueType{i32}).
		Export("reset_camera")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.StartEventLoop(uint32(stack[0])))
		}), []api.ValueType{i32}, []api.ValueType{i32}).
		Export("start_event_loop")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.StopEventLoop(uint32(stack[0])))
		}), []api.ValueType{i32}, []api.ValueType{i32}).
		Export("stop_event_loop")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			id := uint32(stack[0])
			ptr := uint32(stack[1])
			length := uint32(stack[2])

			mem := mod.Memory()
			if mem == nil {
				scenelink.Logger().Warn("add_observer rejected",
					zap.Uint32("id", id),
					zap.Error(errors.InvalidInput(errors.PhaseHost, "guest has no memory")))
				stack[0] = 0
				return
			}
			name, ok := mem.Read(ptr, length)
			if !ok {
				scenelink.Logger().Warn("add_observer rejected",
					zap.Uint32("id", id),
					zap.Error(errors.MemoryAccess(ptr, length)))
				stack[0] = 0
				return
			}
			fn := mod.ExportedFunction(GuestEventExport)
			if fn == nil {
				scenelink.Logger().Warn("add_observer rejected",
					zap.Uint32("id", id),
					zap.Error(errors.MissingExport(GuestEventExport)))
				stack[0] = 0
				return
			}

			// Events fire after this host call returns; detach the
			// delivery context from the call that created the bridge.
			stack[0] = b.AddObserver(context.WithoutCancel(ctx), id, string(name), &guestSink{fn: fn})
		}), []api.ValueType{i32, i32, i32}, []api.ValueType{i64}).
		Export("add_observer")

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(b.RemoveObserver(uint32(stack[0]), stack[1]))
		}), []api.ValueType{i32, i64}, []api.ValueType{i32}).
		Export("remove_observer")

	return builder.Instantiate(ctx)
}

// guestSink delivers events by calling the guest's exported callback.
type guestSink struct {
	fn api.Function
}

func (s *guestSink) OnSceneEvent(ctx context.Context, sender, code uint32) error {
	_, err := s.fn.Call(ctx, uint64(sender), uint64(code))
	return err
}

package event

import (
	"testing"
)

func TestEmitter_AddInvokeRemove(t *testing.T) {
	var e Emitter

	count := 0
	token := e.AddObserver(RenderEvent, &CallbackCommand{
		Func: func(name Name) {
			if name != RenderEvent {
				t.Fatalf("Expected RenderEvent, got %s", name)
			}
			count++
		},
	})
	if token == 0 {
		t.Fatal("Expected non-zero token")
	}

	e.Invoke(RenderEvent)
	if count != 1 {
		t.Fatalf("Expected 1 invocation, got %d", count)
	}

	// Non-matching name does not fire
	e.Invoke(StartEvent)
	if count != 1 {
		t.Fatalf("Expected 1 invocation after unrelated event, got %d", count)
	}

	if !e.RemoveObserver(token) {
		t.Fatal("RemoveObserver failed")
	}
	e.Invoke(RenderEvent)
	if count != 1 {
		t.Fatalf("Expected no invocation after removal, got %d", count)
	}
}

func TestEmitter_RemoveTwice(t *testing.T) {
	var e Emitter

	token := e.AddObserver(StartEvent, &CallbackCommand{Func: func(Name) {}})
	if !e.RemoveObserver(token) {
		t.Fatal("First RemoveObserver should return true")
	}
	if e.RemoveObserver(token) {
		t.Fatal("Second RemoveObserver should return false")
	}
}

func TestEmitter_DuplicateSubscriptions(t *testing.T) {
	var e Emitter

	count := 0
	t1 := e.AddObserver(StartEvent, &CallbackCommand{Func: func(Name) { count++ }})
	t2 := e.AddObserver(StartEvent, &CallbackCommand{Func: func(Name) { count++ }})
	if t1 == t2 {
		t.Fatal("Duplicate subscriptions must get distinct tokens")
	}

	e.Invoke(StartEvent)
	if count != 2 {
		t.Fatalf("Expected 2 invocations, got %d", count)
	}

	e.RemoveObserver(t1)
	e.Invoke(StartEvent)
	if count != 3 {
		t.Fatalf("Expected 3 invocations, got %d", count)
	}
}

func TestEmitter_ReleaseExactlyOnce(t *testing.T) {
	var e Emitter

	released := 0
	token := e.AddObserver(StartEvent, &CallbackCommand{
		Func:    func(Name) {},
		Cleanup: func() { released++ },
	})

	e.RemoveObserver(token)
	e.RemoveObserver(token)
	e.Close()

	if released != 1 {
		t.Fatalf("Expected Cleanup to run once, ran %d times", released)
	}
}

func TestEmitter_CloseReleasesAll(t *testing.T) {
	var e Emitter

	released := 0
	e.AddObserver(StartEvent, &CallbackCommand{Cleanup: func() { released++ }})
	e.AddObserver(ExitEvent, &CallbackCommand{Cleanup: func() { released++ }})

	e.Close()
	e.Close()

	if released != 2 {
		t.Fatalf("Expected 2 releases, got %d", released)
	}

	if e.AddObserver(StartEvent, &CallbackCommand{}) != 0 {
		t.Fatal("AddObserver after Close should return 0")
	}
}

func TestEmitter_RemoveDuringDispatch(t *testing.T) {
	var e Emitter

	fired := 0
	var tokens [2]Token
	for i := range tokens {
		tokens[i] = e.AddObserver(StartEvent, &CallbackCommand{
			Func: func(Name) {
				fired++
				// Each callback removes the other; only one may fire.
				e.RemoveObserver(tokens[1-i])
			},
		})
	}

	e.Invoke(StartEvent)
	if fired != 1 {
		t.Fatalf("Expected exactly 1 firing, got %d", fired)
	}
}

func TestEmitter_AddDuringDispatch(t *testing.T) {
	var e Emitter

	lateFired := false
	e.AddObserver(StartEvent, &CallbackCommand{
		Func: func(Name) {
			e.AddObserver(StartEvent, &CallbackCommand{
				Func: func(Name) { lateFired = true },
			})
		},
	})

	e.Invoke(StartEvent)
	if lateFired {
		t.Fatal("Subscription added mid-dispatch must not fire in the same Invoke")
	}

	e.Invoke(StartEvent)
	if !lateFired {
		t.Fatal("Subscription added mid-dispatch should fire on the next Invoke")
	}
}

func TestEmitter_HasObservers(t *testing.T) {
	var e Emitter

	if e.HasObservers(StartEvent) {
		t.Fatal("Empty emitter should have no observers")
	}
	token := e.AddObserver(StartEvent, &CallbackCommand{})
	if !e.HasObservers(StartEvent) {
		t.Fatal("Expected observer for StartEvent")
	}
	if e.HasObservers(ExitEvent) {
		t.Fatal("Expected no observer for ExitEvent")
	}
	e.RemoveObserver(token)
	if e.HasObservers(StartEvent) {
		t.Fatal("Expected no observer after removal")
	}
}

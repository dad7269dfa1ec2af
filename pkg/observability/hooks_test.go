package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSolverHooks{}
	s.OnParseComplete(ctx, 15, 15, 100, time.Millisecond, nil)
	s.OnRelaxComplete(ctx, 400, 1100, time.Millisecond, nil)
	s.OnReconstructComplete(ctx, 7036, 45, time.Millisecond, errors.New("unreachable"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solve")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "solve", 64)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customSolver := &recordingSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset() should restore NoopSolverHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingSolverHooks{}
	SetSolverHooks(custom)
	SetSolverHooks(nil)
	if Solver() != custom {
		t.Error("SetSolverHooks(nil) should be ignored")
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingSolverHooks{}
	SetSolverHooks(rec)

	Solver().OnReconstructComplete(context.Background(), 11048, 64, time.Millisecond, nil)
	if rec.best != 11048 || rec.seats != 64 {
		t.Errorf("recorded best=%d seats=%d", rec.best, rec.seats)
	}
}

type recordingSolverHooks struct {
	NoopSolverHooks
	best  int64
	seats int
}

func (r *recordingSolverHooks) OnReconstructComplete(_ context.Context, best int64, seats int, _ time.Duration, _ error) {
	r.best, r.seats = best, seats
}

type testCacheHooks struct{ NoopCacheHooks }

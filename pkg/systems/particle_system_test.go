package systems

import (
	"testing"

	"github.com/decker502/cnake/pkg/types"
)

func testSpec(lifetime int) ParticleSpec {
	return ParticleSpec{
		Velocity: 1,
		Friction: 0.9,
		Angle:    45,
		Lifetime: lifetime,
		Rect:     types.Rect{X: 10, Y: 10, W: 4, H: 4},
		Color:    types.RGB(200, 100, 50),
	}
}

func TestParticleSystem_EmitFirstFit(t *testing.T) {
	ps := NewParticleSystem()

	if got := ps.FreeSlot(); got != 0 {
		t.Fatalf("FreeSlot on empty system = %d, want 0", got)
	}

	ps.Emit(testSpec(10))
	ps.Emit(testSpec(1))
	ps.Emit(testSpec(10))

	if got := ps.ActiveCount(); got != 3 {
		t.Fatalf("ActiveCount = %d, want 3", got)
	}

	// slot 1 expires after one tick and is reused first
	ps.Update()
	if got := ps.FreeSlot(); got != 1 {
		t.Fatalf("FreeSlot after expiry = %d, want 1", got)
	}
	ps.Emit(testSpec(5))
	if !ps.Get(1).IsActive() {
		t.Error("expected slot 1 to be reused")
	}
	if got := ps.FreeSlot(); got != 3 {
		t.Errorf("FreeSlot = %d, want 3", got)
	}
}

func TestParticleSystem_SaturationDropsSilently(t *testing.T) {
	ps := NewParticleSystem()
	for i := 0; i < ParticlesCapacity; i++ {
		if !ps.Emit(testSpec(100)) {
			t.Fatalf("emit %d failed before saturation", i)
		}
	}

	if ps.Emit(testSpec(100)) {
		t.Error("Emit on a full system should report false")
	}
	if ps.FreeSlot() != -1 {
		t.Error("FreeSlot on a full system should be -1")
	}
	if got := ps.ActiveCount(); got != ParticlesCapacity {
		t.Errorf("ActiveCount = %d, want %d", got, ParticlesCapacity)
	}
}

func TestParticleSystem_EmitN(t *testing.T) {
	ps := NewParticleSystem()
	for i := 0; i < ParticlesCapacity-3; i++ {
		ps.Emit(testSpec(100))
	}

	calls := 0
	n := ps.EmitN(10, func() ParticleSpec {
		calls++
		return testSpec(100)
	})

	if n != 3 {
		t.Errorf("EmitN emitted %d, want 3", n)
	}
	if calls != 3 {
		t.Errorf("spec builder called %d times, want 3", calls)
	}
}

func TestParticleSystem_ResetAndDraw(t *testing.T) {
	ps := NewParticleSystem()
	ps.Emit(testSpec(4))
	ps.Emit(testSpec(4))

	var dl types.DrawList
	ps.Draw(&dl, types.LayerMap)
	if got := dl.Count(types.DrawFillRect, types.LayerMap); got != 2 {
		t.Fatalf("Draw emitted %d rects, want 2", got)
	}
	if a := dl.Commands[0].Color.A; a != 255 {
		t.Errorf("fresh particle alpha = %d, want 255", a)
	}

	ps.Reset()
	dl.Reset()
	ps.Draw(&dl, types.LayerMap)
	if len(dl.Commands) != 0 {
		t.Errorf("Draw after Reset emitted %d commands", len(dl.Commands))
	}
}

func TestParticleSystem_AllExpire(t *testing.T) {
	ps := NewParticleSystem()
	for i := 0; i < 20; i++ {
		ps.Emit(testSpec(5 + i))
	}
	for i := 0; i < 24; i++ {
		ps.Update()
	}
	if got := ps.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after all lifetimes = %d, want 0", got)
	}
}

package systems

import (
	"testing"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

func TestMovementAdvancesAlongFacing(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	pet := w.pet()
	pet.X, pet.Speed = 0, 2

	w.movement.Tick()

	if pet.X != 2 || pet.Facing != types.FacingRight {
		t.Errorf("expected x=2 facing right, got x=%v facing %s", pet.X, pet.Facing)
	}
	if pet.Y != 100 {
		t.Errorf("y should not change without a nudge, got %v", pet.Y)
	}
}

// TestMovementFlipsAtBounds 越界的那一次移动停在边界并掉头
func TestMovementFlipsAtBounds(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	pet := w.pet()
	pet.X, pet.Speed = 699, 2

	w.movement.Tick()
	if pet.X != 700 || pet.Facing != types.FacingLeft {
		t.Fatalf("expected x=700 facing left, got x=%v facing %s", pet.X, pet.Facing)
	}

	w.movement.Tick()
	if pet.X != 698 {
		t.Errorf("expected x=698 after turning, got %v", pet.X)
	}

	pet.X = 1
	w.movement.Tick()
	if pet.X != 0 || pet.Facing != types.FacingRight {
		t.Errorf("expected x=0 facing right, got x=%v facing %s", pet.X, pet.Facing)
	}
}

func TestMovementNudge(t *testing.T) {
	tests := []struct {
		name   string
		rolls  []float64
		startY float64
		wantY  float64
	}{
		{"no nudge", []float64{0.99}, 100, 100},
		{"nudge up", []float64{0.01, 0.9}, 100, 95},
		{"nudge down", []float64{0.01, 0.2}, 100, 105},
		{"clamped at top", []float64{0.01, 0.9}, 2, 0},
		{"clamped at bottom", []float64{0.01, 0.2}, 498, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestPetWorld(t, 800, 600)
			w.rng.values = tt.rolls
			pet := w.pet()
			pet.Y = tt.startY

			w.movement.Tick()

			if pet.Y != tt.wantY {
				t.Errorf("y = %v, want %v", pet.Y, tt.wantY)
			}
		})
	}
}

func TestMovementSkipsNonRoamingAndDragging(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	pet := w.pet()

	pet.Action = types.ActionSleeping
	w.movement.Tick()
	if pet.X != 100 {
		t.Errorf("sleeping pet moved to %v", pet.X)
	}

	pet.Action = types.ActionWalking
	drag, _ := ecs.GetComponent[*components.DragComponent](w.em, w.id)
	drag.Mode = types.MotionDragging
	w.movement.Tick()
	if pet.X != 100 {
		t.Errorf("dragged pet moved to %v", pet.X)
	}

	drag.Mode = types.MotionAutonomous
	w.movement.Tick()
	if pet.X != 102 {
		t.Errorf("walking pet should move, got x=%v", pet.X)
	}
}

// TestMovementStaysInBounds 长时间随机移动后位置始终在视口内
func TestMovementStaysInBounds(t *testing.T) {
	w := newTestPetWorld(t, 300, 200)
	w.rng.values = []float64{0.01, 0.7, 0.3, 0.02, 0.1, 0.9}
	pet := w.pet()
	pet.Speed = 3.7

	for i := 0; i < 2000; i++ {
		w.movement.Tick()
		if pet.X < 0 || pet.X > 200 || pet.Y < 0 || pet.Y > 100 {
			t.Fatalf("tick %d: position (%v, %v) out of bounds", i, pet.X, pet.Y)
		}
	}
}

package systems

import (
	"testing"

	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

func TestPlayAmbientRevertsToRest(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want types.Action
	}{
		{"idle", 0.9, types.ActionIdle},
		{"walking", 0.1, types.ActionWalking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestPetWorld(t, 800, 600)
			w.rng.values = []float64{tt.roll}

			w.director.PlayAmbient(w.id, types.ActionDancing, 3000*msDuration)
			if w.pet().Action != types.ActionDancing {
				t.Fatalf("expected dancing, got %s", w.pet().Action)
			}

			w.advance(2999)
			if w.pet().Action != types.ActionDancing {
				t.Fatalf("reverted early to %s", w.pet().Action)
			}
			w.advance(1)
			if w.pet().Action != tt.want {
				t.Errorf("reverted to %s, want %s", w.pet().Action, tt.want)
			}
			if w.director.HasPendingExpiry(w.id) {
				t.Error("rest state should not keep an expiry")
			}
		})
	}
}

// TestGestureSupersedesAmbientExpiry 被取代的环境到期任务不会覆盖手势动作
func TestGestureSupersedesAmbientExpiry(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	w.rng.values = []float64{0.1} // 环境回落会选 walking

	w.director.PlayAmbient(w.id, types.ActionSleeping, 6000*msDuration)
	w.advance(1000)
	w.director.PlayGesture(w.id, ActionStep{Action: types.ActionPet, Scale: 1.1, Hold: 1000 * msDuration})

	w.advance(1000)
	if got := w.pet().Action; got != types.ActionIdle {
		t.Fatalf("gesture should revert to idle, got %s", got)
	}

	w.advance(5000) // 超过 sleeping 原本的到期时间
	if got := w.pet().Action; got != types.ActionIdle {
		t.Errorf("stale ambient expiry overwrote state: %s", got)
	}
}

func TestPlayGestureSequence(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	var changes []types.Action
	w.director.OnActionChanged = func(id ecs.EntityID, from, to types.Action) {
		changes = append(changes, to)
	}

	w.director.PlayGesture(w.id,
		ActionStep{Action: types.ActionEating, Scale: 1, Hold: 2000 * msDuration},
		ActionStep{Action: types.ActionHappy, Scale: 1.1, Hold: 1500 * msDuration},
	)
	if w.pet().Origin != types.OriginGesture {
		t.Error("gesture should own the expiry")
	}

	w.advance(2000)
	if w.pet().Action != types.ActionHappy || w.pet().Scale != 1.1 {
		t.Fatalf("expected happy at scale 1.1, got %s at %v", w.pet().Action, w.pet().Scale)
	}

	w.advance(1500)
	pet := w.pet()
	if pet.Action != types.ActionIdle || pet.Scale != 1 || pet.Origin != types.OriginAmbient {
		t.Errorf("unexpected rest state: %+v", *pet)
	}

	want := []types.Action{types.ActionEating, types.ActionHappy, types.ActionIdle}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %s, want %s", i, changes[i], want[i])
		}
	}
}

func TestCancelAmbientExpiryLeavesGestures(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)

	w.director.PlayGesture(w.id, ActionStep{Action: types.ActionScared, Scale: 1, Hold: 2000 * msDuration})
	if w.director.CancelAmbientExpiry(w.id) {
		t.Error("gesture expiry must not be cancelled")
	}

	w.director.PlayAmbient(w.id, types.ActionWaving, 2000*msDuration)
	if !w.director.CancelAmbientExpiry(w.id) {
		t.Error("ambient expiry should be cancelled")
	}
	w.advance(5000)
	if w.pet().Action != types.ActionWaving {
		t.Errorf("cancelled expiry still reverted the action to %s", w.pet().Action)
	}
}

func TestDirectorIgnoresMissingEntity(t *testing.T) {
	w := newTestPetWorld(t, 800, 600)
	w.em.DestroyEntity(w.id)
	w.em.RemoveMarkedEntities()

	w.director.PlayGesture(w.id, ActionStep{Action: types.ActionDizzy, Scale: 1, Hold: msDuration})
	if w.scheduler.Pending() != 0 {
		t.Error("no task should be armed for a missing entity")
	}
}

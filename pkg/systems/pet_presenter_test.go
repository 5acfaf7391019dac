package systems

import (
	"testing"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/types"
)

func TestPresent(t *testing.T) {
	pet := &components.PetStateComponent{
		X: 40, Y: 60,
		Facing: types.FacingLeft,
		Action: types.ActionDizzy,
		Scale:  1.1,
	}
	sprite := &components.SpriteComponent{Width: 100, Height: 100}
	drag := &components.DragComponent{Mode: types.MotionDragging}

	v := Present(pet, sprite, drag)

	if v.X != 40 || v.Y != 60 || v.Width != 100 || v.Scale != 1.1 {
		t.Errorf("unexpected geometry: %+v", v)
	}
	if !v.FlipX {
		t.Error("left-facing pet should be mirrored")
	}
	if v.Class != AnimSpin || v.Overlay.Badge != "@_@" || !v.Dragged {
		t.Errorf("unexpected look: %+v", v)
	}
	if v.Tooltip != "Whoa, I'm seeing stars!" {
		t.Errorf("tooltip = %q", v.Tooltip)
	}
}

func TestEveryActionHasALook(t *testing.T) {
	for _, a := range types.AllActions {
		look, ok := actionLooks[a]
		if !ok {
			t.Errorf("action %s has no look", a)
			continue
		}
		if look.tooltip == "" {
			t.Errorf("action %s has no tooltip", a)
		}
		if (look.overlay.Glyph == "") != (look.overlay.Badge == "") {
			t.Errorf("action %s: glyph and badge must come together", a)
		}
	}
}

func TestPresentWithoutOptionalComponents(t *testing.T) {
	pet := &components.PetStateComponent{Action: types.ActionWalking, Scale: 1}
	v := Present(pet, nil, nil)
	if v.FlipX || v.Dragged || v.Class != AnimNone || v.Width != 0 {
		t.Errorf("unexpected visual: %+v", v)
	}
	if Describe(types.ActionWalking) != "Taking a stroll" {
		t.Errorf("Describe(walking) = %q", Describe(types.ActionWalking))
	}
}

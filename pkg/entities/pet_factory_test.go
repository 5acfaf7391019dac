package entities

import (
	"testing"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

func TestNewPetEntityDefaults(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultPetConfig()

	id, err := NewPetEntity(em, cfg, 800, 600)
	if err != nil {
		t.Fatalf("NewPetEntity failed: %v", err)
	}

	pet, ok := ecs.GetComponent[*components.PetStateComponent](em, id)
	if !ok {
		t.Fatal("pet entity should have PetStateComponent")
	}
	if pet.X != 100 || pet.Y != 100 {
		t.Errorf("expected spawn (100, 100), got (%.0f, %.0f)", pet.X, pet.Y)
	}
	if pet.Action != types.ActionIdle || pet.Facing != types.FacingRight {
		t.Errorf("expected idle facing right, got %s facing %s", pet.Action, pet.Facing)
	}
	if pet.Speed != 2 || pet.Scale != 1 {
		t.Errorf("expected speed 2 scale 1, got speed %.1f scale %.1f", pet.Speed, pet.Scale)
	}

	drag, ok := ecs.GetComponent[*components.DragComponent](em, id)
	if !ok || drag.IsDragging() {
		t.Error("pet should start in autonomous mode")
	}
	for name, has := range map[string]bool{
		"ClickBurst": ecs.HasComponent[*components.ClickBurstComponent](em, id),
		"Affection":  ecs.HasComponent[*components.AffectionComponent](em, id),
		"Sprite":     ecs.HasComponent[*components.SpriteComponent](em, id),
		"Viewport":   ecs.HasComponent[*components.ViewportComponent](em, id),
	} {
		if !has {
			t.Errorf("pet should have %s component", name)
		}
	}
}

// TestNewPetEntityClampsSpawn 视口过小时出生点被限制在边界内
func TestNewPetEntityClampsSpawn(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewPetEntity(em, config.DefaultPetConfig(), 150, 80)
	if err != nil {
		t.Fatalf("NewPetEntity failed: %v", err)
	}

	pet, _ := ecs.GetComponent[*components.PetStateComponent](em, id)
	if pet.X != 50 {
		t.Errorf("expected X clamped to 50, got %.0f", pet.X)
	}
	// 视口比精灵还矮，Y 边界收缩为 0
	if pet.Y != 0 {
		t.Errorf("expected Y clamped to 0, got %.0f", pet.Y)
	}
}

func TestNewPetEntityRejectsNil(t *testing.T) {
	if _, err := NewPetEntity(nil, config.DefaultPetConfig(), 800, 600); err == nil {
		t.Error("expected error for nil entity manager")
	}
	if _, err := NewPetEntity(ecs.NewEntityManager(), nil, 800, 600); err == nil {
		t.Error("expected error for nil config")
	}
}

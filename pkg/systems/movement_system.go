package systems

import (
	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// MovementSystem 自主移动系统
// 每次移动计时器触发时调用 Tick，只处理自主模式下 idle/walking 的桌宠
type MovementSystem struct {
	em  *ecs.EntityManager
	rng RandomSource
	cfg config.MovementConfig
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, rng RandomSource, cfg config.MovementConfig) *MovementSystem {
	return &MovementSystem{
		em:  em,
		rng: rng,
		cfg: cfg,
	}
}

// Tick 执行一次移动
func (s *MovementSystem) Tick() {
	entities := ecs.GetEntitiesWith3[
		*components.PetStateComponent,
		*components.DragComponent,
		*components.ViewportComponent,
	](s.em)

	for _, id := range entities {
		pet, _ := ecs.GetComponent[*components.PetStateComponent](s.em, id)
		drag, _ := ecs.GetComponent[*components.DragComponent](s.em, id)
		viewport, _ := ecs.GetComponent[*components.ViewportComponent](s.em, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
		if !ok {
			continue
		}

		// 拖拽期间位置归指针所有
		if drag.IsDragging() || !pet.Action.IsRoaming() {
			continue
		}

		s.step(pet, viewport, sprite)
	}
}

// step 沿朝向前进一步，碰到水平边界时停在边界并掉头
func (s *MovementSystem) step(pet *components.PetStateComponent, viewport *components.ViewportComponent, sprite *components.SpriteComponent) {
	maxX := viewport.MaxX(sprite)

	x := pet.X
	if pet.Facing == types.FacingRight {
		x += pet.Speed
		if x > maxX {
			x = maxX
			pet.Facing = types.FacingLeft
		}
	} else {
		x -= pet.Speed
		if x < 0 {
			x = 0
			pet.Facing = types.FacingRight
		}
	}

	y := pet.Y
	if chance(s.rng, s.cfg.NudgeChance) {
		if s.rng.Float64() > 0.5 {
			y -= s.cfg.NudgeDelta
		} else {
			y += s.cfg.NudgeDelta
		}
	}

	pet.X, pet.Y = viewport.Clamp(sprite, x, y)
}

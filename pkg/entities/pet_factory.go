package entities

import (
	"fmt"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// NewPetEntity 创建桌宠实体
// 每次部署都会创建一个全新的实体，不继承上一次部署的任何状态
//
// 参数:
//   - em: 实体管理器
//   - cfg: 桌宠配置（精灵尺寸、出生点、初始速度）
//   - viewportW, viewportH: 当前视口尺寸
//
// 返回:
//   - ecs.EntityID: 创建的桌宠实体ID
//   - error: 参数无效时返回错误
//
// 注意：出生点会被限制在视口内，默认状态为面朝右的 idle，缩放 1
func NewPetEntity(em *ecs.EntityManager, cfg *config.PetConfig, viewportW, viewportH float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("pet config cannot be nil")
	}

	sprite := &components.SpriteComponent{
		Width:  cfg.Sprite.Width,
		Height: cfg.Sprite.Height,
	}
	viewport := &components.ViewportComponent{
		Width:  viewportW,
		Height: viewportH,
	}
	x, y := viewport.Clamp(sprite, cfg.Spawn.X, cfg.Spawn.Y)

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PetStateComponent{
		X:      x,
		Y:      y,
		Facing: types.FacingRight,
		Action: types.ActionIdle,
		Speed:  cfg.Movement.DefaultSpeed,
		Scale:  1,
		Origin: types.OriginAmbient,
	})
	em.AddComponent(entityID, &components.DragComponent{Mode: types.MotionAutonomous})
	em.AddComponent(entityID, &components.ClickBurstComponent{})
	em.AddComponent(entityID, &components.AffectionComponent{})
	em.AddComponent(entityID, sprite)
	em.AddComponent(entityID, viewport)

	return entityID, nil
}

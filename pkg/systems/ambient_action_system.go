package systems

import (
	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// AmbientActionSystem 环境随机动作系统
// 每次环境计时器触发时调用 Tick，为空闲的桌宠抽取新动作并设置到期回落
type AmbientActionSystem struct {
	em       *ecs.EntityManager
	rng      RandomSource
	catalog  *ActionCatalog
	director *ActionDirector
	cfg      config.MovementConfig
}

// NewAmbientActionSystem 创建环境动作系统
func NewAmbientActionSystem(
	em *ecs.EntityManager,
	rng RandomSource,
	catalog *ActionCatalog,
	director *ActionDirector,
	cfg config.MovementConfig,
) *AmbientActionSystem {
	return &AmbientActionSystem{
		em:       em,
		rng:      rng,
		catalog:  catalog,
		director: director,
		cfg:      cfg,
	}
}

// Tick 为每个可被打断的桌宠抽取一个新动作
//
// 以下情况跳过：
//   - 正在拖拽
//   - 当前是交互动作（pet/happy/dizzy）
//
// 喂食、玩耍、惊吓中的 eating/dancing/scared 不是交互动作，会被新动作取代，
// 新动作的到期任务同时取代手势序列剩余的步骤。
func (s *AmbientActionSystem) Tick() {
	entities := ecs.GetEntitiesWith2[*components.PetStateComponent, *components.DragComponent](s.em)

	for _, id := range entities {
		pet, _ := ecs.GetComponent[*components.PetStateComponent](s.em, id)
		drag, _ := ecs.GetComponent[*components.DragComponent](s.em, id)

		if drag.IsDragging() || pet.Action.IsInteractive() {
			continue
		}

		action := s.catalog.RandomAmbient(s.rng)
		if action == types.ActionWalking {
			pet.Speed = s.cfg.WalkSpeedMin + s.rng.Float64()*s.cfg.WalkSpeedSpan
		}
		s.director.PlayAmbient(id, action, s.catalog.Duration(action, s.rng))
	}
}

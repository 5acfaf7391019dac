package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// ActionStep 动作序列中的一步
type ActionStep struct {
	Action types.Action
	Scale  float64       // 该步骤期间的缩放倍数
	Hold   time.Duration // 进入下一步（或回落）前的停留时间
}

// ActionDirector 动作写入与到期任务的唯一入口
//
// 每个桌宠实体在调度器中拥有一个到期槽位 "action/<id>"。
// 任何动作赋值（环境随机或手势）都会先取代该槽位上的旧任务，
// 因此被取代的到期回调永远不会覆盖更新的动作。
type ActionDirector struct {
	em        *ecs.EntityManager
	scheduler *TaskScheduler
	rng       RandomSource

	// OnActionChanged 动作变化回调（可选），用于日志、音效等旁路
	OnActionChanged func(id ecs.EntityID, from, to types.Action)
}

// NewActionDirector 创建动作导演
func NewActionDirector(em *ecs.EntityManager, scheduler *TaskScheduler, rng RandomSource) *ActionDirector {
	return &ActionDirector{
		em:        em,
		scheduler: scheduler,
		rng:       rng,
	}
}

// ExpirySlot 返回实体的到期槽位名
func ExpirySlot(id ecs.EntityID) string {
	return fmt.Sprintf("action/%d", id)
}

// PlayGesture 播放手势动作序列，序列结束后回落到 idle（缩放 1）
func (d *ActionDirector) PlayGesture(id ecs.EntityID, steps ...ActionStep) {
	d.play(id, types.OriginGesture, steps, func() types.Action {
		return types.ActionIdle
	})
}

// PlayAmbient 设置环境动作并在 hold 之后回落到 idle 或 walking（各 50%）
func (d *ActionDirector) PlayAmbient(id ecs.EntityID, action types.Action, hold time.Duration) {
	d.play(id, types.OriginAmbient, []ActionStep{{Action: action, Scale: 1, Hold: hold}}, d.randomRest)
}

// CancelAmbientExpiry 只在到期任务属于环境动作时取消它
// 手势的到期任务不受影响
func (d *ActionDirector) CancelAmbientExpiry(id ecs.EntityID) bool {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](d.em, id)
	if !ok || pet.Origin != types.OriginAmbient {
		return false
	}
	return d.scheduler.CancelSlot(ExpirySlot(id))
}

// HasPendingExpiry 检查实体是否有待执行的到期任务
func (d *ActionDirector) HasPendingExpiry(id ecs.EntityID) bool {
	return d.scheduler.SlotPending(ExpirySlot(id))
}

func (d *ActionDirector) randomRest() types.Action {
	if d.rng.Float64() > 0.5 {
		return types.ActionIdle
	}
	return types.ActionWalking
}

func (d *ActionDirector) play(id ecs.EntityID, origin types.ActionOrigin, steps []ActionStep, rest func() types.Action) {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](d.em, id)
	if !ok || len(steps) == 0 {
		return
	}

	step := steps[0]
	d.apply(id, pet, step.Action, step.Scale, origin)

	remaining := steps[1:]
	d.scheduler.Supersede(ExpirySlot(id), step.Hold, func() {
		if len(remaining) > 0 {
			d.play(id, origin, remaining, rest)
			return
		}
		current, ok := ecs.GetComponent[*components.PetStateComponent](d.em, id)
		if !ok {
			return
		}
		// 回落状态不再有到期任务，所有权归还环境计时器
		d.apply(id, current, rest(), 1, types.OriginAmbient)
	})
}

func (d *ActionDirector) apply(id ecs.EntityID, pet *components.PetStateComponent, action types.Action, scale float64, origin types.ActionOrigin) {
	from := pet.Action
	pet.Action = action
	if scale <= 0 {
		scale = 1
	}
	pet.Scale = scale
	pet.Origin = origin

	if from != action {
		log.Printf("[ActionDirector] pet %d: %s -> %s", id, from, action)
		if d.OnActionChanged != nil {
			d.OnActionChanged(id, from, action)
		}
	}
}

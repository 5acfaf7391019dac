package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// Gesture 用户手势
type Gesture int

const (
	GesturePet Gesture = iota
	GestureDizzy
	GestureFeed
	GesturePlay
	GestureScare
)

// String 返回手势名称
func (g Gesture) String() string {
	switch g {
	case GesturePet:
		return "pet"
	case GestureDizzy:
		return "dizzy"
	case GestureFeed:
		return "feed"
	case GesturePlay:
		return "play"
	case GestureScare:
		return "scare"
	default:
		return "unknown"
	}
}

// InteractionSystem 交互分发器
//
// 负责两件事：
//   - 点击分类：防抖窗口内累计按下次数，窗口结束时 1 次为抚摸，2 次及以上为眩晕
//   - 手势执行：把手势翻译成 ActionDirector 的动作序列
type InteractionSystem struct {
	em        *ecs.EntityManager
	scheduler *TaskScheduler
	director  *ActionDirector
	cfg       config.InteractionConfig

	// OnGesture 手势触发回调（可选）
	OnGesture func(id ecs.EntityID, g Gesture)
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(
	em *ecs.EntityManager,
	scheduler *TaskScheduler,
	director *ActionDirector,
	cfg config.InteractionConfig,
) *InteractionSystem {
	return &InteractionSystem{
		em:        em,
		scheduler: scheduler,
		director:  director,
		cfg:       cfg,
	}
}

func clickSlot(id ecs.EntityID) string {
	return fmt.Sprintf("click/%d", id)
}

// RegisterClick 记录一次指针按下，并重新开始防抖计时
func (s *InteractionSystem) RegisterClick(id ecs.EntityID) {
	burst, ok := ecs.GetComponent[*components.ClickBurstComponent](s.em, id)
	if !ok {
		return
	}

	burst.Pending++
	delay := config.Ms(s.cfg.ClickDebounceMs)
	burst.Deadline = s.scheduler.Now() + delay
	s.scheduler.Supersede(clickSlot(id), delay, func() {
		s.classify(id)
	})
}

// classify 防抖窗口结束：读取触发时的计数决定手势，然后清零
func (s *InteractionSystem) classify(id ecs.EntityID) {
	burst, ok := ecs.GetComponent[*components.ClickBurstComponent](s.em, id)
	if !ok {
		return
	}

	count := burst.Pending
	burst.Pending = 0
	burst.Deadline = 0

	switch {
	case count == 1:
		s.Trigger(id, GesturePet)
	case count >= 2:
		s.Trigger(id, GestureDizzy)
	}
}

// Trigger 执行手势
// 所有手势都会取代实体当前的到期任务（后触发者生效）
func (s *InteractionSystem) Trigger(id ecs.EntityID, g Gesture) {
	if !s.em.Exists(id) {
		return
	}
	log.Printf("[InteractionSystem] pet %d: gesture %s", id, g)
	if s.OnGesture != nil {
		s.OnGesture(id, g)
	}

	c := s.cfg
	switch g {
	case GesturePet:
		s.pet(id)
	case GestureDizzy:
		s.director.PlayGesture(id, ActionStep{Action: types.ActionDizzy, Scale: 1, Hold: config.Ms(c.DizzyMs)})
	case GestureFeed:
		s.director.PlayGesture(id,
			ActionStep{Action: types.ActionEating, Scale: 1, Hold: config.Ms(c.FeedEatMs)},
			ActionStep{Action: types.ActionHappy, Scale: 1, Hold: config.Ms(c.FeedHappyMs)},
		)
	case GesturePlay:
		s.director.PlayGesture(id, ActionStep{Action: types.ActionDancing, Scale: 1, Hold: config.Ms(c.PlayMs)})
	case GestureScare:
		s.director.PlayGesture(id, ActionStep{Action: types.ActionScared, Scale: 1, Hold: config.Ms(c.ScareMs)})
	}
}

// pet 抚摸：累计连击，达到目标次数时经由 happy 回落并清零连击
func (s *InteractionSystem) pet(id ecs.EntityID) {
	affection, ok := ecs.GetComponent[*components.AffectionComponent](s.em, id)
	if !ok {
		return
	}

	c := s.cfg
	affection.PetStreak++
	if affection.PetStreak < c.PetStreakGoal {
		s.director.PlayGesture(id, ActionStep{Action: types.ActionPet, Scale: c.PetScale, Hold: config.Ms(c.PetRevertMs)})
		return
	}

	affection.PetStreak = 0
	s.director.PlayGesture(id,
		ActionStep{Action: types.ActionPet, Scale: c.PetScale, Hold: config.Ms(c.StreakHappyDelayMs)},
		ActionStep{Action: types.ActionHappy, Scale: c.PetScale, Hold: config.Ms(c.StreakRevertMs - c.StreakHappyDelayMs)},
	)
}

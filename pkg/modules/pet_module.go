package modules

import (
	"fmt"
	"log"
	"time"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/entities"
	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gonewx/lildrake/pkg/types"
)

// PetModule 桌宠模块
// 封装一只已部署桌宠的全部状态和系统，宿主只通过它交互：
//   - Update 推进虚拟时钟（驱动移动、环境动作、到期、点击防抖）
//   - PointerDown/Move/Up 传入指针事件（视口坐标）
//   - Command 执行右键菜单命令
//   - Visual 读取呈现结果
//
// 模块在创建时挂载，Unmount 后所有任务被取消、实体被销毁，
// 之后的调用全部是空操作。重新部署必须创建新的模块。
type PetModule struct {
	// ECS 框架
	entityManager *ecs.EntityManager
	scheduler     *systems.TaskScheduler
	cfg           *config.PetConfig

	// 系统（内部管理）
	director          *systems.ActionDirector
	movementSystem    *systems.MovementSystem
	ambientSystem     *systems.AmbientActionSystem
	dragSystem        *systems.DragSystem
	interactionSystem *systems.InteractionSystem

	// 桌宠实体
	petEntity ecs.EntityID

	// 自主计时器（拖拽期间挂起）
	movementTask systems.TaskID
	ambientTask  systems.TaskID

	mounted bool
}

// NewPetModule 创建并挂载桌宠模块
//
// 参数:
//   - cfg: 桌宠配置
//   - rng: 随机源（测试中注入固定序列）
//   - viewportW, viewportH: 当前视口尺寸
//
// 返回:
//   - *PetModule: 已挂载的模块
//   - error: 配置无效时返回错误
func NewPetModule(cfg *config.PetConfig, rng systems.RandomSource, viewportW, viewportH float64) (*PetModule, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pet config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	scheduler := systems.NewTaskScheduler()
	catalog := systems.NewActionCatalog(cfg.Actions)
	director := systems.NewActionDirector(em, scheduler, rng)

	m := &PetModule{
		entityManager:     em,
		scheduler:         scheduler,
		cfg:               cfg,
		director:          director,
		movementSystem:    systems.NewMovementSystem(em, rng, cfg.Movement),
		ambientSystem:     systems.NewAmbientActionSystem(em, rng, catalog, director, cfg.Movement),
		dragSystem:        systems.NewDragSystem(em),
		interactionSystem: systems.NewInteractionSystem(em, scheduler, director, cfg.Interaction),
	}

	id, err := entities.NewPetEntity(em, cfg, viewportW, viewportH)
	if err != nil {
		return nil, fmt.Errorf("failed to create pet entity: %w", err)
	}
	m.petEntity = id
	m.mounted = true
	m.resumeAutonomy()

	log.Printf("[PetModule] Mounted pet %d in %.0fx%.0f viewport", id, viewportW, viewportH)
	return m, nil
}

// Update 推进时钟，执行所有到期任务
func (m *PetModule) Update(dt time.Duration) {
	if !m.mounted {
		return
	}
	m.scheduler.Advance(dt)
}

// PointerDown 主按钮按下
// 命中精灵时进入拖拽并计入一次点击，返回是否命中
func (m *PetModule) PointerDown(px, py float64) bool {
	if !m.mounted || !m.dragSystem.HitTest(m.petEntity, px, py) {
		return false
	}
	if !m.dragSystem.Begin(m.petEntity, px, py) {
		return false
	}
	m.suspendAutonomy()
	m.interactionSystem.RegisterClick(m.petEntity)
	return true
}

// Contains 指针是否落在精灵上（用于右键菜单和悬停提示）
func (m *PetModule) Contains(px, py float64) bool {
	return m.mounted && m.dragSystem.HitTest(m.petEntity, px, py)
}

// PointerMove 指针移动，只在拖拽中生效
func (m *PetModule) PointerMove(px, py float64) {
	if !m.mounted {
		return
	}
	m.dragSystem.Move(m.petEntity, px, py)
}

// PointerUp 主按钮松开，结束拖拽并恢复自主计时器
func (m *PetModule) PointerUp() {
	if !m.mounted {
		return
	}
	if m.dragSystem.End(m.petEntity) {
		m.resumeAutonomy()
	}
}

// Resize 宿主视口尺寸变化
func (m *PetModule) Resize(width, height float64) {
	if !m.mounted {
		return
	}
	m.dragSystem.Resize(m.petEntity, width, height)
}

// Command 执行右键菜单命令，与点击分类互相独立
func (m *PetModule) Command(cmd MenuCommand) {
	if !m.mounted {
		return
	}
	m.interactionSystem.Trigger(m.petEntity, cmd.Gesture())
}

// OnGesture 注册手势回调（如终端宿主的提示音）
func (m *PetModule) OnGesture(fn func(g systems.Gesture)) {
	if fn == nil {
		m.interactionSystem.OnGesture = nil
		return
	}
	m.interactionSystem.OnGesture = func(_ ecs.EntityID, g systems.Gesture) {
		fn(g)
	}
}

// OnActionChanged 注册动作变化回调（如校验工具打印状态迁移）
func (m *PetModule) OnActionChanged(fn func(from, to types.Action)) {
	if fn == nil {
		m.director.OnActionChanged = nil
		return
	}
	m.director.OnActionChanged = func(_ ecs.EntityID, from, to types.Action) {
		fn(from, to)
	}
}

// Visual 返回当前呈现结果
func (m *PetModule) Visual() systems.PetVisual {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](m.entityManager, m.petEntity)
	if !ok {
		return systems.PetVisual{}
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](m.entityManager, m.petEntity)
	drag, _ := ecs.GetComponent[*components.DragComponent](m.entityManager, m.petEntity)
	return systems.Present(pet, sprite, drag)
}

// State 返回状态记录的副本
func (m *PetModule) State() components.PetStateComponent {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](m.entityManager, m.petEntity)
	if !ok {
		return components.PetStateComponent{}
	}
	return *pet
}

// Elapsed 返回挂载以来经过的虚拟时间（供动画使用）
func (m *PetModule) Elapsed() time.Duration {
	return m.scheduler.Now()
}

// IsDragging 是否处于拖拽中
func (m *PetModule) IsDragging() bool {
	return m.mounted && m.dragSystem.IsDragging(m.petEntity)
}

// IsMounted 模块是否仍处于挂载状态
func (m *PetModule) IsMounted() bool {
	return m.mounted
}

// Unmount 卸载：取消所有任务并销毁实体
func (m *PetModule) Unmount() {
	if !m.mounted {
		return
	}
	m.scheduler.CancelAll()
	m.entityManager.DestroyEntity(m.petEntity)
	m.entityManager.RemoveMarkedEntities()
	m.movementTask, m.ambientTask = 0, 0
	m.mounted = false
	log.Printf("[PetModule] Unmounted pet %d", m.petEntity)
}

// suspendAutonomy 挂起移动和环境计时器，并取消属于环境动作的到期任务
func (m *PetModule) suspendAutonomy() {
	m.scheduler.Cancel(m.movementTask)
	m.scheduler.Cancel(m.ambientTask)
	m.movementTask, m.ambientTask = 0, 0
	m.director.CancelAmbientExpiry(m.petEntity)
}

// resumeAutonomy 重新启动移动和环境计时器
func (m *PetModule) resumeAutonomy() {
	m.scheduler.Cancel(m.movementTask)
	m.scheduler.Cancel(m.ambientTask)
	m.movementTask = m.scheduler.Every("movement", config.Ms(m.cfg.Movement.IntervalMs), m.movementSystem.Tick)
	m.ambientTask = m.scheduler.Every("ambient", config.Ms(m.cfg.Ambient.IntervalMs), m.ambientSystem.Tick)
}

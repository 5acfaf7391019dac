package systems

import "time"

// TaskID 标识一个已调度的任务，0 表示无任务
type TaskID uint64

type scheduledTask struct {
	id       TaskID
	name     string
	deadline time.Duration
	period   time.Duration // 0 表示一次性任务
	fn       func()
}

// TaskScheduler 基于虚拟时钟的协作式任务调度器
//
// 时钟只在 Advance 时前进，由宿主每帧传入的 deltaTime 驱动，
// 因此回调永远在同一个 goroutine 中串行执行，无需加锁。
//
// 关键约定：
//   - 到期任务按截止时间执行，截止时间相同则按调度顺序执行
//   - 在同一次 Advance 中被先执行的回调取消的任务不会再执行
//   - 槽位（slot）最多绑定一个任务，Supersede 会先取消旧任务再调度新任务
type TaskScheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []*scheduledTask
	slots  map[string]TaskID
}

// NewTaskScheduler 创建调度器，时钟从 0 开始
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{
		nextID: 1,
		slots:  make(map[string]TaskID),
	}
}

// Now 返回调度器的当前虚拟时间
func (s *TaskScheduler) Now() time.Duration {
	return s.now
}

// After 在 delay 之后执行一次 fn
func (s *TaskScheduler) After(name string, delay time.Duration, fn func()) TaskID {
	return s.schedule(name, delay, 0, fn)
}

// Every 每隔 period 执行一次 fn，首次在 period 之后
func (s *TaskScheduler) Every(name string, period time.Duration, fn func()) TaskID {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.schedule(name, period, period, fn)
}

func (s *TaskScheduler) schedule(name string, delay, period time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, &scheduledTask{
		id:       id,
		name:     name,
		deadline: s.now + delay,
		period:   period,
		fn:       fn,
	})
	return id
}

// Cancel 取消任务，返回任务是否仍处于待执行状态
func (s *TaskScheduler) Cancel(id TaskID) bool {
	if id == 0 {
		return false
	}
	for i, task := range s.tasks {
		if task.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// IsPending 检查任务是否仍在等待执行
func (s *TaskScheduler) IsPending(id TaskID) bool {
	for _, task := range s.tasks {
		if task.id == id {
			return true
		}
	}
	return false
}

// Supersede 取消槽位上的旧任务，并在该槽位调度新的一次性任务
//
// 这是避免"过期回调覆盖新状态"的唯一手段：
// 同一槽位上永远只有最后一次调度的任务可能执行。
func (s *TaskScheduler) Supersede(slot string, delay time.Duration, fn func()) TaskID {
	s.CancelSlot(slot)
	id := s.After(slot, delay, fn)
	s.slots[slot] = id
	return id
}

// CancelSlot 取消槽位上的任务（如果有）
func (s *TaskScheduler) CancelSlot(slot string) bool {
	id, ok := s.slots[slot]
	if !ok {
		return false
	}
	delete(s.slots, slot)
	return s.Cancel(id)
}

// SlotPending 检查槽位上是否有待执行任务
func (s *TaskScheduler) SlotPending(slot string) bool {
	id, ok := s.slots[slot]
	return ok && s.IsPending(id)
}

// CancelAll 取消所有任务并清空槽位（卸载时调用）
func (s *TaskScheduler) CancelAll() {
	s.tasks = s.tasks[:0]
	s.slots = make(map[string]TaskID)
}

// Pending 返回待执行任务数量
func (s *TaskScheduler) Pending() int {
	return len(s.tasks)
}

// Advance 推进虚拟时钟并执行所有到期任务
//
// 回调中新调度的任务如果在本次推进的时间窗口内到期，也会在本次执行。
func (s *TaskScheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		task := s.nextDue(target)
		if task == nil {
			break
		}

		s.now = task.deadline
		if task.period > 0 {
			task.deadline += task.period
		} else {
			s.Cancel(task.id)
			// 槽位任务执行前先解绑，回调可以重新占用该槽位
			if s.slots[task.name] == task.id {
				delete(s.slots, task.name)
			}
		}

		task.fn()
	}

	s.now = target
}

// nextDue 返回截止时间不晚于 target 的最早任务
func (s *TaskScheduler) nextDue(target time.Duration) *scheduledTask {
	var due *scheduledTask
	for _, task := range s.tasks {
		if task.deadline > target {
			continue
		}
		if due == nil || task.deadline < due.deadline ||
			(task.deadline == due.deadline && task.id < due.id) {
			due = task
		}
	}
	return due
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gonewx/lildrake/pkg/types"
)

// stepInterval 虚拟时钟的推进步长（模拟 60 TPS）
const stepInterval = 16 * time.Millisecond

// Session 无界面会话：虚拟时钟驱动桌宠并记录动作迁移
type Session struct {
	pet    *modules.PetModule
	out    io.Writer
	now    time.Duration
	counts map[types.Action]int

	transitions int
}

// NewSession 挂载桌宠，所有迁移写入 out
func NewSession(cfg *config.PetConfig, rng systems.RandomSource, width, height float64, out io.Writer) (*Session, error) {
	pet, err := modules.NewPetModule(cfg, rng, width, height)
	if err != nil {
		return nil, err
	}
	s := &Session{
		pet:    pet,
		out:    out,
		counts: map[types.Action]int{types.ActionIdle: 1},
	}
	pet.OnActionChanged(func(from, to types.Action) {
		s.transitions++
		s.counts[to]++
		st := pet.State()
		fmt.Fprintf(s.out, "[%7dms] %-12s -> %-12s at (%.0f,%.0f) scale %.1f\n",
			s.now.Milliseconds(), from, to, st.X, st.Y, st.Scale)
	})
	pet.OnGesture(func(g systems.Gesture) {
		fmt.Fprintf(s.out, "[%7dms] gesture %s\n", s.now.Milliseconds(), g)
	})
	return s, nil
}

// Run 执行脚本并一直推进到 duration
func (s *Session) Run(steps []ScriptStep, duration time.Duration) {
	for _, step := range steps {
		if step.At > duration {
			break
		}
		s.advanceTo(step.At)
		s.apply(step.Op)
	}
	s.advanceTo(duration)
}

// advanceTo 以固定步长推进，最后一步补齐余数
func (s *Session) advanceTo(target time.Duration) {
	for s.now < target {
		dt := min(stepInterval, target-s.now)
		// 先更新 now，回调里打印的时间才是任务到期的时刻
		s.now += dt
		s.pet.Update(dt)
	}
}

func (s *Session) apply(op string) {
	st := s.pet.State()
	v := s.pet.Visual()
	cx, cy := st.X+v.Width/2, st.Y+v.Height/2

	fmt.Fprintf(s.out, "[%7dms] > %s\n", s.now.Milliseconds(), op)
	switch op {
	case "click":
		s.pet.PointerDown(cx, cy)
		s.pet.PointerUp()
	case "dblclick":
		s.pet.PointerDown(cx, cy)
		s.pet.PointerUp()
		s.pet.PointerDown(cx, cy)
		s.pet.PointerUp()
	case "drag":
		s.pet.PointerDown(cx, cy)
		s.pet.PointerMove(cx+50, cy+30)
		s.pet.PointerUp()
	case "resize":
		s.pet.Resize(400, 300)
	case "pet":
		s.pet.Command(modules.MenuPet)
	case "feed":
		s.pet.Command(modules.MenuFeed)
	case "play":
		s.pet.Command(modules.MenuPlay)
	case "scare":
		s.pet.Command(modules.MenuScare)
	}
}

// Summary 打印统计并卸载桌宠
func (s *Session) Summary() {
	st := s.pet.State()
	fmt.Fprintf(s.out, "\n%d transitions in %s, final action %s at (%.0f,%.0f)\n",
		s.transitions, s.now, st.Action, st.X, st.Y)
	for _, a := range types.AllActions {
		if n := s.counts[a]; n > 0 {
			fmt.Fprintf(s.out, "  %-12s %d\n", a, n)
		}
	}
	s.pet.Unmount()
}

// Pet 返回会话中的桌宠模块
func (s *Session) Pet() *modules.PetModule {
	return s.pet
}

package modules

import (
	"testing"
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gonewx/lildrake/pkg/types"
)

// fixedSource 始终返回同一个值的随机源
// 0.99 不会触发纵向抖动，环境抽签落在 rainbow，回落选 idle
type fixedSource float64

func (f fixedSource) Float64() float64 {
	return float64(f)
}

func newTestPetModule(t *testing.T) *PetModule {
	t.Helper()
	m, err := NewPetModule(config.DefaultPetConfig(), fixedSource(0.99), 800, 600)
	if err != nil {
		t.Fatalf("NewPetModule failed: %v", err)
	}
	return m
}

func TestNewPetModuleDefaults(t *testing.T) {
	m := newTestPetModule(t)

	s := m.State()
	if s.X != 100 || s.Y != 100 || s.Facing != types.FacingRight || s.Action != types.ActionIdle || s.Speed != 2 || s.Scale != 1 {
		t.Errorf("unexpected initial state: %+v", s)
	}
	if !m.IsMounted() || m.IsDragging() {
		t.Error("new module should be mounted and autonomous")
	}
}

func TestNewPetModuleRejectsNil(t *testing.T) {
	if _, err := NewPetModule(nil, fixedSource(0.5), 800, 600); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := NewPetModule(config.DefaultPetConfig(), nil, 800, 600); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestUpdateDrivesMovementAndAmbient(t *testing.T) {
	m := newTestPetModule(t)

	m.Update(50 * time.Millisecond)
	if m.State().X != 102 {
		t.Fatalf("expected one movement tick, x=%v", m.State().X)
	}

	m.Update(4950 * time.Millisecond)
	s := m.State()
	if s.Action != types.ActionRainbow {
		t.Errorf("expected ambient tick to pick rainbow, got %s", s.Action)
	}
	if s.X != 300 {
		t.Errorf("expected 100 movement ticks, x=%v", s.X)
	}
	if m.Elapsed() != 5*time.Second {
		t.Errorf("elapsed = %v", m.Elapsed())
	}
}

// TestDragSuspendsAutonomy 拖拽期间移动和环境计时器都不运行，松开后一个周期内恢复
func TestDragSuspendsAutonomy(t *testing.T) {
	m := newTestPetModule(t)

	if m.PointerDown(20, 20) {
		t.Fatal("pointer outside the sprite should miss")
	}
	if !m.Contains(150, 150) || m.Contains(99, 150) {
		t.Error("Contains should match the sprite box")
	}
	if !m.PointerDown(150, 150) || !m.IsDragging() {
		t.Fatal("pointer on the sprite should start a drag")
	}

	m.Update(10 * time.Second)
	s := m.State()
	if s.X != 100 || s.Y != 100 {
		t.Errorf("autonomous movement during drag: (%v, %v)", s.X, s.Y)
	}
	// 点击分类的抚摸已结束，没有环境动作插入
	if s.Action != types.ActionIdle {
		t.Errorf("ambient tick ran during drag: %s", s.Action)
	}

	m.PointerMove(250, 350)
	if s := m.State(); s.X != 200 || s.Y != 300 {
		t.Errorf("drag should move to (200, 300), got (%v, %v)", s.X, s.Y)
	}

	m.PointerUp()
	if m.IsDragging() {
		t.Fatal("pointer up should end the drag")
	}
	m.Update(50 * time.Millisecond)
	if m.State().X != 202 {
		t.Errorf("movement should resume within one tick, x=%v", m.State().X)
	}
}

func TestDragCancelsAmbientExpiry(t *testing.T) {
	m := newTestPetModule(t)
	m.Update(5 * time.Second) // rainbow, x=300

	if !m.director.HasPendingExpiry(m.petEntity) {
		t.Fatal("ambient action should have an expiry")
	}
	if !m.PointerDown(350, 150) {
		t.Fatal("expected hit")
	}
	if m.director.HasPendingExpiry(m.petEntity) {
		t.Error("ambient expiry should be cancelled on drag begin")
	}
	if m.State().Action != types.ActionRainbow {
		t.Errorf("action changed on drag begin: %s", m.State().Action)
	}
}

func TestGestureExpiryRunsThroughDrag(t *testing.T) {
	m := newTestPetModule(t)
	m.Command(MenuScare)

	m.PointerDown(150, 150)
	m.Update(299 * time.Millisecond)
	if m.State().Action != types.ActionScared {
		t.Fatalf("expected scared, got %s", m.State().Action)
	}

	// 300ms 时点击分类触发抚摸，取代惊吓
	m.Update(1 * time.Millisecond)
	if m.State().Action != types.ActionPet {
		t.Errorf("expected pet after debounce, got %s", m.State().Action)
	}
	m.Update(time.Second)
	if m.State().Action != types.ActionIdle {
		t.Errorf("gesture expiry should fire while dragging, got %s", m.State().Action)
	}
}

func TestCommandTriggersGesture(t *testing.T) {
	m := newTestPetModule(t)
	var seen []systems.Gesture
	m.OnGesture(func(g systems.Gesture) { seen = append(seen, g) })

	m.Command(MenuFeed)
	if m.State().Action != types.ActionEating {
		t.Errorf("expected eating, got %s", m.State().Action)
	}
	v := m.Visual()
	if v.Overlay.Badge != "nom" || v.Tooltip == "" {
		t.Errorf("unexpected visual: %+v", v)
	}

	m.OnGesture(nil)
	m.Command(MenuPlay)
	if len(seen) != 1 || seen[0] != systems.GestureFeed {
		t.Errorf("gesture callback saw %v", seen)
	}
}

func TestOnActionChanged(t *testing.T) {
	m := newTestPetModule(t)
	var transitions []string
	m.OnActionChanged(func(from, to types.Action) {
		transitions = append(transitions, string(from)+">"+string(to))
	})

	m.Command(MenuScare)
	m.Update(2000 * time.Millisecond)

	want := []string{"idle>scared", "scared>idle"}
	if len(transitions) != len(want) {
		t.Fatalf("expected %v, got %v", want, transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d: expected %s, got %s", i, want[i], transitions[i])
		}
	}
}

func TestResizeClampsOnNextTick(t *testing.T) {
	m := newTestPetModule(t)
	m.Resize(150, 120)
	if m.State().X != 100 {
		t.Fatal("resize must not move the pet")
	}
	m.Update(50 * time.Millisecond)
	if s := m.State(); s.X != 50 || s.Y != 20 || s.Facing != types.FacingLeft {
		t.Errorf("expected clamp to (50, 20) facing left, got %+v", s)
	}
}

// TestUnmountCancelsEverything 卸载后所有任务取消，后续调用都是空操作
func TestUnmountCancelsEverything(t *testing.T) {
	m := newTestPetModule(t)
	m.PointerDown(150, 150)
	m.Command(MenuFeed)

	m.Unmount()
	if m.IsMounted() {
		t.Fatal("module should be unmounted")
	}
	if m.scheduler.Pending() != 0 {
		t.Errorf("%d tasks survived unmount", m.scheduler.Pending())
	}
	if m.entityManager.Exists(m.petEntity) || m.entityManager.Count() != 0 {
		t.Errorf("pet entity survived unmount, %d entities left", m.entityManager.Count())
	}

	m.Update(time.Minute)
	m.PointerMove(300, 300)
	m.PointerUp()
	m.Command(MenuPet)
	m.Resize(10, 10)
	if m.PointerDown(150, 150) || m.IsDragging() || m.Contains(150, 150) {
		t.Error("unmounted module should ignore pointer input")
	}
	if m.State().Action != "" || m.Visual().Action != "" {
		t.Error("unmounted module should have no state")
	}
	if m.scheduler.Pending() != 0 {
		t.Error("calls after unmount armed new tasks")
	}

	m.Unmount()
}

package systems

import (
	"testing"
	"time"

	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/entities"
)

const msDuration = time.Millisecond

// sequenceSource 按顺序循环返回固定值的随机源
// 空序列时始终返回 0.99（不触发任何小概率分支）
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0.99
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// testPetWorld 测试用的最小桌宠环境
type testPetWorld struct {
	em          *ecs.EntityManager
	scheduler   *TaskScheduler
	rng         *sequenceSource
	cfg         *config.PetConfig
	catalog     *ActionCatalog
	director    *ActionDirector
	movement    *MovementSystem
	ambient     *AmbientActionSystem
	drag        *DragSystem
	interaction *InteractionSystem
	id          ecs.EntityID
}

func newTestPetWorld(t *testing.T, viewportW, viewportH float64) *testPetWorld {
	t.Helper()

	w := &testPetWorld{
		em:        ecs.NewEntityManager(),
		scheduler: NewTaskScheduler(),
		rng:       &sequenceSource{},
		cfg:       config.DefaultPetConfig(),
	}
	w.catalog = NewActionCatalog(w.cfg.Actions)
	w.director = NewActionDirector(w.em, w.scheduler, w.rng)
	w.movement = NewMovementSystem(w.em, w.rng, w.cfg.Movement)
	w.ambient = NewAmbientActionSystem(w.em, w.rng, w.catalog, w.director, w.cfg.Movement)
	w.drag = NewDragSystem(w.em)
	w.interaction = NewInteractionSystem(w.em, w.scheduler, w.director, w.cfg.Interaction)

	id, err := entities.NewPetEntity(w.em, w.cfg, viewportW, viewportH)
	if err != nil {
		t.Fatalf("NewPetEntity failed: %v", err)
	}
	w.id = id
	return w
}

func (w *testPetWorld) pet() *components.PetStateComponent {
	pet, _ := ecs.GetComponent[*components.PetStateComponent](w.em, w.id)
	return pet
}

func (w *testPetWorld) advance(ms int) {
	w.scheduler.Advance(time.Duration(ms) * msDuration)
}

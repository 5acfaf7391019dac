package modules

import (
	"errors"
	"testing"
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/types"
)

func newTestToggle() *DeployToggle {
	return NewDeployToggle(func() (*PetModule, error) {
		return NewPetModule(config.DefaultPetConfig(), fixedSource(0.99), 800, 600)
	})
}

// TestRedeployYieldsDefaults 召回后重新部署得到全新的默认状态
func TestRedeployYieldsDefaults(t *testing.T) {
	toggle := newTestToggle()
	if toggle.IsDeployed() || toggle.Current() != nil {
		t.Fatal("toggle should start recalled")
	}

	first, err := toggle.Deploy()
	if err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}
	first.Command(MenuScare)
	first.Update(7 * time.Second)
	if first.State().X == 100 {
		t.Fatal("pet should have wandered before recall")
	}

	toggle.Recall()
	if first.IsMounted() || toggle.IsDeployed() {
		t.Fatal("recall should unmount the pet")
	}

	second, err := toggle.Deploy()
	if err != nil {
		t.Fatalf("redeploy failed: %v", err)
	}
	if second == first {
		t.Fatal("redeploy must create a new pet")
	}
	s := second.State()
	if s.X != 100 || s.Y != 100 || s.Action != types.ActionIdle || s.Scale != 1 || s.Facing != types.FacingRight {
		t.Errorf("redeployed pet is not in default state: %+v", s)
	}
}

func TestDeployIsIdempotent(t *testing.T) {
	toggle := newTestToggle()
	a, _ := toggle.Deploy()
	b, _ := toggle.Deploy()
	if a != b {
		t.Error("second Deploy should return the current pet")
	}
	toggle.Recall()
	toggle.Recall()
}

func TestToggle(t *testing.T) {
	toggle := newTestToggle()

	pet, err := toggle.Toggle()
	if err != nil || pet == nil || !toggle.IsDeployed() {
		t.Fatalf("first toggle should deploy: %v", err)
	}
	pet, err = toggle.Toggle()
	if err != nil || pet != nil || toggle.IsDeployed() {
		t.Fatal("second toggle should recall")
	}
}

func TestDeployFactoryError(t *testing.T) {
	wantErr := errors.New("no display")
	toggle := NewDeployToggle(func() (*PetModule, error) { return nil, wantErr })

	if _, err := toggle.Deploy(); !errors.Is(err, wantErr) {
		t.Errorf("expected factory error, got %v", err)
	}
	if toggle.IsDeployed() {
		t.Error("failed deploy should leave the toggle recalled")
	}
}

func TestMenuCommands(t *testing.T) {
	labels := []string{"Pet Drake", "Feed Drake", "Play with Drake", "Scare Drake"}
	for i, cmd := range MenuCommands {
		if cmd.Label() != labels[i] {
			t.Errorf("label %d = %q, want %q", i, cmd.Label(), labels[i])
		}
	}
	if MenuCommand(42).Label() != "" {
		t.Error("unknown command should have no label")
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/types"
)

// fixedSource 始终返回 0.99：不抖动，环境抽签落在 rainbow，回落选 idle
type fixedSource float64

func (f fixedSource) Float64() float64 {
	return float64(f)
}

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(config.DefaultPetConfig(), fixedSource(0.99), 800, 600, &out)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, &out
}

func TestSessionDoubleClickIsDizzy(t *testing.T) {
	s, out := newTestSession(t)
	steps, err := ParseScript("1000:dblclick")
	if err != nil {
		t.Fatal(err)
	}

	s.Run(steps, 1400*time.Millisecond)
	if got := s.Pet().State().Action; got != types.ActionDizzy {
		t.Errorf("expected dizzy, got %s", got)
	}
	if !strings.Contains(out.String(), "gesture dizzy") {
		t.Errorf("expected gesture in output:\n%s", out.String())
	}
}

func TestSessionFeedSequence(t *testing.T) {
	s, out := newTestSession(t)
	steps, _ := ParseScript("100:feed")

	s.Run(steps, 4000*time.Millisecond)
	log := out.String()
	for _, want := range []string{"idle         -> eating", "eating       -> happy", "happy        -> idle"} {
		if !strings.Contains(log, want) {
			t.Errorf("missing transition %q in:\n%s", want, log)
		}
	}
	if !strings.Contains(log, "[   2100ms] eating") {
		t.Errorf("expected eating to end at 2100ms:\n%s", log)
	}
}

func TestSessionAmbientTick(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(nil, 5000*time.Millisecond)

	if got := s.Pet().State().Action; got != types.ActionRainbow {
		t.Errorf("expected rainbow after the first ambient tick, got %s", got)
	}
	if !strings.Contains(out.String(), "[   5000ms] idle         -> rainbow") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSessionDragMovesPet(t *testing.T) {
	s, _ := newTestSession(t)
	steps, _ := ParseScript("0:drag")

	s.Run(steps, 0)
	st := s.Pet().State()
	if st.X != 150 || st.Y != 130 {
		t.Errorf("expected drag to (150,130), got (%.0f,%.0f)", st.X, st.Y)
	}
}

func TestSessionSummaryUnmounts(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(nil, time.Second)
	s.Summary()

	if s.Pet().IsMounted() {
		t.Error("expected summary to unmount the pet")
	}
	if !strings.Contains(out.String(), "0 transitions in 1s, final action idle") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

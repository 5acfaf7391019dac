package main

import (
	"testing"
	"time"
)

func TestParseScript(t *testing.T) {
	steps, err := ParseScript(" 5000:feed, 1000:click ,1000:DblClick")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	want := []ScriptStep{
		{At: 1000 * time.Millisecond, Op: "click"},
		{At: 1000 * time.Millisecond, Op: "dblclick"},
		{At: 5000 * time.Millisecond, Op: "feed"},
	}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d: expected %+v, got %+v", i, want[i], steps[i])
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	steps, err := ParseScript("  ")
	if err != nil || steps != nil {
		t.Errorf("expected no steps, got %v, %v", steps, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"click",
		"abc:click",
		"-5:click",
		"100:jump",
	}
	for _, s := range tests {
		if _, err := ParseScript(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

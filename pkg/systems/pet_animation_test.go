package systems

import (
	"math"
	"testing"
	"time"
)

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFrameAtNoneIsIdentity(t *testing.T) {
	f := FrameAt(AnimNone, 1234*time.Millisecond)
	if f != (AnimationFrame{Scale: 1, Alpha: 1, Hue: -1}) {
		t.Errorf("unexpected frame: %+v", f)
	}
}

func TestFrameAtTransformWobble(t *testing.T) {
	ms := float64(time.Millisecond)
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 1},
		{time.Duration(math.Pi / 2 * 200 * ms), 1.2},
		{time.Duration(3 * math.Pi / 2 * 200 * ms), 0.8},
	}
	for _, tt := range tests {
		f := FrameAt(AnimTransform, tt.elapsed)
		if math.Abs(f.Scale-tt.want) > 1e-6 {
			t.Errorf("scale at %v = %v, want %v", tt.elapsed, f.Scale, tt.want)
		}
	}
}

func TestFrameAtRanges(t *testing.T) {
	classes := []AnimationClass{
		AnimPulse, AnimBounce, AnimJump, AnimSpin, AnimFade, AnimShake,
		AnimTransform, AnimExplode, AnimWave, AnimHide, AnimRainbow,
	}
	for _, class := range classes {
		for ms := 0; ms < 5000; ms += 37 {
			f := FrameAt(class, time.Duration(ms)*time.Millisecond)
			if f.Alpha < 0 || f.Alpha > 1 {
				t.Fatalf("%s at %dms: alpha %v", class, ms, f.Alpha)
			}
			if f.Scale <= 0 {
				t.Fatalf("%s at %dms: scale %v", class, ms, f.Scale)
			}
			if f.OffsetY > 0 && (class == AnimBounce || class == AnimJump) {
				t.Fatalf("%s at %dms: should only move up, offsetY %v", class, ms, f.OffsetY)
			}
			if class == AnimRainbow && (f.Hue < 0 || f.Hue >= 1) {
				t.Fatalf("rainbow at %dms: hue %v", ms, f.Hue)
			}
			if class != AnimRainbow && f.Hue != -1 {
				t.Fatalf("%s at %dms: hue should be unset", class, ms)
			}
		}
	}
}

func TestFrameAtPulseBounds(t *testing.T) {
	if f := FrameAt(AnimPulse, 0); !nearly(f.Alpha, 1) {
		t.Errorf("pulse alpha at 0 = %v", f.Alpha)
	}
	if f := FrameAt(AnimPulse, time.Second); !nearly(f.Alpha, 0.5) {
		t.Errorf("pulse alpha at 1s = %v", f.Alpha)
	}
}

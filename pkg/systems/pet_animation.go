package systems

import (
	"math"
	"time"
)

// AnimationFrame 动画类别在某一时刻的变换参数
// 宿主把它叠加在 PetVisual 的位置和缩放之上
type AnimationFrame struct {
	OffsetX  float64 // 以精灵尺寸为单位的偏移比例
	OffsetY  float64
	Rotation float64 // 弧度
	Scale    float64 // 额外缩放倍数
	Alpha    float64 // 0~1
	Hue      float64 // 0~1，仅 rainbow 使用，其他类别为 -1
}

// FrameAt 纯函数：计算动画类别在经过 elapsed 后的变换
func FrameAt(class AnimationClass, elapsed time.Duration) AnimationFrame {
	t := elapsed.Seconds()
	f := AnimationFrame{Scale: 1, Alpha: 1, Hue: -1}

	switch class {
	case AnimPulse:
		// 2 秒一个周期，透明度在 0.5~1 之间往返
		f.Alpha = 0.75 + 0.25*math.Cos(2*math.Pi*t/2)
	case AnimBounce:
		f.OffsetY = -0.25 * math.Abs(math.Sin(math.Pi*t))
	case AnimJump:
		f.OffsetY = -0.4 * math.Abs(math.Sin(2*math.Pi*t/1.5))
	case AnimSpin:
		f.Rotation = math.Mod(2*math.Pi*t, 2*math.Pi)
	case AnimFade:
		f.Alpha = 0.5 * (0.75 + 0.25*math.Cos(2*math.Pi*t/2))
	case AnimShake:
		f.OffsetX = 0.05 * math.Sin(2*math.Pi*t*8)
	case AnimTransform:
		// 1 + sin(t/200ms) * 0.2
		f.Scale = 1 + 0.2*math.Sin(t*1000/200)
	case AnimExplode:
		phase := math.Mod(t, 1)
		f.Scale = 1 + 0.5*phase
		f.Alpha = 1 - phase
	case AnimWave:
		f.Rotation = 0.25 * math.Sin(2*math.Pi*t*2)
	case AnimHide:
		f.Alpha = 0.7
		f.OffsetX = 0.25
	case AnimRainbow:
		f.Hue = math.Mod(t/2, 1)
	}

	return f
}

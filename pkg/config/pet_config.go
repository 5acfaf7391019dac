package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gonewx/lildrake/pkg/types"
	"gopkg.in/yaml.v3"
)

// PetConfig 桌宠调参配置
//
// 所有时间以毫秒表示，坐标以视口像素（终端宿主下为字符格）表示。
//
// 配置文件位置: data/pet.yaml
type PetConfig struct {
	Sprite      SizeConfig             `yaml:"sprite"`
	Spawn       PointConfig            `yaml:"spawn"`
	Movement    MovementConfig         `yaml:"movement"`
	Ambient     AmbientConfig          `yaml:"ambient"`
	Interaction InteractionConfig      `yaml:"interaction"`
	Actions     []ActionConfig         `yaml:"actions"`
	Profiles    map[string]HostProfile `yaml:"profiles"`
}

// SizeConfig 宽高
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointConfig 坐标点
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MovementConfig 自主移动参数
type MovementConfig struct {
	IntervalMs    int     `yaml:"intervalMs"`    // 移动计时器周期
	DefaultSpeed  float64 `yaml:"defaultSpeed"`  // 初始速度（每次移动的像素数）
	NudgeChance   float64 `yaml:"nudgeChance"`   // 每次移动时垂直微调的概率
	NudgeDelta    float64 `yaml:"nudgeDelta"`    // 垂直微调幅度
	WalkSpeedMin  float64 `yaml:"walkSpeedMin"`  // 进入 walking 时重新采样速度的下限
	WalkSpeedSpan float64 `yaml:"walkSpeedSpan"` // 速度采样区间宽度 [min, min+span)
}

// AmbientConfig 环境随机动作参数
type AmbientConfig struct {
	IntervalMs int `yaml:"intervalMs"`
}

// InteractionConfig 手势时序参数
type InteractionConfig struct {
	ClickDebounceMs    int     `yaml:"clickDebounceMs"`
	PetScale           float64 `yaml:"petScale"`
	PetRevertMs        int     `yaml:"petRevertMs"`
	PetStreakGoal      int     `yaml:"petStreakGoal"`
	StreakHappyDelayMs int     `yaml:"streakHappyDelayMs"`
	StreakRevertMs     int     `yaml:"streakRevertMs"`
	DizzyMs            int     `yaml:"dizzyMs"`
	FeedEatMs          int     `yaml:"feedEatMs"`
	FeedHappyMs        int     `yaml:"feedHappyMs"`
	PlayMs             int     `yaml:"playMs"`
	ScareMs            int     `yaml:"scareMs"`
}

// ActionConfig 动作目录中的一项
type ActionConfig struct {
	Name        types.Action `yaml:"name"`
	Weight      float64      `yaml:"weight"`      // 随机抽取权重，0 表示不参与环境随机
	MinMs       int          `yaml:"minMs"`       // 持续时间下限
	SpanMs      int          `yaml:"spanMs"`      // 持续时间随机区间宽度，0 表示固定时长
	Interactive bool         `yaml:"interactive"` // 仅由手势触发
}

// HostProfile 针对某个宿主的覆盖项（如终端以字符格为单位）
type HostProfile struct {
	Sprite             SizeConfig `yaml:"sprite"`
	MovementIntervalMs int        `yaml:"movementIntervalMs"`
}

// Ms 把毫秒整数转换为 time.Duration
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// LoadPetConfig 从指定路径加载 YAML 格式的桌宠配置
//
// 参数:
//   - path: 配置文件路径（如 "data/pet.yaml"）
//
// 返回:
//   - *PetConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadPetConfig(path string) (*PetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pet config: %w", err)
	}
	return ParsePetConfig(data)
}

// ParsePetConfig 解析 YAML 数据（供嵌入资源使用）
func ParsePetConfig(data []byte) (*PetConfig, error) {
	var cfg PetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pet config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pet config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
func (c *PetConfig) Validate() error {
	if c.Sprite.Width <= 0 || c.Sprite.Height <= 0 {
		return fmt.Errorf("sprite size must be positive, got %.0fx%.0f", c.Sprite.Width, c.Sprite.Height)
	}
	if c.Movement.IntervalMs <= 0 {
		return fmt.Errorf("movement.intervalMs must be positive, got %d", c.Movement.IntervalMs)
	}
	if c.Movement.NudgeChance < 0 || c.Movement.NudgeChance > 1 {
		return fmt.Errorf("movement.nudgeChance must be within [0, 1], got %.2f", c.Movement.NudgeChance)
	}
	if c.Movement.WalkSpeedSpan < 0 {
		return fmt.Errorf("movement.walkSpeedSpan must not be negative, got %.2f", c.Movement.WalkSpeedSpan)
	}
	if c.Ambient.IntervalMs <= 0 {
		return fmt.Errorf("ambient.intervalMs must be positive, got %d", c.Ambient.IntervalMs)
	}
	if c.Interaction.ClickDebounceMs <= 0 {
		return fmt.Errorf("interaction.clickDebounceMs must be positive, got %d", c.Interaction.ClickDebounceMs)
	}
	if c.Interaction.PetStreakGoal <= 0 {
		return fmt.Errorf("interaction.petStreakGoal must be positive, got %d", c.Interaction.PetStreakGoal)
	}
	if c.Interaction.StreakHappyDelayMs >= c.Interaction.StreakRevertMs {
		return fmt.Errorf("interaction.streakHappyDelayMs(%d) must be less than streakRevertMs(%d)",
			c.Interaction.StreakHappyDelayMs, c.Interaction.StreakRevertMs)
	}

	seen := make(map[types.Action]bool, len(c.Actions))
	totalWeight := 0.0
	for _, a := range c.Actions {
		if !a.Name.IsKnown() {
			return fmt.Errorf("unknown action %q", a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate action %q", a.Name)
		}
		seen[a.Name] = true

		if a.Weight < 0 {
			return fmt.Errorf("action %q has negative weight", a.Name)
		}
		if a.Interactive && a.Weight > 0 {
			return fmt.Errorf("interactive action %q must not take part in ambient selection", a.Name)
		}
		if a.MinMs <= 0 || a.SpanMs < 0 {
			return fmt.Errorf("action %q has invalid duration range [%d, +%d)", a.Name, a.MinMs, a.SpanMs)
		}
		totalWeight += a.Weight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("ambient actions must have a positive total weight")
	}
	if !seen[types.ActionIdle] || !seen[types.ActionWalking] {
		return fmt.Errorf("catalogue must contain idle and walking")
	}

	for name, p := range c.Profiles {
		if p.Sprite.Width < 0 || p.Sprite.Height < 0 || p.MovementIntervalMs < 0 {
			return fmt.Errorf("profile %q has negative values", name)
		}
	}

	return nil
}

// ForProfile 返回应用了宿主覆盖项的配置副本
// 未知的 profile 名称返回原配置的副本
func (c *PetConfig) ForProfile(name string) *PetConfig {
	clone := *c
	clone.Actions = append([]ActionConfig(nil), c.Actions...)

	p, ok := c.Profiles[name]
	if !ok {
		return &clone
	}
	if p.Sprite.Width > 0 && p.Sprite.Height > 0 {
		clone.Sprite = p.Sprite
	}
	if p.MovementIntervalMs > 0 {
		clone.Movement.IntervalMs = p.MovementIntervalMs
	}
	return &clone
}

// DefaultPetConfig 返回内置默认配置，与 data/pet.yaml 保持一致
// 当找不到配置文件时用作保底
func DefaultPetConfig() *PetConfig {
	return &PetConfig{
		Sprite: SizeConfig{Width: 100, Height: 100},
		Spawn:  PointConfig{X: 100, Y: 100},
		Movement: MovementConfig{
			IntervalMs:    50,
			DefaultSpeed:  2,
			NudgeChance:   0.05,
			NudgeDelta:    5,
			WalkSpeedMin:  1,
			WalkSpeedSpan: 3,
		},
		Ambient: AmbientConfig{IntervalMs: 5000},
		Interaction: InteractionConfig{
			ClickDebounceMs:    300,
			PetScale:           1.1,
			PetRevertMs:        1000,
			PetStreakGoal:      5,
			StreakHappyDelayMs: 500,
			StreakRevertMs:     2500,
			DizzyMs:            3000,
			FeedEatMs:          2000,
			FeedHappyMs:        1500,
			PlayMs:             3000,
			ScareMs:            2000,
		},
		Actions: []ActionConfig{
			{Name: types.ActionIdle, Weight: 15, MinMs: 2000, SpanMs: 3000},
			{Name: types.ActionWalking, Weight: 25, MinMs: 3000, SpanMs: 5000},
			{Name: types.ActionDancing, Weight: 10, MinMs: 3000, SpanMs: 2000},
			{Name: types.ActionShooting, Weight: 10, MinMs: 1500, SpanMs: 1000},
			{Name: types.ActionJumping, Weight: 10, MinMs: 1000, SpanMs: 500},
			{Name: types.ActionSleeping, Weight: 10, MinMs: 5000, SpanMs: 5000},
			{Name: types.ActionEating, Weight: 5, MinMs: 2000, SpanMs: 1000},
			{Name: types.ActionLaughing, Weight: 5, MinMs: 2000, SpanMs: 1000},
			{Name: types.ActionSpinning, Weight: 5, MinMs: 1500, SpanMs: 500},
			{Name: types.ActionVanishing, Weight: 5, MinMs: 2000, SpanMs: 1000},
			{Name: types.ActionTransforming, Weight: 5, MinMs: 2500, SpanMs: 1000},
			{Name: types.ActionPlanting, Weight: 5, MinMs: 2000, SpanMs: 1000},
			{Name: types.ActionExploding, Weight: 5, MinMs: 1000, SpanMs: 500},
			{Name: types.ActionWaving, Weight: 5, MinMs: 1500, SpanMs: 1000},
			{Name: types.ActionHiding, Weight: 5, MinMs: 3000, SpanMs: 2000},
			{Name: types.ActionCelebrating, Weight: 5, MinMs: 2500, SpanMs: 1500},
			{Name: types.ActionScared, Weight: 5, MinMs: 1500, SpanMs: 1000},
			{Name: types.ActionZombie, Weight: 5, MinMs: 3000, SpanMs: 2000},
			{Name: types.ActionSunglasses, Weight: 5, MinMs: 4000, SpanMs: 3000},
			{Name: types.ActionRainbow, Weight: 5, MinMs: 3000, SpanMs: 2000},
			{Name: types.ActionPet, MinMs: 1000, Interactive: true},
			{Name: types.ActionHappy, MinMs: 2000, Interactive: true},
			{Name: types.ActionDizzy, MinMs: 3000, Interactive: true},
		},
		Profiles: map[string]HostProfile{
			"terminal": {Sprite: SizeConfig{Width: 9, Height: 3}, MovementIntervalMs: 200},
		},
	}
}

// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Action 桌宠当前执行的动作
// 使用字符串作为底层类型，便于直接写入 YAML 配置
type Action string

const (
	ActionIdle         Action = "idle"
	ActionWalking      Action = "walking"
	ActionDancing      Action = "dancing"
	ActionShooting     Action = "shooting"
	ActionJumping      Action = "jumping"
	ActionSleeping     Action = "sleeping"
	ActionEating       Action = "eating"
	ActionLaughing     Action = "laughing"
	ActionSpinning     Action = "spinning"
	ActionVanishing    Action = "vanishing"
	ActionTransforming Action = "transforming"
	ActionPlanting     Action = "planting"
	ActionExploding    Action = "exploding"
	ActionWaving       Action = "waving"
	ActionHiding       Action = "hiding"
	ActionCelebrating  Action = "celebrating"
	ActionScared       Action = "scared"
	ActionZombie       Action = "zombie"
	ActionSunglasses   Action = "sunglasses"
	ActionRainbow      Action = "rainbow"

	// 以下三个只由用户手势触发，环境随机不会覆盖它们
	ActionHappy Action = "happy"
	ActionDizzy Action = "dizzy"
	ActionPet   Action = "pet"
)

// AllActions 按目录顺序列出所有动作
var AllActions = []Action{
	ActionIdle, ActionWalking, ActionDancing, ActionShooting, ActionJumping,
	ActionSleeping, ActionEating, ActionLaughing, ActionSpinning, ActionVanishing,
	ActionTransforming, ActionPlanting, ActionExploding, ActionWaving, ActionHiding,
	ActionCelebrating, ActionScared, ActionZombie, ActionSunglasses, ActionRainbow,
	ActionHappy, ActionDizzy, ActionPet,
}

// IsKnown 检查动作是否属于动作目录
func (a Action) IsKnown() bool {
	for _, known := range AllActions {
		if a == known {
			return true
		}
	}
	return false
}

// IsInteractive 是否为交互动作（pet/happy/dizzy）
func (a Action) IsInteractive() bool {
	return a == ActionPet || a == ActionHappy || a == ActionDizzy
}

// IsRoaming 是否为允许自主移动的动作
func (a Action) IsRoaming() bool {
	return a == ActionIdle || a == ActionWalking
}

func (a Action) String() string {
	return string(a)
}

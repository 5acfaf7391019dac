package systems

import (
	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/types"
)

// AnimationClass 动作对应的视觉动画类别
type AnimationClass string

const (
	AnimNone      AnimationClass = ""
	AnimPulse     AnimationClass = "pulse"
	AnimBounce    AnimationClass = "bounce"
	AnimJump      AnimationClass = "jump"
	AnimSpin      AnimationClass = "spin"
	AnimFade      AnimationClass = "fade"      // vanishing: 闪烁 + 半透明
	AnimShake     AnimationClass = "shake"
	AnimTransform AnimationClass = "transform" // 正弦缩放
	AnimExplode   AnimationClass = "explode"
	AnimWave      AnimationClass = "wave"
	AnimHide      AnimationClass = "hide"      // hiding: 半透明并向一侧偏移
	AnimRainbow   AnimationClass = "rainbow"
)

// Overlay 动作的叠加标记
// Glyph 给能显示 emoji 的宿主使用，Badge 是位图字体可以显示的 ASCII 版本
type Overlay struct {
	Glyph string
	Badge string
}

type actionLook struct {
	class   AnimationClass
	overlay Overlay
	tooltip string
}

var actionLooks = map[types.Action]actionLook{
	types.ActionIdle:         {AnimPulse, Overlay{}, "Just chillin'"},
	types.ActionWalking:      {AnimNone, Overlay{}, "Taking a stroll"},
	types.ActionDancing:      {AnimBounce, Overlay{}, "Busting some zombie moves!"},
	types.ActionShooting:     {AnimNone, Overlay{"•", "pew"}, "Pew pew! Shooting zombies!"},
	types.ActionJumping:      {AnimJump, Overlay{}, "Boing! Boing!"},
	types.ActionSleeping:     {AnimNone, Overlay{"💤", "Zzz"}, "Zzz... Zombie nap time"},
	types.ActionEating:       {AnimNone, Overlay{"🧠", "nom"}, "Nom nom nom... Brainz!"},
	types.ActionLaughing:     {AnimShake, Overlay{"😂", "haha"}, "Hehehe! That's funny!"},
	types.ActionSpinning:     {AnimSpin, Overlay{}, "Wheeeeee!"},
	types.ActionVanishing:    {AnimFade, Overlay{}, "Now you see me, now you don't!"},
	types.ActionTransforming: {AnimTransform, Overlay{}, "Time for a new look!"},
	types.ActionPlanting:     {AnimNone, Overlay{"🌱", "sprout"}, "Planting a little friend!"},
	types.ActionExploding:    {AnimExplode, Overlay{"💥", "BOOM"}, "BOOM! Don't worry, I'm fine!"},
	types.ActionWaving:       {AnimWave, Overlay{"👋", "hi!"}, "Hello there!"},
	types.ActionHiding:       {AnimHide, Overlay{}, "You can't see me!"},
	types.ActionCelebrating:  {AnimBounce, Overlay{"🎉", "yay"}, "Victory dance!"},
	types.ActionScared:       {AnimShake, Overlay{"😱", "eek!"}, "Eek! A plant!"},
	types.ActionZombie:       {AnimNone, Overlay{"🧟", "brains"}, "BRAAAINZ!"},
	types.ActionSunglasses:   {AnimNone, Overlay{"😎", "B-)"}, "Looking cool!"},
	types.ActionRainbow:      {AnimRainbow, Overlay{"🌈", "~~~"}, "Taste the rainbow!"},
	types.ActionPet:          {AnimPulse, Overlay{"✨", "*"}, "Aww, that feels nice!"},
	types.ActionHappy:        {AnimBounce, Overlay{"❤️", "<3"}, "So happy!"},
	types.ActionDizzy:        {AnimSpin, Overlay{"💫", "@_@"}, "Whoa, I'm seeing stars!"},
}

// PetVisual 从桌宠状态推导出的呈现结果，不持有任何状态
type PetVisual struct {
	X, Y    float64
	Width   float64 // 未缩放的精灵尺寸
	Height  float64
	Scale   float64
	FlipX   bool // 面朝左时水平镜像
	Action  types.Action
	Class   AnimationClass
	Overlay Overlay
	Tooltip string
	Dragged bool
}

// Present 纯函数：根据状态计算呈现结果
func Present(pet *components.PetStateComponent, sprite *components.SpriteComponent, drag *components.DragComponent) PetVisual {
	look := actionLooks[pet.Action]
	v := PetVisual{
		X:       pet.X,
		Y:       pet.Y,
		Scale:   pet.Scale,
		FlipX:   pet.Facing == types.FacingLeft,
		Action:  pet.Action,
		Class:   look.class,
		Overlay: look.overlay,
		Tooltip: look.tooltip,
	}
	if sprite != nil {
		v.Width, v.Height = sprite.Width, sprite.Height
	}
	if drag != nil {
		v.Dragged = drag.IsDragging()
	}
	return v
}

// Describe 返回动作的提示文本
func Describe(action types.Action) string {
	return actionLooks[action].tooltip
}

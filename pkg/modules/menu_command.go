package modules

import "github.com/gonewx/lildrake/pkg/systems"

// MenuCommand 右键菜单命令
type MenuCommand int

const (
	MenuPet MenuCommand = iota
	MenuFeed
	MenuPlay
	MenuScare
)

// MenuCommands 菜单显示顺序
var MenuCommands = []MenuCommand{MenuPet, MenuFeed, MenuPlay, MenuScare}

// Label 菜单项文本
func (c MenuCommand) Label() string {
	switch c {
	case MenuPet:
		return "Pet Drake"
	case MenuFeed:
		return "Feed Drake"
	case MenuPlay:
		return "Play with Drake"
	case MenuScare:
		return "Scare Drake"
	default:
		return ""
	}
}

// Gesture 命令对应的手势
func (c MenuCommand) Gesture() systems.Gesture {
	switch c {
	case MenuFeed:
		return systems.GestureFeed
	case MenuPlay:
		return systems.GesturePlay
	case MenuScare:
		return systems.GestureScare
	default:
		return systems.GesturePet
	}
}

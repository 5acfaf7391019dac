package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/systems"
)

// 终端里的小龙，9x3 字符，面朝右
var drakeRight = [3]string{
	"   /\\_o> ",
	"~<(___)  ",
	"   ^ ^   ",
}

// mirrorPairs 水平镜像时需要互换的字符
var mirrorPairs = map[rune]rune{
	'/': '\\', '\\': '/',
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
}

// mirrorLine 水平镜像一行字符画
func mirrorLine(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if m, ok := mirrorPairs[r]; ok {
			r = m
		}
		out[len(runes)-1-i] = r
	}
	return string(out)
}

// drakeFrame 返回小龙的字符画
// 旋转动画（spin）在转过半圈后显示镜像，模拟翻身
func drakeFrame(v systems.PetVisual, f systems.AnimationFrame) [3]string {
	flip := v.FlipX
	if f.Rotation > math.Pi {
		flip = !flip
	}
	if !flip {
		return drakeRight
	}
	var lines [3]string
	for i, line := range drakeRight {
		lines[i] = mirrorLine(line)
	}
	return lines
}

// rainbowColors rainbow 动画在终端里的调色板
var rainbowColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorOrange,
	tcell.ColorYellow,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorPurple,
}

// drakeStyle 根据动画帧计算字符样式
func drakeStyle(v systems.PetVisual, f systems.AnimationFrame) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if f.Hue >= 0 {
		idx := int(f.Hue*float64(len(rainbowColors))) % len(rainbowColors)
		style = style.Foreground(rainbowColors[idx])
	}
	if f.Alpha < 0.6 {
		style = style.Dim(true)
	}
	if v.Scale > 1 || f.Scale > 1.1 {
		style = style.Bold(true)
	}
	if v.Dragged {
		style = style.Reverse(true)
	}
	return style
}

// cellOrigin 计算精灵左上角所在的字符格
// 动画偏移以精灵尺寸为单位，换算后四舍五入
func cellOrigin(v systems.PetVisual, f systems.AnimationFrame) (int, int) {
	x := v.X + f.OffsetX*v.Width
	y := v.Y + f.OffsetY*v.Height
	return int(math.Round(x)), int(math.Round(y))
}

// keyCommands 终端按键到右键菜单命令的映射
var keyCommands = map[rune]modules.MenuCommand{
	'p': modules.MenuPet,
	'f': modules.MenuFeed,
	'g': modules.MenuPlay,
	's': modules.MenuScare,
}

// commandForKey 查找按键对应的命令（不区分大小写）
func commandForKey(r rune) (modules.MenuCommand, bool) {
	cmd, ok := keyCommands[toLower(r)]
	return cmd, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

const helpText = "[p]et [f]eed [g]ame [s]care [r]ecall [q]uit"

// statusLine 底部状态栏：帮助、当前动作提示，宽度不足时截断
func statusLine(v systems.PetVisual, deployed bool, width int) string {
	var b strings.Builder
	if deployed {
		b.WriteString(helpText)
		if v.Tooltip != "" {
			b.WriteString(" | ")
			b.WriteString(v.Tooltip)
		}
	} else {
		b.WriteString("Drake is recalled. [r] deploy  [q]uit")
	}
	return truncate(b.String(), width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

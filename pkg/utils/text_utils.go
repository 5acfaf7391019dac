package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// basicFace 位图字体 7x13，所有宿主文本共用
var basicFace = text.NewGoXFace(basicfont.Face7x13)

// BasicFace 返回内置位图字体
func BasicFace() text.Face {
	return basicFace
}

// WrapWords 将文本按单词换行
// 参数:
//   - s: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时独占一行，不拆分
func WrapWords(s string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 || face == nil || maxWidth <= 0 {
		return []string{s}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if text.Advance(candidate, face) > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// MeasureLines 测量多行文本的外框尺寸
func MeasureLines(lines []string, face text.Face) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent
	for _, line := range lines {
		width = max(width, text.Advance(line, face))
	}
	return width, lineHeight * float64(len(lines))
}

package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 内置精灵配色
var (
	drakeBody  = color.RGBA{R: 96, G: 170, B: 92, A: 255}
	drakeBelly = color.RGBA{R: 214, G: 226, B: 158, A: 255}
	drakeWing  = color.RGBA{R: 62, G: 120, B: 70, A: 255}
	drakeHorn  = color.RGBA{R: 236, G: 214, B: 170, A: 255}
	drakeEye   = color.RGBA{R: 30, G: 24, B: 24, A: 255}
	drakeCheek = color.RGBA{R: 236, G: 140, B: 140, A: 200}
)

// NewDrakeSprite 绘制内置的小龙精灵（面朝右）
// 所有尺寸按精灵宽高比例计算，任意尺寸都可以使用
func NewDrakeSprite(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	w, h := float32(width), float32(height)

	// 翅膀（身体后方）
	vector.DrawFilledCircle(img, w*0.30, h*0.42, w*0.16, drakeWing, true)
	// 尾巴
	vector.StrokeLine(img, w*0.30, h*0.72, w*0.08, h*0.60, w*0.07, drakeBody, true)
	// 身体
	vector.DrawFilledCircle(img, w*0.48, h*0.62, w*0.26, drakeBody, true)
	vector.DrawFilledCircle(img, w*0.52, h*0.68, w*0.15, drakeBelly, true)
	// 头
	vector.DrawFilledCircle(img, w*0.66, h*0.34, w*0.20, drakeBody, true)
	// 角
	vector.StrokeLine(img, w*0.60, h*0.18, w*0.55, h*0.04, w*0.04, drakeHorn, true)
	vector.StrokeLine(img, w*0.72, h*0.17, w*0.76, h*0.03, w*0.04, drakeHorn, true)
	// 眼睛和腮红
	vector.DrawFilledCircle(img, w*0.74, h*0.31, w*0.035, drakeEye, true)
	vector.DrawFilledCircle(img, w*0.79, h*0.41, w*0.04, drakeCheek, true)
	// 脚
	vector.DrawFilledRect(img, w*0.34, h*0.84, w*0.10, h*0.08, drakeWing, true)
	vector.DrawFilledRect(img, w*0.54, h*0.84, w*0.10, h*0.08, drakeWing, true)

	return img
}

// LoadSpriteImage 从 PNG 文件加载自定义精灵
func LoadSpriteImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

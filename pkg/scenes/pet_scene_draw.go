package scenes

import (
	"image/color"
	"math"

	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gonewx/lildrake/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	badgeBackground   = color.RGBA{R: 255, G: 255, B: 240, A: 230}
	badgeText         = color.RGBA{R: 60, G: 40, B: 40, A: 255}
	tooltipBackground = color.RGBA{R: 30, G: 30, B: 36, A: 220}
	tooltipText       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	menuBackground    = color.RGBA{R: 250, G: 250, B: 250, A: 245}
	menuBorder        = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	menuHighlight     = color.RGBA{R: 120, G: 180, B: 240, A: 255}
	menuText          = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	dragShadow        = color.RGBA{R: 0, G: 0, B: 0, A: 60}
)

// Draw 绘制桌宠：精灵、叠加标记、提示和菜单
func (s *PetScene) Draw(screen *ebiten.Image) {
	screen.Clear()

	pet := s.toggle.Current()
	if pet == nil {
		return
	}
	v := pet.Visual()
	frame := systems.FrameAt(v.Class, pet.Elapsed())

	if v.Dragged {
		vector.DrawFilledRect(screen,
			float32(petWindowPadding+s.spriteW*0.15), float32(petWindowPadding+s.spriteH*0.92),
			float32(s.spriteW*0.7), float32(s.spriteH*0.08), dragShadow, true)
	}

	s.drawSprite(screen, v, frame)

	if v.Overlay.Badge != "" {
		s.drawBadge(screen, v.Overlay.Badge)
	}
	if s.hovering && !v.Dragged && !s.menu.IsOpen() && s.settings.GetSettings().ShowTooltip {
		s.drawTooltip(screen, v.Tooltip)
	}
	if s.menu.IsOpen() {
		s.drawMenu(screen)
	}
}

// drawSprite 按呈现结果和动画帧绘制精灵
// 变换顺序：移到中心 → 镜像 → 缩放 → 旋转 → 移回窗口位置
func (s *PetScene) drawSprite(screen *ebiten.Image, v systems.PetVisual, frame systems.AnimationFrame) {
	if s.sprite == nil {
		return
	}
	bounds := s.sprite.Bounds()
	fitX := s.spriteW / float64(bounds.Dx())
	fitY := s.spriteH / float64(bounds.Dy())

	var geo ebiten.GeoM
	geo.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	geo.Scale(fitX, fitY)
	if v.FlipX {
		geo.Scale(-1, 1)
	}
	scale := v.Scale * frame.Scale
	geo.Scale(scale, scale)
	geo.Rotate(frame.Rotation)
	geo.Translate(
		petWindowPadding+s.spriteW/2+frame.OffsetX*s.spriteW,
		petWindowPadding+s.spriteH/2+frame.OffsetY*s.spriteH,
	)

	if frame.Hue >= 0 {
		var cm colorm.ColorM
		cm.RotateHue(frame.Hue * 2 * math.Pi)
		cm.Scale(1, 1, 1, frame.Alpha)
		op := &colorm.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
		colorm.DrawImage(screen, s.sprite, cm, op)
		return
	}

	op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
	op.ColorScale.ScaleAlpha(float32(frame.Alpha))
	screen.DrawImage(s.sprite, op)
}

// drawBadge 在精灵右上角绘制动作标记
func (s *PetScene) drawBadge(screen *ebiten.Image, badge string) {
	face := utils.BasicFace()
	w, h := utils.MeasureLines([]string{badge}, face)
	x := petWindowPadding + s.spriteW - w/2
	y := petWindowPadding - h/2

	vector.DrawFilledRect(screen, float32(x-3), float32(y-1), float32(w+6), float32(h+2), badgeBackground, true)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(badgeText)
	text.Draw(screen, badge, face, op)
}

// drawTooltip 在精灵下方绘制动作描述
func (s *PetScene) drawTooltip(screen *ebiten.Image, tooltip string) {
	if tooltip == "" {
		return
	}
	face := utils.BasicFace()
	lines := utils.WrapWords(tooltip, face, tooltipMaxWidth)
	w, h := utils.MeasureLines(lines, face)
	lineH := h / float64(len(lines))

	// 淡入的同时从上方滑入
	fade := utils.EaseOutCubic(utils.Progress(s.hoverTime, tooltipFadeSeconds))
	x := petWindowPadding + (s.spriteW-w)/2
	y := petWindowPadding + s.spriteH + utils.Lerp(0, 6, fade)

	bg := fadeColor(tooltipBackground, fade)
	vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(w+8), float32(h+4), bg, true)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineH)
		op.ColorScale.ScaleWithColor(tooltipText)
		op.ColorScale.ScaleAlpha(float32(fade))
		text.Draw(screen, line, face, op)
	}
}

// drawMenu 绘制右键菜单
func (s *PetScene) drawMenu(screen *ebiten.Image) {
	face := utils.BasicFace()
	x, y, _, _ := s.menu.ItemRect(0)
	w, h := s.menu.Size()
	y -= menuPadding

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), menuBackground, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, menuBorder, true)

	for i, entry := range s.menu.Entries() {
		ix, iy, iw, ih := s.menu.ItemRect(i)
		if i == s.menu.hover {
			vector.DrawFilledRect(screen, float32(ix), float32(iy), float32(iw), float32(ih), menuHighlight, true)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(ix+6, iy+2)
		op.ColorScale.ScaleWithColor(menuText)
		text.Draw(screen, entry.Label, face, op)
	}
}

// fadeColor 按比例缩放预乘 alpha 颜色
func fadeColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

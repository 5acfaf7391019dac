package components

// ViewportComponent 视口尺寸，由宿主的尺寸变化事件刷新
type ViewportComponent struct {
	Width  float64
	Height float64
}

// SpriteComponent 精灵尺寸（未缩放）
type SpriteComponent struct {
	Width  float64
	Height float64
}

// MaxX 精灵左上角允许的最大 X 坐标
// 视口比精灵还小时边界收缩为 0
func (v *ViewportComponent) MaxX(sprite *SpriteComponent) float64 {
	return max(0, v.Width-sprite.Width)
}

// MaxY 精灵左上角允许的最大 Y 坐标
func (v *ViewportComponent) MaxY(sprite *SpriteComponent) float64 {
	return max(0, v.Height-sprite.Height)
}

// Clamp 把坐标限制在视口范围内
func (v *ViewportComponent) Clamp(sprite *SpriteComponent, x, y float64) (float64, float64) {
	return min(max(x, 0), v.MaxX(sprite)), min(max(y, 0), v.MaxY(sprite))
}

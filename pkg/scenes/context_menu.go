package scenes

import (
	"github.com/gonewx/lildrake/pkg/modules"
)

// 右键菜单布局（窗口内坐标，像素）
const (
	menuItemHeight = 18.0
	menuWidth      = 120.0
	menuPadding    = 4.0
)

// recallLabel 菜单中召回项的文本
const recallLabel = "Recall Drake"

// MenuEntry 菜单项
type MenuEntry struct {
	Label   string
	Command modules.MenuCommand
	Recall  bool // 召回项不对应手势命令
}

// ContextMenu 桌宠右键菜单
// 只负责布局和命中检测，绘制由 PetScene 完成
type ContextMenu struct {
	entries []MenuEntry
	open    bool
	x, y    float64 // 左上角（窗口内坐标）
	hover   int
}

// NewContextMenu 创建菜单：四个手势命令加召回
func NewContextMenu() *ContextMenu {
	entries := make([]MenuEntry, 0, len(modules.MenuCommands)+1)
	for _, cmd := range modules.MenuCommands {
		entries = append(entries, MenuEntry{Label: cmd.Label(), Command: cmd})
	}
	entries = append(entries, MenuEntry{Label: recallLabel, Recall: true})
	return &ContextMenu{entries: entries, hover: -1}
}

// Size 菜单外框尺寸
func (m *ContextMenu) Size() (float64, float64) {
	return menuWidth, float64(len(m.entries))*menuItemHeight + 2*menuPadding
}

// Open 在指定位置打开菜单，位置会被限制在窗口内
func (m *ContextMenu) Open(x, y, windowW, windowH float64) {
	w, h := m.Size()
	m.x = min(max(x, 0), max(windowW-w, 0))
	m.y = min(max(y, 0), max(windowH-h, 0))
	m.open = true
	m.hover = -1
}

// Close 关闭菜单
func (m *ContextMenu) Close() {
	m.open = false
	m.hover = -1
}

// IsOpen 菜单是否打开
func (m *ContextMenu) IsOpen() bool {
	return m.open
}

// Hover 更新悬停项
func (m *ContextMenu) Hover(x, y float64) {
	m.hover = m.indexAt(x, y)
}

// Select 点击菜单：命中某一项时返回该项并关闭菜单，点到菜单外只关闭菜单
func (m *ContextMenu) Select(x, y float64) (MenuEntry, bool) {
	if !m.open {
		return MenuEntry{}, false
	}
	i := m.indexAt(x, y)
	m.Close()
	if i < 0 {
		return MenuEntry{}, false
	}
	return m.entries[i], true
}

// Entries 菜单项列表
func (m *ContextMenu) Entries() []MenuEntry {
	return m.entries
}

// ItemRect 第 i 项的外框（窗口内坐标）
func (m *ContextMenu) ItemRect(i int) (x, y, w, h float64) {
	return m.x, m.y + menuPadding + float64(i)*menuItemHeight, menuWidth, menuItemHeight
}

func (m *ContextMenu) indexAt(x, y float64) int {
	if !m.open {
		return -1
	}
	for i := range m.entries {
		ix, iy, iw, ih := m.ItemRect(i)
		if x >= ix && x < ix+iw && y >= iy && y < iy+ih {
			return i
		}
	}
	return -1
}

package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/input"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/systems"
)

const frameInterval = 33 * time.Millisecond

// termHost 终端宿主
// 视口是终端字符网格（最后一行留给状态栏），坐标以字符格为单位
type termHost struct {
	screen  tcell.Screen
	toggle  *modules.DeployToggle
	pointer *input.PointerTracker
	sound   *SoundManager

	width, height int
}

// newTermHost 创建终端宿主，screen 必须已经初始化
func newTermHost(screen tcell.Screen, cfg *config.PetConfig, rng systems.RandomSource, sound *SoundManager) *termHost {
	h := &termHost{
		screen:  screen,
		pointer: input.NewPointerTracker(),
		sound:   sound,
	}
	h.width, h.height = screen.Size()

	h.toggle = modules.NewDeployToggle(func() (*modules.PetModule, error) {
		w, vh := h.viewport()
		pet, err := modules.NewPetModule(cfg, rng, w, vh)
		if err != nil {
			return nil, err
		}
		if h.sound != nil {
			pet.OnGesture(h.sound.Chirp)
		}
		return pet, nil
	})
	return h
}

// viewport 桌宠可用区域
func (h *termHost) viewport() (float64, float64) {
	return float64(h.width), float64(max(h.height-1, 0))
}

// run 主循环：事件通道 + 固定帧率
func (h *termHost) run() {
	if _, err := h.toggle.Deploy(); err != nil {
		log.Printf("[DrakeTerm] Deploy failed: %v", err)
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if pet := h.toggle.Current(); pet != nil {
				pet.Update(dt)
			}
			h.draw()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *termHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		h.handlePointer(input.PointerSample{
			X:         float64(x),
			Y:         float64(y),
			Primary:   buttons&tcell.Button1 != 0,
			Secondary: buttons&tcell.Button2 != 0,
		})

	case *tcell.EventResize:
		h.screen.Sync()
		h.width, h.height = h.screen.Size()
		if pet := h.toggle.Current(); pet != nil {
			pet.Resize(h.viewport())
		}
	}
	return true
}

func (h *termHost) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	r := ev.Rune()
	switch toLower(r) {
	case 'q':
		return false
	case 'r':
		if _, err := h.toggle.Toggle(); err != nil {
			log.Printf("[DrakeTerm] Deploy failed: %v", err)
		}
		h.pointer.Reset()
		return true
	}

	if cmd, ok := commandForKey(r); ok {
		if pet := h.toggle.Current(); pet != nil {
			pet.Command(cmd)
		}
	}
	return true
}

func (h *termHost) handlePointer(sample input.PointerSample) {
	pet := h.toggle.Current()
	events := h.pointer.Update(sample)
	if pet == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case input.PointerPress:
			pet.PointerDown(e.X, e.Y)
		case input.PointerMove:
			pet.PointerMove(e.X, e.Y)
		case input.PointerRelease:
			pet.PointerUp()
		case input.PointerContext:
			// 终端没有弹出菜单，右键在精灵上时直接抚摸
			if pet.Contains(e.X, e.Y) {
				pet.Command(modules.MenuPet)
			}
		}
	}
}

func (h *termHost) draw() {
	h.screen.Clear()

	var visual systems.PetVisual
	pet := h.toggle.Current()
	if pet != nil {
		visual = pet.Visual()
		h.drawDrake(visual, systems.FrameAt(visual.Class, pet.Elapsed()))
	}

	status := statusLine(visual, pet != nil, h.width)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for x := 0; x < h.width; x++ {
		h.screen.SetContent(x, h.height-1, ' ', nil, statusStyle)
	}
	h.putString(0, h.height-1, status, statusStyle)

	h.screen.Show()
}

func (h *termHost) drawDrake(v systems.PetVisual, f systems.AnimationFrame) {
	ox, oy := cellOrigin(v, f)
	style := drakeStyle(v, f)
	for row, line := range drakeFrame(v, f) {
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			h.putCell(ox+col, oy+row, r, style)
		}
	}

	if v.Overlay.Badge == "" {
		return
	}
	// 标记放在头顶，顶到边时放到脚下
	by := oy - 1
	if by < 0 {
		by = oy + len(drakeRight)
	}
	h.putString(ox, by, v.Overlay.Badge, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (h *termHost) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.putCell(x+i, y, r, style)
	}
}

// putCell 只在视口内写入字符，不覆盖状态栏
func (h *termHost) putCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return
	}
	h.screen.SetContent(x, y, r, nil, style)
}

// shutdown 召回桌宠并关闭音频
func (h *termHost) shutdown() {
	h.toggle.Recall()
	if h.sound != nil {
		h.sound.Close()
	}
}

package main

import (
	"sync"
	"time"

	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager 手势提示音
// 初始化失败时静默，终端宿主照常运行
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager 创建提示音管理器
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize 打开音频设备
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Chirp 播放手势提示音
func (sm *SoundManager) Chirp(g systems.Gesture) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	t := systems.GestureTone(g)
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(t.Duration), sine))
	speaker.Unlock()
}

// Close 停止所有声音并关闭音频设备
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

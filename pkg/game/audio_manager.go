package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 提示音采样率
const AudioSampleRate = 44100

// toneFadeSamples 提示音首尾淡入淡出的采样数，避免爆音
const toneFadeSamples = 220

// AudioManager 音频管理器
// 职责：
//   - 管理桌面宿主的所有提示音（合成的正弦音，无需音频文件）
//   - 与设置联动：SoundEnabled 关闭时不播放，音量取 SoundVolume
//
// audio context 为 nil 时（无音频设备或测试中）所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	tones           map[string][]byte        // 资源ID -> PCM 数据
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - sm: SettingsManager 实例（用于读取开关和音量，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		tones:           make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// RegisterTone 注册一个合成提示音
// 同一个 ID 重复注册会替换旧的数据
func (am *AudioManager) RegisterTone(soundID string, freq float64, duration time.Duration) {
	am.tones[soundID] = SynthesizeTone(freq, duration, AudioSampleRate)
	delete(am.soundPlayers, soundID)
}

// HasSound 检查提示音是否已注册
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.tones[soundID]
	return ok
}

// PlaySound 播放提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// GetSoundVolume 获取当前提示音音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.6
}

func (am *AudioManager) soundEnabled() bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	return true
}

// getSoundPlayer 获取或创建播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	pcm, ok := am.tones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// SynthesizeTone 合成正弦提示音
// 输出 16 位有符号小端立体声 PCM，与 ebiten audio 的格式一致
func SynthesizeTone(freq float64, duration time.Duration, sampleRate int) []byte {
	n := int(duration.Seconds() * float64(sampleRate))
	if n <= 0 || freq <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	fade := min(toneFadeSamples, n/2)
	for i := 0; i < n; i++ {
		amp := 0.5
		if fade > 0 {
			switch {
			case i < fade:
				amp *= float64(i) / float64(fade)
			case i >= n-fade:
				amp *= float64(n-1-i) / float64(fade)
			}
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

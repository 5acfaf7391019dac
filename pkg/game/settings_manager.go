package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PetSettings 宿主偏好设置
// 注意：只保存宿主的显示偏好，桌宠自身的状态从不持久化
type PetSettings struct {
	ShowTooltip   bool    `yaml:"showTooltip"`   // 悬停时显示动作提示
	ShowMonitor   bool    `yaml:"showMonitor"`   // 在启动器显示 CPU/内存占用
	StartDeployed bool    `yaml:"startDeployed"` // 启动后直接部署桌宠
	SpritePath    string  `yaml:"spritePath"`    // 自定义精灵 PNG，为空时使用内置绘制
	SoundEnabled  bool    `yaml:"soundEnabled"`  // 手势提示音
	SoundVolume   float64 `yaml:"soundVolume"`   // 提示音音量 (0.0 ~ 1.0)
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PetSettings {
	return &PetSettings{
		ShowTooltip:   true,
		ShowMonitor:   false,
		StartDeployed: false,
		SpritePath:    "",
		SoundEnabled:  false,
		SoundVolume:   0.6,
	}
}

// SettingsManager 设置管理器
// 负责宿主设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *PetSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "host"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *PetSettings {
	return sm.settings
}

// SetShowTooltip 设置是否显示动作提示
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowTooltip(enabled bool) {
	sm.settings.ShowTooltip = enabled
}

// SetShowMonitor 设置是否显示系统占用
func (sm *SettingsManager) SetShowMonitor(enabled bool) {
	sm.settings.ShowMonitor = enabled
}

// SetStartDeployed 设置启动后是否直接部署
func (sm *SettingsManager) SetStartDeployed(enabled bool) {
	sm.settings.StartDeployed = enabled
}

// SetSpritePath 设置自定义精灵路径，空字符串表示使用内置绘制
func (sm *SettingsManager) SetSpritePath(path string) {
	sm.settings.SpritePath = path
}

// SetSoundEnabled 设置是否播放手势提示音
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume 设置提示音音量，超出范围时截断到 [0, 1]
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = min(max(volume, 0), 1)
}

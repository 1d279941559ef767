package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// VolumeStep 音量键每次调整的幅度
const VolumeStep = 0.1

// GameSettings 全局音频设置
// 与回合无关，跨进程持久化
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// normalize 将音量限制在 0.0 ~ 1.0，并去掉反复加减 VolumeStep 产生的浮点尾数
func (s *GameSettings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
}

// SettingsManager 音频设置管理器
//
// 游戏只通过两个入口修改设置：M 键切换静音、-/= 键调整音量。
// 每次修改都立即写回 gdata；gdataManager 为 nil 时只在内存中生效。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// NewSettingsManager 创建设置管理器并加载已保存的设置
//
// 读取或解析失败只记录警告并使用默认设置，返回的 error 始终为 nil，
// 保留该返回值以便调用方统一处理初始化错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{gdataManager: gdataManager}

	settings, err := sm.load()
	if err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
		settings = DefaultSettings()
	}
	sm.settings = settings

	return sm, nil
}

// load 读取持久化的设置，不存在时返回默认值
func (sm *SettingsManager) load() (*GameSettings, error) {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return DefaultSettings(), nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// 缺失的字段沿用默认值
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	settings.normalize()
	return settings, nil
}

// save 将当前设置写回 gdata，降级模式下不报错
func (sm *SettingsManager) save() error {
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
	return nil
}

// update 修改设置并立即保存
// 保存失败时内存中的修改仍然生效
func (sm *SettingsManager) update(mutate func(s *GameSettings)) error {
	mutate(sm.settings)
	sm.settings.normalize()
	return sm.save()
}

// GetSettings 返回当前设置
// AudioManager 每次播放时读取，因此修改会立即反映到音效音量
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// IsMuted 音乐和音效是否都已关闭
func (sm *SettingsManager) IsMuted() bool {
	return !sm.settings.MusicEnabled && !sm.settings.SoundEnabled
}

// ToggleMute 切换静音并保存
//
// 任一通道开启时关闭全部，否则开启全部
//
// 返回：
//   - bool: 切换后是否处于静音
//   - error: 保存失败时返回错误（内存中的设置已生效）
func (sm *SettingsManager) ToggleMute() (bool, error) {
	enable := sm.IsMuted()
	err := sm.update(func(s *GameSettings) {
		s.MusicEnabled = enable
		s.SoundEnabled = enable
	})
	return !enable, err
}

// AdjustVolume 同时调整音乐与音效音量并保存
//
// 参数：
//   - delta: 调整量（通常为 ±VolumeStep），结果限制在 0.0 ~ 1.0
//
// 返回：
//   - error: 保存失败时返回错误（内存中的设置已生效）
func (sm *SettingsManager) AdjustVolume(delta float64) error {
	return sm.update(func(s *GameSettings) {
		s.MusicVolume += delta
		s.SoundVolume += delta
	})
}

// clampVolume 将音量限制在 0.0 ~ 1.0 并保留两位小数
func clampVolume(volume float64) float64 {
	volume = math.Round(volume*100) / 100
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

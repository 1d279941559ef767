package systems

import (
	"log"

	"github.com/gonewx/zombie-shooter/pkg/game"
)

// AudioSettings 静音与音量设置，修改后立即持久化
type AudioSettings interface {
	ToggleMute() (bool, error)
	AdjustVolume(delta float64) error
}

// MusicController 在设置变化后同步背景音乐
type MusicController interface {
	ApplySettings(musicID string)
}

// AudioSettingsSystem 处理静音与音量快捷键，任何回合阶段都响应
// 音效音量在下一次播放时生效，背景音乐通过 MusicController 立即同步
type AudioSettingsSystem struct {
	input    game.InputSource
	settings AudioSettings
	music    MusicController
}

// NewAudioSettingsSystem 创建音频设置系统，settings 与 music 均可为 nil
func NewAudioSettingsSystem(input game.InputSource, settings AudioSettings, music MusicController) *AudioSettingsSystem {
	return &AudioSettingsSystem{
		input:    input,
		settings: settings,
		music:    music,
	}
}

// Update 检测静音与音量按键
func (s *AudioSettingsSystem) Update(deltaTime float64) {
	if s.settings == nil {
		return
	}

	changed := false
	if s.input.JustPressed(game.ActionMute) {
		muted, err := s.settings.ToggleMute()
		s.logSaveError(err)
		log.Printf("[AudioSettingsSystem] Muted: %v", muted)
		changed = true
	}

	delta := 0.0
	if s.input.JustPressed(game.ActionVolumeUp) {
		delta += game.VolumeStep
	}
	if s.input.JustPressed(game.ActionVolumeDown) {
		delta -= game.VolumeStep
	}
	if delta != 0 {
		s.logSaveError(s.settings.AdjustVolume(delta))
		log.Printf("[AudioSettingsSystem] Volume adjusted by %+.1f", delta)
		changed = true
	}

	if changed && s.music != nil {
		s.music.ApplySettings(game.MusicMain)
	}
}

func (s *AudioSettingsSystem) logSaveError(err error) {
	if err != nil {
		log.Printf("[AudioSettingsSystem] Warning: Failed to save settings: %v", err)
	}
}

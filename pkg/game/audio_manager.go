package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	synth "github.com/gonewx/zombie-shooter/internal/audio"
)

// soundBank 音效合成定义（资源ID -> 音符）
var soundBank = map[string][]synth.Note{
	SoundPistol: {
		synth.Sweep(synth.WaveSquare, 0, 0.07, 1200, 600, 0.35),
	},
	SoundShotgun: {
		synth.Noise(0, 0.18, 0.5),
		synth.Sweep(synth.WaveSquare, 0, 0.1, 300, 120, 0.3),
	},
	SoundMinigun: {
		synth.Sweep(synth.WaveSquare, 0, 0.035, 1500, 900, 0.2),
	},
	SoundHit: {
		synth.Tone(synth.WaveSine, 0, 0.05, 240, 0.4),
	},
	SoundKill: {
		synth.Noise(0, 0.12, 0.35),
		synth.Sweep(synth.WaveSine, 0, 0.2, 400, 80, 0.45),
	},
	SoundPurchase: {
		synth.Tone(synth.WaveSine, 0, 0.08, 660, 0.4),
		synth.Tone(synth.WaveSine, 0.08, 0.12, 990, 0.4),
	},
	SoundDenied: {
		synth.Tone(synth.WaveSquare, 0, 0.15, 110, 0.3),
	},
	SoundGameOver: {
		synth.Tone(synth.WaveTriangle, 0, 0.25, 392, 0.5),
		synth.Tone(synth.WaveTriangle, 0.25, 0.25, 330, 0.5),
		synth.Tone(synth.WaveTriangle, 0.5, 0.6, 262, 0.5),
	},
}

// musicBank 背景音乐合成定义（资源ID -> 音符），循环播放
var musicBank = map[string][]synth.Note{
	MusicMain: mainTheme(),
}

// mainTheme 低音 ostinato 循环：A 小调 4 小节，每拍 0.25 秒
func mainTheme() []synth.Note {
	const beat = 0.25
	bass := []float64{110, 110, 131, 110, 98, 98, 123, 98, 87, 87, 110, 87, 82, 82, 98, 104}
	notes := make([]synth.Note, 0, len(bass)*2)
	for i, f := range bass {
		start := float64(i) * beat
		notes = append(notes, synth.Tone(synth.WaveTriangle, start, beat*0.9, f, 0.25))
		if i%4 == 0 {
			notes = append(notes, synth.Noise(start, 0.04, 0.08))
		}
	}
	return notes
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 通过资源ID播放，音频数据在首次使用时合成并缓存
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPCM        map[string][]byte        // 已合成的音效 PCM 缓存
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文（采样率必须为 synth.SampleRate），为 nil 时所有播放请求静默失败
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPCM:        make(map[string][]byte),
		musicPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 每次播放创建独立的播放器，允许同一音效重叠（机枪连发）
//
// 参数：
//   - soundID: 音效资源ID（如 SoundPistol）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	if am.audioContext == nil {
		return false
	}

	pcm := am.getSoundPCM(soundID)
	if pcm == nil {
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	return true
}

// PlayMusic 播放背景音乐
// 背景音乐使用 MusicVolume 设置控制音量，循环播放
// 同一时间只能播放一首背景音乐
//
// 参数：
//   - musicID: 音乐资源ID（如 MusicMain）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// CurrentMusicID 返回正在播放的音乐ID，无音乐时为空串
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// ApplySettings 将当前设置应用到背景音乐
// 静音切换后调用：音乐被禁用时停止，重新启用时恢复 musicID
func (am *AudioManager) ApplySettings(musicID string) {
	if am.settingsManager == nil {
		return
	}
	settings := am.settingsManager.GetSettings()
	if !settings.MusicEnabled {
		am.StopMusic()
		return
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(settings.MusicVolume)
		return
	}
	am.PlayMusic(musicID)
}

// getSoundPCM 获取或合成音效 PCM
func (am *AudioManager) getSoundPCM(soundID string) []byte {
	if pcm, exists := am.soundPCM[soundID]; exists {
		return pcm
	}

	notes, ok := soundBank[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := synth.Render(notes)
	am.soundPCM[soundID] = pcm
	return pcm
}

// getMusicPlayer 获取或创建循环音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}
	if am.audioContext == nil {
		return nil
	}

	notes, ok := musicBank[musicID]
	if !ok {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return nil
	}

	stream := synth.NewPCMStream(synth.Render(notes))
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := am.audioContext.NewPlayer(loopStream)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", musicID, err)
		return nil
	}

	am.musicPlayers[musicID] = player
	return player
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7 // 默认值
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// PreloadSounds 预合成全部音效
// 在场景初始化时调用，避免首次播放时的卡顿
func (am *AudioManager) PreloadSounds() {
	for soundID := range soundBank {
		am.getSoundPCM(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundBank))
}

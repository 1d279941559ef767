package game

// 音效与音乐资源ID
const (
	SoundPistol   = "SOUND_PISTOL"
	SoundShotgun  = "SOUND_SHOTGUN"
	SoundMinigun  = "SOUND_MINIGUN"
	SoundHit      = "SOUND_HIT"
	SoundKill     = "SOUND_KILL"
	SoundPurchase = "SOUND_PURCHASE"
	SoundDenied   = "SOUND_DENIED"
	SoundGameOver = "SOUND_GAMEOVER"

	MusicMain = "MUSIC_MAIN"
)

// SoundPlayer 音效播放接口
// 播放是即发即弃的，返回值仅表示是否真正开始播放
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

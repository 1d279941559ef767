package systems

import "github.com/gonewx/zombie-shooter/pkg/game"

// playSound 播放音效，sp 为 nil 时忽略
func playSound(sp game.SoundPlayer, soundID string) {
	if sp != nil {
		sp.PlaySound(soundID)
	}
}

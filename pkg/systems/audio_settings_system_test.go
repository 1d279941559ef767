package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/zombie-shooter/pkg/game"
)

type fakeAudioSettings struct {
	muted   bool
	volume  float64
	adjusts int
	err     error
}

func (f *fakeAudioSettings) ToggleMute() (bool, error) {
	f.muted = !f.muted
	return f.muted, f.err
}

func (f *fakeAudioSettings) AdjustVolume(delta float64) error {
	f.volume += delta
	f.adjusts++
	return f.err
}

type fakeMusic struct {
	applied []string
}

func (f *fakeMusic) ApplySettings(musicID string) { f.applied = append(f.applied, musicID) }

func TestAudioSettingsSystemToggleMute(t *testing.T) {
	input := newFakeInput()
	settings := &fakeAudioSettings{}
	music := &fakeMusic{}
	system := NewAudioSettingsSystem(input, settings, music)

	system.Update(1.0 / 60)
	if settings.muted || len(music.applied) != 0 {
		t.Fatal("nothing should change without input")
	}

	input.press(game.ActionMute)
	system.Update(1.0 / 60)
	if !settings.muted {
		t.Error("mute key should mute")
	}
	if len(music.applied) != 1 || music.applied[0] != game.MusicMain {
		t.Errorf("music should be re-applied once, got %v", music.applied)
	}

	input.hold(game.ActionMute)
	system.Update(1.0 / 60)
	if !settings.muted {
		t.Error("holding the key should not toggle again")
	}
}

func TestAudioSettingsSystemVolumeKeys(t *testing.T) {
	tests := []struct {
		name       string
		pressed    []game.Action
		wantVolume float64
		wantCalls  int
	}{
		{"up", []game.Action{game.ActionVolumeUp}, game.VolumeStep, 1},
		{"down", []game.Action{game.ActionVolumeDown}, -game.VolumeStep, 1},
		{"both cancel out", []game.Action{game.ActionVolumeUp, game.ActionVolumeDown}, 0, 0},
		{"unrelated key", []game.Action{game.ActionFire}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newFakeInput()
			settings := &fakeAudioSettings{}
			music := &fakeMusic{}
			system := NewAudioSettingsSystem(input, settings, music)

			for _, a := range tt.pressed {
				input.press(a)
			}
			system.Update(1.0 / 60)

			if settings.volume != tt.wantVolume || settings.adjusts != tt.wantCalls {
				t.Errorf("volume delta %v (%d calls), want %v (%d calls)",
					settings.volume, settings.adjusts, tt.wantVolume, tt.wantCalls)
			}
			if len(music.applied) != tt.wantCalls {
				t.Errorf("music applied %d times, want %d", len(music.applied), tt.wantCalls)
			}
		})
	}
}

// TestAudioSettingsSystemWithSettingsManager 音量键修改真实设置并同步到音乐
func TestAudioSettingsSystemWithSettingsManager(t *testing.T) {
	input := newFakeInput()
	sm, _ := game.NewSettingsManager(nil)
	system := NewAudioSettingsSystem(input, sm, nil)

	input.press(game.ActionVolumeDown)
	system.Update(1.0 / 60)
	input.endFrame()
	input.press(game.ActionVolumeDown)
	system.Update(1.0 / 60)

	if got := sm.GetSettings().MusicVolume; got != 0.5 {
		t.Errorf("MusicVolume: got %v, want 0.5", got)
	}
	if got := sm.GetSettings().SoundVolume; got != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", got)
	}
}

func TestAudioSettingsSystemSaveErrors(t *testing.T) {
	input := newFakeInput()
	settings := &fakeAudioSettings{err: errors.New("disk full")}
	system := NewAudioSettingsSystem(input, settings, nil)

	input.press(game.ActionMute)
	input.press(game.ActionVolumeUp)
	system.Update(1.0 / 60)

	if !settings.muted || settings.adjusts != 1 {
		t.Error("changes should apply even when saving fails")
	}
}

func TestAudioSettingsSystemNilSettings(t *testing.T) {
	input := newFakeInput()
	system := NewAudioSettingsSystem(input, nil, &fakeMusic{})

	input.press(game.ActionMute)
	system.Update(1.0 / 60) // 不应 panic
}

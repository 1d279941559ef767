package utils

import (
	"testing"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// TestDefaultKeyBindingsCoverAllActions 每个逻辑动作至少绑定一个按键
func TestDefaultKeyBindingsCoverAllActions(t *testing.T) {
	bindings := DefaultKeyBindings()
	for a := game.ActionMoveLeft; a <= game.ActionVolumeUp; a++ {
		if len(bindings[a]) == 0 {
			t.Errorf("action %d has no key binding", a)
		}
	}
}

// TestKeyBindingsUnique 同一按键不能绑定到多个动作
func TestKeyBindingsUnique(t *testing.T) {
	seen := make(map[string]game.Action)
	for action, keys := range DefaultKeyBindings() {
		for _, key := range keys {
			name := key.String()
			if other, ok := seen[name]; ok {
				t.Errorf("key %s bound to both %d and %d", name, other, action)
			}
			seen[name] = action
		}
	}
}

func TestNewKeyboardInputDefaults(t *testing.T) {
	k := NewKeyboardInput(nil)
	if len(k.bindings) != len(DefaultKeyBindings()) {
		t.Errorf("nil bindings should fall back to defaults")
	}
}

func TestInRestartButton(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"按钮中心", config.GameWindowWidth / 2, config.RestartButtonY + config.RestartButtonHeight/2, true},
		{"左上角", config.RestartButtonX, config.RestartButtonY, true},
		{"按钮上方", config.GameWindowWidth / 2, config.RestartButtonY - 1, false},
		{"按钮右侧", config.RestartButtonX + config.RestartButtonWidth + 1, config.RestartButtonY + 10, false},
		{"屏幕左上角", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRestartButton(tt.x, tt.y); got != tt.want {
				t.Errorf("InRestartButton(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

package scenes

import (
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

package scenes

import (
	"github.com/gonewx/lildrake/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene            = (*LauncherScene)(nil)
	_ Scene            = (*PetScene)(nil)
	_ game.WindowSizer = (*LauncherScene)(nil)
	_ game.WindowSizer = (*PetScene)(nil)
	_ game.Disposable  = (*PetScene)(nil)
)

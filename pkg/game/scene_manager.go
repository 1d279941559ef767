package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建游戏场景，避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Start or SwitchTo to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Start 使用工厂函数创建场景并切换过去
//
// 返回：
//   - error: 工厂未设置或场景创建失败
func (sm *SceneManager) Start() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	scene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	if scene == nil {
		return fmt.Errorf("scene factory returned nil scene")
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Scene started: %T", scene)
	return nil
}

// SaveOnExit 在窗口关闭时通知当前场景保存状态
// 当前场景未实现 Saveable 时返回 true
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

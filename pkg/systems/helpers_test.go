package systems

import (
	"math/rand"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// fakeInput 测试用输入源
// held 表示按住的动作，pressed 表示本帧刚按下的动作
type fakeInput struct {
	held    map[game.Action]bool
	pressed map[game.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    make(map[game.Action]bool),
		pressed: make(map[game.Action]bool),
	}
}

func (f *fakeInput) IsHeld(a game.Action) bool      { return f.held[a] }
func (f *fakeInput) JustPressed(a game.Action) bool { return f.pressed[a] }

// press 模拟按下：本帧 JustPressed 且 IsHeld
func (f *fakeInput) press(a game.Action) {
	f.pressed[a] = true
	f.held[a] = true
}

// hold 模拟持续按住（非首帧）
func (f *fakeInput) hold(a game.Action) {
	f.pressed[a] = false
	f.held[a] = true
}

// release 松开
func (f *fakeInput) release(a game.Action) {
	f.pressed[a] = false
	f.held[a] = false
}

// endFrame 清除所有 JustPressed 边沿
func (f *fakeInput) endFrame() {
	for a := range f.pressed {
		f.pressed[a] = false
	}
}

// fakeSound 记录播放过的音效
type fakeSound struct {
	played []string
}

func (f *fakeSound) PlaySound(soundID string) bool {
	f.played = append(f.played, soundID)
	return true
}

func (f *fakeSound) count(soundID string) int {
	n := 0
	for _, id := range f.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// fakeRecords 记录提交的成绩
type fakeRecords struct {
	submissions []game.Records
}

func (f *fakeRecords) Submit(score int, survivalTime float64) (bool, error) {
	f.submissions = append(f.submissions, game.Records{BestScore: score, BestSurvivalTime: survivalTime})
	return true, nil
}

func (f *fakeRecords) Records() game.Records {
	if len(f.submissions) == 0 {
		return game.Records{}
	}
	return f.submissions[len(f.submissions)-1]
}

// newTestSession 使用默认配置创建会话
func newTestSession() *game.Session {
	return game.NewSession(config.DefaultGameConfig())
}

// newTestRand 固定种子的随机源
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// countEntitiesWith 统计拥有组件 T 的存活实体数量
func countEntitiesWith[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if em.IsAlive(id) {
			n++
		}
	}
	return n
}

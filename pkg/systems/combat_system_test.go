package systems

import (
	"testing"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

type combatFixture struct {
	em      *ecs.EntityManager
	session *game.Session
	sound   *fakeSound
	system  *CombatSystem
}

func newCombatFixture() *combatFixture {
	em := ecs.NewEntityManager()
	session := newTestSession()
	sound := &fakeSound{}
	return &combatFixture{
		em:      em,
		session: session,
		sound:   sound,
		system:  NewCombatSystem(em, session, sound, newTestRand()),
	}
}

func (f *combatFixture) zombie(x, y, health float64) ecs.EntityID {
	id, _ := entities.NewZombieEntity(f.em, x, y, 50, health, f.session.Config.Combat.HitRadius)
	return id
}

func (f *combatFixture) projectile(x, y float64) ecs.EntityID {
	id, _ := entities.NewProjectile(f.em, x, y, 0, 800)
	return id
}

func (f *combatFixture) floatingScores() map[components.FloatingScoreKind][]string {
	result := make(map[components.FloatingScoreKind][]string)
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingScoreComponent](f.em) {
		fs, _ := ecs.GetComponent[*components.FloatingScoreComponent](f.em, id)
		result[fs.Kind] = append(result[fs.Kind], fs.Text)
	}
	return result
}

func TestCombatSystemHitRadiusIsStrict(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  float64
		wantHit bool
	}{
		{"just inside", 24.999, 0, true},
		{"exactly on radius", 25.0, 0, false},
		{"diagonal inside", 17, 17, true},
		{"diagonal outside", 18, 18, false},
		{"centre", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCombatFixture()
			zombie := f.zombie(0, 0, 50)
			projectile := f.projectile(tt.dx, tt.dy)

			f.system.Update(1.0 / 60)

			if hit := !f.em.IsAlive(projectile); hit != tt.wantHit {
				t.Errorf("hit: got %v, want %v", hit, tt.wantHit)
			}
			z, _ := ecs.GetComponent[*components.ZombieComponent](f.em, zombie)
			wantHealth := 50.0
			if tt.wantHit {
				wantHealth = 25.0
			}
			if z.Health != wantHealth {
				t.Errorf("zombie health: got %v, want %v", z.Health, wantHealth)
			}
		})
	}
}

// TestCombatSystemTwoHitKill 基础僵尸两发击杀，合计 10 + 10 + 90 分
func TestCombatSystemTwoHitKill(t *testing.T) {
	f := newCombatFixture()
	zombie := f.zombie(0, 0, 50)

	f.projectile(0, 0)
	f.system.Update(1.0 / 60)
	f.em.RemoveMarkedEntities()

	if got := f.session.Progression.Score(); got != 10 {
		t.Errorf("score after first hit: got %d, want 10", got)
	}
	if !f.em.IsAlive(zombie) {
		t.Fatal("zombie should survive the first hit")
	}
	if got := f.sound.count(game.SoundHit); got != 1 {
		t.Errorf("hit sound count: got %d, want 1", got)
	}

	f.projectile(0, 0)
	f.system.Update(1.0 / 60)

	if f.em.IsAlive(zombie) {
		t.Error("zombie should die on the second hit")
	}
	z, _ := ecs.GetComponent[*components.ZombieComponent](f.em, zombie)
	if z.Health != 0 {
		t.Errorf("dead zombie health should clamp to 0, got %v", z.Health)
	}
	if got := f.session.Progression.Score(); got != 110 {
		t.Errorf("score after kill: got %d, want 110", got)
	}
	if got := f.sound.count(game.SoundKill); got != 1 {
		t.Errorf("kill sound count: got %d, want 1", got)
	}

	scores := f.floatingScores()
	if len(scores[components.FloatingScoreHit]) != 2 || scores[components.FloatingScoreHit][0] != "+10" {
		t.Errorf("expected two +10 hit floating scores, got %v", scores[components.FloatingScoreHit])
	}
	if len(scores[components.FloatingScoreKill]) != 1 || scores[components.FloatingScoreKill][0] != "+90" {
		t.Errorf("expected one +90 kill floating score, got %v", scores[components.FloatingScoreKill])
	}
}

// TestCombatSystemDeadZombieDoesNotAbsorb 同一帧内被击杀的僵尸不再拦截后续子弹
func TestCombatSystemDeadZombieDoesNotAbsorb(t *testing.T) {
	f := newCombatFixture()
	f.zombie(0, 0, 25)
	first := f.projectile(0, 0)
	second := f.projectile(1, 0)

	f.system.Update(1.0 / 60)

	if f.em.IsAlive(first) {
		t.Error("first projectile should be consumed by the kill")
	}
	if !f.em.IsAlive(second) {
		t.Error("second projectile should pass through the dead zombie")
	}
	if got := f.session.Progression.Score(); got != 100 {
		t.Errorf("score: got %d, want 100", got)
	}
}

// TestCombatSystemOneZombiePerProjectile 一颗子弹只命中一只僵尸
func TestCombatSystemOneZombiePerProjectile(t *testing.T) {
	f := newCombatFixture()
	a := f.zombie(0, 0, 50)
	b := f.zombie(5, 0, 50)
	f.projectile(2, 0)

	f.system.Update(1.0 / 60)

	za, _ := ecs.GetComponent[*components.ZombieComponent](f.em, a)
	zb, _ := ecs.GetComponent[*components.ZombieComponent](f.em, b)
	if za.Health != 25 || zb.Health != 50 {
		t.Errorf("only the lowest-ID zombie should be hit, got healths %v and %v", za.Health, zb.Health)
	}
}

// TestCombatSystemSameTickVolley 同一帧两颗子弹击中同一只僵尸
func TestCombatSystemSameTickVolley(t *testing.T) {
	f := newCombatFixture()
	zombie := f.zombie(0, 0, 50)
	f.projectile(-3, 0)
	f.projectile(3, 0)

	f.system.Update(1.0 / 60)

	if f.em.IsAlive(zombie) {
		t.Error("two hits in one tick should kill a 50 HP zombie")
	}
	if got := f.session.Progression.Score(); got != 110 {
		t.Errorf("score: got %d, want 110", got)
	}
}

func TestCombatSystemAbilityMultipliers(t *testing.T) {
	tests := []struct {
		name       string
		abilities  []int
		wantHealth float64
		wantScore  int
	}{
		{"none", nil, 25, 10},
		{"heavy rounds doubles damage", []int{0}, 0, 100},
		{"bounty doubles score", []int{1}, 25, 20},
		{"both", []int{0, 1}, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCombatFixture()
			for _, i := range tt.abilities {
				f.session.Progression.AddScore(f.session.Config.Shop.Abilities[i].Cost)
				if _, err := f.session.Progression.PurchaseAbility(i); err != nil {
					t.Fatalf("PurchaseAbility(%d) error: %v", i, err)
				}
			}
			if f.session.Progression.Score() != 0 {
				t.Fatalf("purchases should spend all granted score")
			}

			zombie := f.zombie(0, 0, 50)
			f.projectile(0, 0)
			f.system.Update(1.0 / 60)

			z, _ := ecs.GetComponent[*components.ZombieComponent](f.em, zombie)
			if z.Health != tt.wantHealth {
				t.Errorf("health: got %v, want %v", z.Health, tt.wantHealth)
			}
			if got := f.session.Progression.Score(); got != tt.wantScore {
				t.Errorf("score: got %d, want %d", got, tt.wantScore)
			}
		})
	}
}

func TestCombatSystemFrozenInGameOver(t *testing.T) {
	f := newCombatFixture()
	zombie := f.zombie(0, 0, 50)
	projectile := f.projectile(0, 0)

	f.session.Round.TriggerGameOver()
	f.system.Update(1.0 / 60)

	if !f.em.IsAlive(projectile) || !f.em.IsAlive(zombie) {
		t.Error("no hits should resolve during game over")
	}
	if f.session.Progression.Score() != 0 {
		t.Errorf("score should not change, got %d", f.session.Progression.Score())
	}
}

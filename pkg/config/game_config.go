package config

import (
	"fmt"
	"os"

	"github.com/gonewx/zombie-shooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内嵌默认玩法配置的路径
const DefaultGameConfigPath = "data/game_config.yaml"

// DifficultyConfig 难度递增配置
type DifficultyConfig struct {
	InitialSpeed         float64 `yaml:"initialSpeed"`         // 初始僵尸移动速度（像素/秒）
	InitialSpawnInterval float64 `yaml:"initialSpawnInterval"` // 初始生成间隔（秒）
	InitialHealth        float64 `yaml:"initialHealth"`        // 初始僵尸生命值
	RampInterval         float64 `yaml:"rampInterval"`         // 难度递增周期（秒）
	SpeedIncrement       float64 `yaml:"speedIncrement"`       // 每次递增的速度增量
	SpawnDecrement       float64 `yaml:"spawnDecrement"`       // 每次递增的生成间隔减量
	MinSpawnInterval     float64 `yaml:"minSpawnInterval"`     // 生成间隔下限
	HealthIncrement      float64 `yaml:"healthIncrement"`      // 每次递增的生命值增量
}

// CombatConfig 战斗结算配置
type CombatConfig struct {
	HitRadius float64 `yaml:"hitRadius"` // 命中半径：中心距离严格小于此值才算命中
	Damage    float64 `yaml:"damage"`    // 每次命中伤害
	HitScore  int     `yaml:"hitScore"`  // 命中得分
	KillBonus int     `yaml:"killBonus"` // 击杀额外得分
}

// WeaponKind 武器射击模式
type WeaponKind string

const (
	// WeaponPistol 手枪：按下瞬间发射一发，按住不连发
	WeaponPistol WeaponKind = "pistol"
	// WeaponShotgun 霰弹枪：按下瞬间按扇形角度同时发射多发
	WeaponShotgun WeaponKind = "shotgun"
	// WeaponMinigun 机枪：按住期间按固定间隔连发
	WeaponMinigun WeaponKind = "minigun"
)

// WeaponConfig 单把武器的配置
type WeaponConfig struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	Kind            WeaponKind `yaml:"kind"`
	Cost            int        `yaml:"cost"`
	ProjectileSpeed float64    `yaml:"projectileSpeed"`        // 子弹速度（像素/秒）
	FireInterval    float64    `yaml:"fireInterval,omitempty"` // 连发间隔（秒），仅 minigun
	SpreadAngles    []float64  `yaml:"spreadAngles,omitempty"` // 相对竖直方向的扇形角度（弧度），仅 shotgun
	Sound           string     `yaml:"sound"`                  // 射击音效ID
}

// AbilityKind 技能效果类型
type AbilityKind string

const (
	// AbilityHeavyRounds 重型弹药：命中伤害乘以 Multiplier
	AbilityHeavyRounds AbilityKind = "heavy_rounds"
	// AbilityBounty 赏金：命中与击杀得分乘以 Multiplier
	AbilityBounty AbilityKind = "bounty"
)

// AbilityConfig 单个技能的配置
type AbilityConfig struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Kind       AbilityKind `yaml:"kind"`
	Cost       int         `yaml:"cost"`
	Multiplier float64     `yaml:"multiplier"`
}

// ShopConfig 商店配置（武器与技能）
type ShopConfig struct {
	InitialScore int             `yaml:"initialScore"`
	Weapons      []WeaponConfig  `yaml:"weapons"`
	Abilities    []AbilityConfig `yaml:"abilities"`
}

// GameConfig 玩法配置文件结构
type GameConfig struct {
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Combat     CombatConfig     `yaml:"combat"`
	Shop       ShopConfig       `yaml:"shop"`
}

// DefaultGameConfig 返回内置默认配置
// 配置文件缺失的字段会保留这里的值
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Difficulty: DifficultyConfig{
			InitialSpeed:         50.0,
			InitialSpawnInterval: 2.5,
			InitialHealth:        50.0,
			RampInterval:         8.0,
			SpeedIncrement:       10.0,
			SpawnDecrement:       0.2,
			MinSpawnInterval:     0.5,
			HealthIncrement:      20.0,
		},
		Combat: CombatConfig{
			HitRadius: 25.0,
			Damage:    25.0,
			HitScore:  10,
			KillBonus: 90,
		},
		Shop: ShopConfig{
			InitialScore: 0,
			Weapons: []WeaponConfig{
				{ID: "pistol", Name: "Pistol", Kind: WeaponPistol, Cost: 0, ProjectileSpeed: 800, Sound: "SOUND_PISTOL"},
				{ID: "shotgun", Name: "Shotgun", Kind: WeaponShotgun, Cost: 100, ProjectileSpeed: 800,
					SpreadAngles: []float64{-0.2, -0.1, 0, 0.1, 0.2}, Sound: "SOUND_SHOTGUN"},
				{ID: "minigun", Name: "Minigun", Kind: WeaponMinigun, Cost: 200, ProjectileSpeed: 800,
					FireInterval: 0.05, Sound: "SOUND_MINIGUN"},
			},
			Abilities: []AbilityConfig{
				{ID: "heavy_rounds", Name: "Heavy Rounds", Kind: AbilityHeavyRounds, Cost: 50, Multiplier: 2},
				{ID: "bounty", Name: "Bounty", Kind: AbilityBounty, Cost: 100, Multiplier: 2},
			},
		},
	}
}

// LoadGameConfig 从内嵌资源加载玩法配置
//
// 参数：
//   - path: 内嵌资源路径（如 "data/game_config.yaml"）
//
// 返回：
//   - *GameConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameConfigFile 从磁盘文件加载玩法配置（命令行 -config 覆盖）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("game config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据，未出现的字段沿用默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// validateGameConfig 验证玩法配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	d := cfg.Difficulty
	if d.InitialSpawnInterval <= 0 {
		return fmt.Errorf("difficulty: initialSpawnInterval must be positive, got %v", d.InitialSpawnInterval)
	}
	if d.RampInterval <= 0 {
		return fmt.Errorf("difficulty: rampInterval must be positive, got %v", d.RampInterval)
	}
	if d.MinSpawnInterval <= 0 {
		return fmt.Errorf("difficulty: minSpawnInterval must be positive, got %v", d.MinSpawnInterval)
	}
	if d.MinSpawnInterval > d.InitialSpawnInterval {
		return fmt.Errorf("difficulty: minSpawnInterval %v exceeds initialSpawnInterval %v",
			d.MinSpawnInterval, d.InitialSpawnInterval)
	}
	if d.InitialHealth <= 0 {
		return fmt.Errorf("difficulty: initialHealth must be positive, got %v", d.InitialHealth)
	}
	if d.SpeedIncrement < 0 || d.SpawnDecrement < 0 || d.HealthIncrement < 0 {
		return fmt.Errorf("difficulty: increments cannot be negative")
	}

	c := cfg.Combat
	if c.HitRadius <= 0 {
		return fmt.Errorf("combat: hitRadius must be positive, got %v", c.HitRadius)
	}
	if c.Damage <= 0 {
		return fmt.Errorf("combat: damage must be positive, got %v", c.Damage)
	}
	if c.HitScore < 0 || c.KillBonus < 0 {
		return fmt.Errorf("combat: scores cannot be negative")
	}

	s := cfg.Shop
	if s.InitialScore < 0 {
		return fmt.Errorf("shop: initialScore cannot be negative, got %d", s.InitialScore)
	}
	if len(s.Weapons) == 0 {
		return fmt.Errorf("shop: at least one weapon is required")
	}
	if s.Weapons[0].Cost != 0 {
		return fmt.Errorf("shop: first weapon %s is the starting weapon and must be free", s.Weapons[0].ID)
	}
	for _, w := range s.Weapons {
		if w.Cost < 0 {
			return fmt.Errorf("weapon %s: cost cannot be negative, got %d", w.ID, w.Cost)
		}
		if w.ProjectileSpeed <= 0 {
			return fmt.Errorf("weapon %s: projectileSpeed must be positive, got %v", w.ID, w.ProjectileSpeed)
		}
		switch w.Kind {
		case WeaponPistol:
		case WeaponShotgun:
			if len(w.SpreadAngles) == 0 {
				return fmt.Errorf("weapon %s: shotgun requires spreadAngles", w.ID)
			}
		case WeaponMinigun:
			if w.FireInterval <= 0 {
				return fmt.Errorf("weapon %s: minigun requires positive fireInterval, got %v", w.ID, w.FireInterval)
			}
		default:
			return fmt.Errorf("weapon %s: unknown kind %q", w.ID, w.Kind)
		}
	}
	for _, a := range s.Abilities {
		if a.Cost < 0 {
			return fmt.Errorf("ability %s: cost cannot be negative, got %d", a.ID, a.Cost)
		}
		if a.Multiplier <= 0 {
			return fmt.Errorf("ability %s: multiplier must be positive, got %v", a.ID, a.Multiplier)
		}
		switch a.Kind {
		case AbilityHeavyRounds, AbilityBounty:
		default:
			return fmt.Errorf("ability %s: unknown kind %q", a.ID, a.Kind)
		}
	}

	return nil
}

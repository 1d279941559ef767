package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records 跨回合的最佳记录
type Records struct {
	BestScore        int     `yaml:"bestScore"`        // 单局最高分
	BestSurvivalTime float64 `yaml:"bestSurvivalTime"` // 单局最长存活时间（秒）
	RoundsPlayed     int     `yaml:"roundsPlayed"`     // 已结束的回合数
}

// RecordsManager 最佳记录管理器
// 回合结束时提交成绩，刷新记录后保存到 gdata
type RecordsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存记录）
	records      Records
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// NewRecordsManager 创建记录管理器并加载已保存的记录
// 加载失败不是致命错误，从空记录开始
func NewRecordsManager(gdataManager *gdata.Manager) *RecordsManager {
	rm := &RecordsManager{gdataManager: gdataManager}
	if err := rm.Load(); err != nil {
		log.Printf("[RecordsManager] Warning: Failed to load records: %v (starting fresh)", err)
	}
	return rm
}

// Load 从 gdata 加载记录
func (rm *RecordsManager) Load() error {
	rm.records = Records{}
	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = loaded
	return nil
}

// Save 保存记录到 gdata，降级模式下不报错
func (rm *RecordsManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Records 返回当前记录副本
func (rm *RecordsManager) Records() Records {
	return rm.records
}

// Submit 提交一局成绩
//
// 参数：
//   - score: 本局最终分数
//   - survivalTime: 本局存活时间（秒）
//
// 返回：
//   - bool: 是否刷新了任一最佳记录
//   - error: 保存失败时返回错误（内存中的记录已更新）
func (rm *RecordsManager) Submit(score int, survivalTime float64) (bool, error) {
	improved := false
	if score > rm.records.BestScore {
		rm.records.BestScore = score
		improved = true
	}
	if survivalTime > rm.records.BestSurvivalTime {
		rm.records.BestSurvivalTime = survivalTime
		improved = true
	}
	rm.records.RoundsPlayed++

	if improved {
		log.Printf("[RecordsManager] New best: score=%d time=%.1fs", rm.records.BestScore, rm.records.BestSurvivalTime)
	}
	return improved, rm.Save()
}

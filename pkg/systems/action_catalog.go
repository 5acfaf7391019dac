package systems

import (
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/types"
)

// defaultActionDuration 未登记动作的持续时间
const defaultActionDuration = 2000 * time.Millisecond

type catalogEntry struct {
	action types.Action
	weight float64
	min    time.Duration
	span   time.Duration
}

// ActionCatalog 动作目录
// 负责环境动作的加权随机抽取和动作持续时间采样，本身没有可变状态
type ActionCatalog struct {
	ambient     []catalogEntry
	totalWeight float64
	byAction    map[types.Action]catalogEntry
}

// NewActionCatalog 根据配置构建动作目录
func NewActionCatalog(actions []config.ActionConfig) *ActionCatalog {
	c := &ActionCatalog{
		byAction: make(map[types.Action]catalogEntry, len(actions)),
	}
	for _, a := range actions {
		entry := catalogEntry{
			action: a.Name,
			weight: a.Weight,
			min:    config.Ms(a.MinMs),
			span:   config.Ms(a.SpanMs),
		}
		c.byAction[a.Name] = entry
		if !a.Interactive && a.Weight > 0 {
			c.ambient = append(c.ambient, entry)
			c.totalWeight += a.Weight
		}
	}
	return c
}

// RandomAmbient 按权重随机抽取一个环境动作
func (c *ActionCatalog) RandomAmbient(rng RandomSource) types.Action {
	r := rng.Float64() * c.totalWeight
	for _, entry := range c.ambient {
		if r < entry.weight {
			return entry.action
		}
		r -= entry.weight
	}
	return types.ActionIdle
}

// Duration 返回动作的持续时间，在 [min, min+span) 中均匀采样
// 固定时长的动作（span 为 0）不消耗随机数
func (c *ActionCatalog) Duration(action types.Action, rng RandomSource) time.Duration {
	entry, ok := c.byAction[action]
	if !ok {
		return defaultActionDuration
	}
	if entry.span <= 0 {
		return entry.min
	}
	return entry.min + time.Duration(rng.Float64()*float64(entry.span))
}

// Contains 检查动作是否在目录中
func (c *ActionCatalog) Contains(action types.Action) bool {
	_, ok := c.byAction[action]
	return ok
}

// AmbientActions 返回参与随机抽取的动作列表
func (c *ActionCatalog) AmbientActions() []types.Action {
	result := make([]types.Action, 0, len(c.ambient))
	for _, entry := range c.ambient {
		result = append(result, entry.action)
	}
	return result
}

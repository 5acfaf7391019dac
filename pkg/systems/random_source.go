package systems

import (
	"math/rand"
	"time"
)

// RandomSource 随机数来源，返回 [0, 1) 区间的浮点数
// *rand.Rand 满足此接口；测试可以注入固定序列
type RandomSource interface {
	Float64() float64
}

// NewRandomSource 创建基于种子的随机源，seed 为 0 时使用当前时间
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// chance 以概率 p 返回 true
func chance(rng RandomSource, p float64) bool {
	return rng.Float64() < p
}

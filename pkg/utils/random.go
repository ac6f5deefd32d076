// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RandIRange 返回 [min, max] 闭区间内的随机整数
// max < min 属于调用方错误，直接 panic
func RandIRange(r *rand.Rand, min, max int) int {
	if max == min {
		return max
	}
	if max < min {
		panic(fmt.Sprintf("RandIRange: max(%d) < min(%d)", max, min))
	}
	return min + r.Intn(max-min+1)
}

// RandFRange 返回 [min, max] 内、保留 precision 位小数的随机浮点数
//
// 参数：
//   - precision: 小数位数，必须大于 0
func RandFRange(r *rand.Rand, min, max float64, precision int) float64 {
	if precision <= 0 {
		panic(fmt.Sprintf("RandFRange: precision must be > 0, got %d", precision))
	}
	scale := math.Pow(10, float64(precision))

	if max == min {
		return math.Floor(max*scale) / scale
	}
	if max < min {
		panic(fmt.Sprintf("RandFRange: max(%g) < min(%g)", max, min))
	}

	lo := int(math.Floor(min * scale))
	hi := int(math.Floor(max * scale))
	return float64(RandIRange(r, lo, hi)) / scale
}

// NewRand 创建随机数生成器；seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

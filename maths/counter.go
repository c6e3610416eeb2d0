package maths

import (
	"math"

	"inverter/types"
)

// Mod1 向下取整取模,负数同样落在 [0,1)
func Mod1(x float64) float64 {
	r := x - math.Floor(x)
	if r >= 1 {
		// 极小负数减法舍入到 1
		return 0
	}
	return r
}

// Phase 计数器原始相位
// t 为采样时间, offset 为周期比例偏移.
func Phase(t, period, offset float64) float64 {
	return Mod1(t/period - offset)
}

// Shape 按波形类型整形原始相位,结果在 [0,1]
func Shape(shape types.CounterShape, raw float64) float64 {
	if shape == types.Triangle {
		if raw < 0.5 {
			return 2 * raw
		}
		return 2 * (1 - raw)
	}
	return raw
}

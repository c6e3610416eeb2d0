package maths

import (
	"fmt"

	"inverter/types"
)

// Generate 计算两路计数器、桥臂电压与逆变器差分电压
// 参数校验失败时不产生任何输出.
func Generate(grid []float64, params types.Params) (*types.Result, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: 采样时间为空", types.ErrInvalidParameter)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	res := types.NewResult(params, grid)
	vdc := params.DCAmplitude
	for i, t := range grid {
		c1 := Shape(params.Shape, Phase(t, params.Period, 0))
		c2 := Shape(params.Shape, Phase(t, params.Period, params.Counter2Offset))
		if params.InvertCounter2 {
			c2 = 1 - c2
		}
		res.Counter1[i], res.Counter2[i] = c1, c2
		// 桥臂比较
		if res.Leg1High(c1) {
			res.Volt1[i] = vdc
		}
		if res.Leg2High(c2) {
			res.Volt2[i] = vdc
		}
		res.VoltInv[i] = res.Volt1[i] - res.Volt2[i]
	}
	return res, nil
}

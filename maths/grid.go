package maths

import (
	"fmt"

	"inverter/types"

	"gonum.org/v1/gonum/floats"
)

// Linspace 生成 [start,end] 上等间距的 n 个采样时间
func Linspace(start, end float64, n int) ([]float64, error) {
	switch {
	case n <= 0:
		return nil, fmt.Errorf("%w: 采样点数必须大于0, 实际 %d", types.ErrInvalidParameter, n)
	case end < start:
		return nil, fmt.Errorf("%w: 时间范围倒置 [%v,%v]", types.ErrInvalidParameter, start, end)
	case n == 1:
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, end), nil
}

// DefaultGrid 覆盖 [-T,2T] 的采样时间
func DefaultGrid(period float64, n int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: 周期必须大于0, 实际 %v", types.ErrInvalidParameter, period)
	}
	return Linspace(-period, 2*period, n)
}

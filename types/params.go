package types

import (
	"fmt"
	"math"
)

// Params 调制参数
// 每次修改都生成新的参数值,不做增量更新.
type Params struct {
	Period         float64      // 参考周期 T
	DCAmplitude    float64      // 母线电压 Vdc
	DutyCycle      float64      // 占空比 [0,1]
	Shape          CounterShape // 计数器波形
	InvertCounter2 bool         // 计数器2反向
	Counter2Offset float64      // 计数器2时间偏移(周期比例) [0,1]
	Comparator     Comparator   // 桥臂2比较方式
}

// DefaultParams 默认参数
func DefaultParams() Params {
	return Params{
		Period:         DefaultPeriod,
		DCAmplitude:    DefaultDCAmplitude,
		DutyCycle:      DefaultDutyCycle,
		Shape:          Sawtooth,
		InvertCounter2: true,
		Counter2Offset: 0,
		Comparator:     ComparatorComplement,
	}
}

// Validate 校验参数
func (p Params) Validate() error {
	switch {
	case !finite(p.Period) || p.Period <= 0:
		return fmt.Errorf("%w: 周期必须大于0, 实际 %v", ErrInvalidParameter, p.Period)
	case !finite(p.DCAmplitude) || p.DCAmplitude <= 0:
		return fmt.Errorf("%w: 母线电压必须大于0, 实际 %v", ErrInvalidParameter, p.DCAmplitude)
	case !inUnit(p.DutyCycle):
		return fmt.Errorf("%w: 占空比超出[0,1], 实际 %v", ErrInvalidParameter, p.DutyCycle)
	case !inUnit(p.Counter2Offset):
		return fmt.Errorf("%w: 计数器2偏移超出[0,1], 实际 %v", ErrInvalidParameter, p.Counter2Offset)
	case !p.Shape.Valid():
		return fmt.Errorf("%w: 未知计数器波形 %d", ErrInvalidParameter, int(p.Shape))
	case !p.Comparator.Valid():
		return fmt.Errorf("%w: 未知比较方式 %d", ErrInvalidParameter, int(p.Comparator))
	}
	return nil
}

// Threshold2 桥臂2的比较阈值
func (p Params) Threshold2() float64 {
	if p.Comparator == ComparatorDirect {
		return p.DutyCycle
	}
	return 1 - p.DutyCycle
}

// AverageVoltage 逆变器平均电压理论值
func (p Params) AverageVoltage() float64 {
	return p.DCAmplitude * (2*p.DutyCycle - 1)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func inUnit(v float64) bool { return finite(v) && v >= 0 && v <= 1 }

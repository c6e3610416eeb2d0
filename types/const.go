package types

import "errors"

// ErrInvalidParameter 调制参数非法
var ErrInvalidParameter = errors.New("调制参数非法")

// 默认参数常量定义
var (
	DefaultPeriod      = 1.0  // 默认参考周期
	DefaultDCAmplitude = 1.0  // 默认母线电压
	DefaultDutyCycle   = 0.1  // 默认占空比
	DefaultSamples     = 1000 // 默认采样点数
	Tolerance          = 1e-9 // 浮点比较容差
)

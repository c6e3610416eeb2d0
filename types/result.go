package types

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TableHeader 导出表格列名
var TableHeader = []string{"time", "counter1", "counter2", "volt1", "volt2", "volt_inv"}

// Result 波形计算结果
type Result struct {
	Params             Params    // 计算使用的参数
	Time               []float64 // 时间列
	Counter1           []float64 // 计数器1
	Counter2           []float64 // 计数器2
	Volt1              []float64 // 桥臂1电压
	Volt2              []float64 // 桥臂2电压
	VoltInv            []float64 // 逆变器差分电压
	AvgInverterVoltage float64   // 平均电压理论值
}

// NewResult 按采样点数分配结果
func NewResult(params Params, time []float64) *Result {
	n := len(time)
	return &Result{
		Params:             params,
		Time:               append([]float64(nil), time...),
		Counter1:           make([]float64, n),
		Counter2:           make([]float64, n),
		Volt1:              make([]float64, n),
		Volt2:              make([]float64, n),
		VoltInv:            make([]float64, n),
		AvgInverterVoltage: params.AverageVoltage(),
	}
}

// Len 采样点数
func (r *Result) Len() int { return len(r.Time) }

// DutyLevel1 桥臂1比较阈值
func (r *Result) DutyLevel1() float64 { return r.Params.DutyCycle }

// DutyLevel2 桥臂2比较阈值
func (r *Result) DutyLevel2() float64 { return r.Params.Threshold2() }

// Leg1High 桥臂1在该计数值下是否输出高电平
// 占空比为1时计数器峰值同样视为导通.
func (r *Result) Leg1High(counter float64) bool {
	return counter < r.Params.DutyCycle || r.Params.DutyCycle == 1
}

// Leg2High 桥臂2在该计数值下是否输出高电平
func (r *Result) Leg2High(counter float64) bool {
	if r.Params.Comparator == ComparatorDirect {
		return counter >= r.Params.DutyCycle
	}
	return counter < 1-r.Params.DutyCycle
}

// SampledAverage 采样序列的数值平均值
func (r *Result) SampledAverage() float64 {
	if len(r.VoltInv) == 0 {
		return 0
	}
	return stat.Mean(r.VoltInv, nil)
}

// Table 以矩阵形式导出,每行一个采样点,列顺序同 TableHeader
func (r *Result) Table() *mat.Dense {
	n := r.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	table := mat.NewDense(n, len(TableHeader), nil)
	for i, col := range [][]float64{r.Time, r.Counter1, r.Counter2, r.Volt1, r.Volt2, r.VoltInv} {
		table.SetCol(i, col)
	}
	return table
}

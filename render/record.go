package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"inverter/types"
)

// ErrNoData 尚未计算波形
var ErrNoData = errors.New("没有波形数据")

// Record 记录最近一次波形
type Record struct {
	Params             types.Params `json:"params"`
	Time               []float64    `json:"time"`
	Counter1           []float64    `json:"counter1"`
	Counter2           []float64    `json:"counter2"`
	Volt1              []float64    `json:"volt1"`
	Volt2              []float64    `json:"volt2"`
	VoltInv            []float64    `json:"volt_inv"`
	AvgInverterVoltage float64      `json:"avg_inverter_voltage"`
	SampledAverage     float64      `json:"sampled_average"`

	result *types.Result
}

// Update 记录数据
func (list *Record) Update(res *types.Result) error {
	if res == nil {
		return ErrNoData
	}
	list.result = res
	list.Params = res.Params
	list.Time = res.Time
	list.Counter1 = res.Counter1
	list.Counter2 = res.Counter2
	list.Volt1 = res.Volt1
	list.Volt2 = res.Volt2
	list.VoltInv = res.VoltInv
	list.AvgInverterVoltage = res.AvgInverterVoltage
	list.SampledAverage = res.SampledAverage()
	return nil
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	if list.result == nil {
		return ErrNoData
	}
	return json.NewEncoder(w).Encode(list)
}

// WriteCSV 以表格形式输出, 首行为列名
func (list *Record) WriteCSV(w io.Writer) error {
	if list.result == nil {
		return ErrNoData
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(types.TableHeader); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	table := list.result.Table()
	rows, cols := table.Dims()
	row := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := range row {
			row[j] = strconv.FormatFloat(table.At(i, j), 'g', 15, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("写入第%d行失败: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}


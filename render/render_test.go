package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"inverter/maths"
	"inverter/types"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func testResult(t *testing.T, params types.Params) *types.Result {
	t.Helper()
	grid, err := maths.DefaultGrid(params.Period, 300)
	if err != nil {
		t.Fatalf("生成采样时间失败: %s", err)
	}
	res, err := maths.Generate(grid, params)
	if err != nil {
		t.Fatalf("计算波形失败: %s", err)
	}
	return res
}

func TestRecord(t *testing.T) {
	var rec Record
	if err := rec.Render(&bytes.Buffer{}); !errors.Is(err, ErrNoData) {
		t.Errorf("无数据时应返回 ErrNoData, 实际 %v", err)
	}
	res := testResult(t, types.DefaultParams())
	if err := rec.Update(res); err != nil {
		t.Fatalf("记录失败: %s", err)
	}

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		if err := rec.Render(&buf); err != nil {
			t.Fatalf("输出失败: %s", err)
		}
		var out struct {
			Params struct {
				Shape      string
				Comparator string
			} `json:"params"`
			VoltInv []float64 `json:"volt_inv"`
			Avg     float64   `json:"avg_inverter_voltage"`
		}
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("解析输出失败: %s", err)
		}
		if out.Params.Shape != "sawtooth" || out.Params.Comparator != "complement" {
			t.Errorf("参数输出错误: %+v", out.Params)
		}
		if len(out.VoltInv) != res.Len() || out.Avg != res.AvgInverterVoltage {
			t.Errorf("波形输出错误: %d 个采样点, 平均 %v", len(out.VoltInv), out.Avg)
		}
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		if err := rec.WriteCSV(&buf); err != nil {
			t.Fatalf("输出失败: %s", err)
		}
		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("解析输出失败: %s", err)
		}
		if len(rows) != res.Len()+1 {
			t.Fatalf("行数错误: 期望 %d, 实际 %d", res.Len()+1, len(rows))
		}
		if strings.Join(rows[0], ",") != "time,counter1,counter2,volt1,volt2,volt_inv" {
			t.Errorf("表头错误: %v", rows[0])
		}
	})
}

func TestCharts(t *testing.T) {
	var c Charts
	if err := c.Render(&bytes.Buffer{}); !errors.Is(err, ErrNoData) {
		t.Errorf("无数据时应返回 ErrNoData, 实际 %v", err)
	}
	if err := c.Update(testResult(t, types.DefaultParams())); err != nil {
		t.Fatalf("记录失败: %s", err)
	}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("输出失败: %s", err)
	}
	html := buf.String()
	for _, want := range []string{"<html", "Leg 1 modulation", "Leg 2 modulation", "Inverter voltage"} {
		if !strings.Contains(html, want) {
			t.Errorf("网页缺少 %q", want)
		}
	}
}

func TestFigure(t *testing.T) {
	f := NewFigure(6*vg.Inch, 6*vg.Inch)
	if err := f.Render(&bytes.Buffer{}); !errors.Is(err, ErrNoData) {
		t.Errorf("无数据时应返回 ErrNoData, 实际 %v", err)
	}

	params := types.DefaultParams()
	if err := f.Update(testResult(t, params)); err != nil {
		t.Fatalf("更新失败: %s", err)
	}
	counter1, volt2, average := f.counter1, f.volt2, f.average

	t.Run("IncrementalUpdate", func(t *testing.T) {
		params.DutyCycle, params.Shape = 0.7, types.Triangle
		res := testResult(t, params)
		if err := f.Update(res); err != nil {
			t.Fatalf("更新失败: %s", err)
		}
		if f.counter1 != counter1 || f.volt2 != volt2 || f.average != average {
			t.Errorf("更新后曲线句柄不应改变")
		}
		if len(f.counter1.XYs) != res.Len() || f.counter1.XYs[10].Y != res.Counter1[10] {
			t.Errorf("计数器1曲线数据未更新")
		}
		if f.average.XYs[0].Y != res.AvgInverterVoltage {
			t.Errorf("平均电压线未更新: %v", f.average.XYs[0].Y)
		}
		if f.inv.Y.Min != -1.1*params.DCAmplitude || f.leg1.Y.Max != 1.1 {
			t.Errorf("纵轴范围错误: %v %v", f.inv.Y.Min, f.leg1.Y.Max)
		}
	})

	t.Run("PNG", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			t.Fatalf("输出失败: %s", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Errorf("输出不是 PNG")
		}
	})

	t.Run("Image", func(t *testing.T) {
		img, err := f.Image()
		if err != nil {
			t.Fatalf("绘制失败: %s", err)
		}
		if img.Bounds().Dx() != 6*f.DPI {
			t.Errorf("图片宽度错误: %d", img.Bounds().Dx())
		}
	})
}

func TestShadeRuns(t *testing.T) {
	s := &Shade{}
	xys := series([]float64{0, 1, 2, 3, 4, 5}, []float64{0.1, 0.2, 0.9, 0.8, 0.1, 0.3})
	s.Set(xys, 0.5, func(c float64) bool { return c < 0.5 })
	runs := s.Runs()
	if len(runs) != 2 || runs[0] != [2]int{0, 2} || runs[1] != [2]int{4, 6} {
		t.Errorf("导通区间错误: %v", runs)
	}
}

package render

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"inverter/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	etypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页曲线绘制
type Charts struct {
	Record
}

// newLine 统一的曲线样式
func newLine(title, subtitle string, low, high float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Inverter Modulation",
			Theme:     etypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "time",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: low,
			Max: high,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i] = opts.LineData{Value: v}
	}
	return items
}

func levelData(n int, level float64) []opts.LineData {
	items := make([]opts.LineData, n)
	for i := range items {
		items[i] = opts.LineData{Value: level}
	}
	return items
}

// legRange 桥臂图纵轴范围
func legRange(vdc float64) (float64, float64) {
	return min(-0.1*vdc, -0.1), max(1.1*vdc, 1.1)
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	res := c.result
	if res == nil {
		return ErrNoData
	}
	n, vdc := res.Len(), res.Params.DCAmplitude
	low, high := legRange(vdc)
	dashed := charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"})
	subtitle := fmt.Sprintf("%s, duty=%.3g, offset=%.3g, invert=%t",
		res.Params.Shape, res.Params.DutyCycle, res.Params.Counter2Offset, res.Params.InvertCounter2)

	// 桥臂1
	leg1 := newLine("Leg 1 modulation", subtitle, low, high)
	leg1.SetXAxis(res.Time).
		AddSeries("count 1", lineData(res.Counter1)).
		AddSeries("duty", levelData(n, res.DutyLevel1()), dashed).
		AddSeries("volt 1", lineData(res.Volt1))

	// 桥臂2
	label2 := "1 - duty"
	if res.Params.Comparator == types.ComparatorDirect {
		label2 = "duty"
	}
	leg2 := newLine("Leg 2 modulation", res.Params.Comparator.String(), low, high)
	leg2.SetXAxis(res.Time).
		AddSeries("count 2", lineData(res.Counter2)).
		AddSeries(label2, levelData(n, res.DutyLevel2()), dashed).
		AddSeries("volt 2", lineData(res.Volt2))

	// 逆变器电压
	inv := newLine("Inverter voltage", fmt.Sprintf("average=%.4g", res.AvgInverterVoltage), -1.1*vdc, 1.1*vdc)
	inv.SetXAxis(res.Time).
		AddSeries("voltage", lineData(res.VoltInv),
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "average",
				YAxis: res.AvgInverterVoltage,
			}),
		)

	page := components.NewPage()
	page.AddCharts(leg1, leg2, inv)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }

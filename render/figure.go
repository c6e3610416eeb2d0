package render

import (
	"image"
	"image/color"
	"io"

	"inverter/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 曲线颜色
var (
	counterColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	voltColor    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	dutyColor    = color.RGBA{B: 255, A: 255}
	shadeColor   = color.RGBA{R: 31, G: 119, B: 180, A: 51}
)

// Figure 三幅堆叠曲线图
// 图表只在创建时构建一次, 每条曲线保留一个句柄, Update 只修改句柄数据.
type Figure struct {
	Width, Height vg.Length // 图片尺寸
	DPI           int       // 位图分辨率

	leg1, leg2, inv *plot.Plot

	counter1, duty1, volt1 *plotter.Line
	counter2, duty2, volt2 *plotter.Line
	voltInv, average       *plotter.Line
	shade1, shade2         *Shade

	result *types.Result
}

// NewFigure 创建曲线图
func NewFigure(width, height vg.Length) *Figure {
	f := &Figure{Width: width, Height: height, DPI: 96}

	f.leg1, f.counter1, f.duty1, f.volt1, f.shade1 = newLegPlot("Leg 1 modulation", "count 1", "duty", "volt 1")
	f.leg2, f.counter2, f.duty2, f.volt2, f.shade2 = newLegPlot("Leg 2 modulation", "count 2", "1 - duty", "volt 2")

	f.inv = plot.New()
	f.inv.Title.Text = "Inverter voltage"
	f.inv.X.Label.Text = "time"
	f.inv.Add(plotter.NewGrid())
	f.voltInv = newSeries(voltColor, false)
	f.voltInv.StepStyle = plotter.PostStep
	f.average = newSeries(voltColor, true)
	f.inv.Add(f.voltInv, f.average)
	f.inv.Legend = legend(legendEntry{"voltage", f.voltInv}, legendEntry{"average", f.average})
	return f
}

type legendEntry struct {
	name  string
	thumb plot.Thumbnailer
}

// legend 图例放在右上角
func legend(entries ...legendEntry) plot.Legend {
	l := plot.NewLegend()
	l.Top = true
	for _, e := range entries {
		l.Add(e.name, e.thumb)
	}
	return l
}

func newSeries(c color.Color, dashed bool) *plotter.Line {
	line := &plotter.Line{}
	line.LineStyle = plotter.DefaultLineStyle
	line.LineStyle.Color = c
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	return line
}

func newLegPlot(title, counter, duty, volt string) (*plot.Plot, *plotter.Line, *plotter.Line, *plotter.Line, *Shade) {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	shade := &Shade{Color: shadeColor}
	lc := newSeries(counterColor, false)
	ld := newSeries(dutyColor, true)
	lv := newSeries(voltColor, false)
	lv.StepStyle = plotter.PostStep
	p.Add(shade, lc, ld, lv)
	p.Legend = legend(legendEntry{counter, lc}, legendEntry{duty, ld}, legendEntry{volt, lv})
	return p, lc, ld, lv, shade
}

func series(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	return xys
}

func level(x []float64, y float64) plotter.XYs {
	return plotter.XYs{{X: x[0], Y: y}, {X: x[len(x)-1], Y: y}}
}

// Update 修改曲线句柄数据
func (f *Figure) Update(res *types.Result) error {
	if res == nil || res.Len() == 0 {
		return ErrNoData
	}
	f.result = res
	t := res.Time

	f.counter1.XYs = series(t, res.Counter1)
	f.volt1.XYs = series(t, res.Volt1)
	f.duty1.XYs = level(t, res.DutyLevel1())
	f.shade1.Set(f.counter1.XYs, res.DutyLevel1(), res.Leg1High)

	f.counter2.XYs = series(t, res.Counter2)
	f.volt2.XYs = series(t, res.Volt2)
	f.duty2.XYs = level(t, res.DutyLevel2())
	f.shade2.Set(f.counter2.XYs, res.DutyLevel2(), res.Leg2High)
	label2 := "1 - duty"
	if res.Params.Comparator == types.ComparatorDirect {
		label2 = "duty"
	}
	f.leg2.Legend = legend(
		legendEntry{"count 2", f.counter2},
		legendEntry{label2, f.duty2},
		legendEntry{"volt 2", f.volt2},
	)

	f.voltInv.XYs = series(t, res.VoltInv)
	f.average.XYs = level(t, res.AvgInverterVoltage)

	// 坐标范围在添加曲线时已固定, 这里重新设置
	xmin, xmax := t[0], t[len(t)-1]
	if xmin == xmax {
		xmin, xmax = xmin-0.5, xmax+0.5
	}
	vdc := res.Params.DCAmplitude
	low, high := legRange(vdc)
	for _, p := range []*plot.Plot{f.leg1, f.leg2, f.inv} {
		p.X.Min, p.X.Max = xmin, xmax
		p.Y.Min, p.Y.Max = low, high
	}
	f.inv.Y.Min, f.inv.Y.Max = -1.1*vdc, 1.1*vdc
	return nil
}

// Draw 绘制到画布
func (f *Figure) Draw(dc draw.Canvas) {
	plots := [][]*plot.Plot{{f.leg1}, {f.leg2}, {f.inv}}
	tiles := draw.Tiles{
		Rows:      3,
		Cols:      1,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}
}

func (f *Figure) canvas() (*vgimg.Canvas, error) {
	if f.result == nil {
		return nil, ErrNoData
	}
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Draw(draw.New(c))
	return c, nil
}

// Image 绘制为位图
func (f *Figure) Image() (image.Image, error) {
	c, err := f.canvas()
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// Render 输出 PNG
func (f *Figure) Render(w io.Writer) error {
	c, err := f.canvas()
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

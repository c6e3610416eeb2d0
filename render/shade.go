package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Shade 填充计数器与阈值之间桥臂导通的区域
type Shade struct {
	Color color.Color

	xys   plotter.XYs
	level float64
	high  func(counter float64) bool
}

// Set 更新填充数据
func (s *Shade) Set(xys plotter.XYs, level float64, high func(counter float64) bool) {
	s.xys, s.level, s.high = xys, level, high
}

// Runs 导通区间 [start,end) 的采样下标
func (s *Shade) Runs() [][2]int {
	var runs [][2]int
	for i := 0; i < len(s.xys); {
		if !s.high(s.xys[i].Y) {
			i++
			continue
		}
		j := i
		for j < len(s.xys) && s.high(s.xys[j].Y) {
			j++
		}
		runs = append(runs, [2]int{i, j})
		i = j
	}
	return runs
}

// Plot 实现 plot.Plotter
func (s *Shade) Plot(c draw.Canvas, plt *plot.Plot) {
	if s.high == nil {
		return
	}
	trX, trY := plt.Transforms(&c)
	for _, run := range s.Runs() {
		pts := make([]vg.Point, 0, 2*(run[1]-run[0]))
		for k := run[0]; k < run[1]; k++ {
			pts = append(pts, vg.Point{X: trX(s.xys[k].X), Y: trY(s.level)})
		}
		for k := run[1] - 1; k >= run[0]; k-- {
			pts = append(pts, vg.Point{X: trX(s.xys[k].X), Y: trY(s.xys[k].Y)})
		}
		c.FillPolygon(s.Color, c.ClipPolygonXY(pts))
	}
}

package app

import (
	"image"
	"log"

	"inverter"
	"inverter/render"
	"inverter/types"
	"inverter/utils"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gonum.org/v1/plot/vg"
)

// ModulationApp 调制参数实时编辑窗口
type ModulationApp struct {
	window *app.Window
	theme  *material.Theme
	panel  *Panel
	figure *render.Figure
	inv    *inverter.Inverter

	image  paint.ImageOp
	status string
}

// NewModulationApp 创建窗口, 曲线图作为会话的输出之一
// samples 为 [-T,2T] 上的采样点数.
func NewModulationApp(params types.Params, samples int) (*ModulationApp, error) {
	figure := render.NewFigure(8*vg.Inch, 7*vg.Inch)
	inv, err := inverter.NewInverterSamples(params, samples, figure)
	if err != nil {
		return nil, err
	}
	window := new(app.Window)
	window.Option(app.Title("Inverter Modulation"), app.Size(unit.Dp(1100), unit.Dp(760)))
	a := &ModulationApp{
		window: window,
		theme:  material.NewTheme(),
		panel:  NewPanel(params),
		figure: figure,
		inv:    inv,
	}
	a.redraw()
	return a, nil
}

// Window 返回应用程序窗口
func (a *ModulationApp) Window() *app.Window {
	return a.window
}

// redraw 重新绘制曲线位图
func (a *ModulationApp) redraw() {
	img, err := a.figure.Image()
	if err != nil {
		log.Println(err)
		return
	}
	a.image = paint.NewImageOp(img)
}

// apply 界面修改交给会话重新计算
func (a *ModulationApp) apply(edits []utils.Edit) {
	if len(edits) == 0 {
		return
	}
	if err := a.inv.Apply(edits...); err != nil {
		a.status = err.Error()
		log.Println(err)
		return
	}
	a.status = ""
	a.redraw()
}

// Run 运行应用程序
func (a *ModulationApp) Run() error {
	var ops op.Ops
	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.apply(a.panel.Update(gtx))
			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *ModulationApp) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Max.X = gtx.Dp(unit.Dp(280))
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.panel.Layout(gtx, a.theme, a.inv.Params(), a.status)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if a.image.Size() == (image.Point{}) {
				return layout.Dimensions{Size: gtx.Constraints.Max}
			}
			return widget.Image{Src: a.image, Fit: widget.Contain}.Layout(gtx)
		}),
	)
}

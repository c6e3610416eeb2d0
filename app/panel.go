package app

import (
	"fmt"

	"inverter/types"
	"inverter/utils"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Panel 参数编辑面板
// 控件范围与参数合法范围一致: 滑块 [0,1], 单选只含已知波形和比较方式.
type Panel struct {
	duty       widget.Float
	offset     widget.Float
	invert     widget.Bool
	shape      widget.Enum
	comparator widget.Enum
}

// NewPanel 按参数初始化控件
func NewPanel(params types.Params) *Panel {
	p := &Panel{}
	p.duty.Value = float32(params.DutyCycle)
	p.offset.Value = float32(params.Counter2Offset)
	p.invert.Value = params.InvertCounter2
	p.shape.Value = params.Shape.String()
	p.comparator.Value = params.Comparator.String()
	return p
}

// Update 处理控件事件, 返回本帧的参数修改
func (p *Panel) Update(gtx layout.Context) []utils.Edit {
	var edits []utils.Edit
	if p.duty.Update(gtx) {
		edits = append(edits, utils.Edit{Type: utils.EventDutyCycle, Value: float64(p.duty.Value)})
	}
	if p.offset.Update(gtx) {
		edits = append(edits, utils.Edit{Type: utils.EventOffset, Value: float64(p.offset.Value)})
	}
	if p.invert.Update(gtx) {
		edits = append(edits, utils.Edit{Type: utils.EventInvert, Value: p.invert.Value})
	}
	if p.shape.Update(gtx) {
		if edit, err := utils.ParseEdit("shape", p.shape.Value); err == nil {
			edits = append(edits, edit)
		}
	}
	if p.comparator.Update(gtx) {
		if edit, err := utils.ParseEdit("comparator", p.comparator.Value); err == nil {
			edits = append(edits, edit)
		}
	}
	return edits
}

// Layout 绘制面板
func (p *Panel) Layout(gtx layout.Context, th *material.Theme, params types.Params, status string) layout.Dimensions {
	label := func(text string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, material.Body1(th, text).Layout)
		})
	}
	rigid := func(w layout.Widget) layout.FlexChild { return layout.Rigid(w) }

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		rigid(material.H6(th, "Modulation").Layout),
		label(fmt.Sprintf("duty cycle: %.3f", params.DutyCycle)),
		rigid(material.Slider(th, &p.duty).Layout),
		label("counter type"),
		rigid(material.RadioButton(th, &p.shape, types.Sawtooth.String(), "sawtooth").Layout),
		rigid(material.RadioButton(th, &p.shape, types.Triangle.String(), "triangle").Layout),
		rigid(material.CheckBox(th, &p.invert, "invert counter 2").Layout),
		label(fmt.Sprintf("counter 2 offset: %.3f", params.Counter2Offset)),
		rigid(material.Slider(th, &p.offset).Layout),
		label("leg 2 comparator"),
		rigid(material.RadioButton(th, &p.comparator, types.ComparatorComplement.String(), "count 2 < 1 - duty").Layout),
		rigid(material.RadioButton(th, &p.comparator, types.ComparatorDirect.String(), "count 2 >= duty").Layout),
		label(fmt.Sprintf("average: %.4g", params.AverageVoltage())),
		label(status),
	)
}

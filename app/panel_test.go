package app

import (
	"inverter/types"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
)

func TestNewPanel(t *testing.T) {
	params := types.DefaultParams()
	params.Shape, params.Counter2Offset = types.Triangle, 0.5
	p := NewPanel(params)
	if p.duty.Value != float32(params.DutyCycle) || p.offset.Value != 0.5 {
		t.Errorf("滑块初始值错误: %v %v", p.duty.Value, p.offset.Value)
	}
	if p.shape.Value != "triangle" || p.comparator.Value != "complement" || !p.invert.Value {
		t.Errorf("选项初始值错误: %+v", p)
	}

	// 没有输入事件时不产生修改
	gtx := layout.Context{Ops: new(op.Ops)}
	if edits := p.Update(gtx); len(edits) != 0 {
		t.Errorf("无事件时不应有修改: %+v", edits)
	}
}

package inverter

import (
	"fmt"
	"net/http"
	"sync"

	"inverter/maths"
	"inverter/render"
	"inverter/types"
	"inverter/utils"
)

// Inverter 调制会话
// @ 界面层观察到参数修改后调用 Apply, 会话重新计算波形并通知所有输出.
// @ 修改失败时保留原参数和原结果.
type Inverter struct {
	mu        sync.Mutex
	params    types.Params
	grid      []float64
	autoGrid  bool // 采样时间随周期变化
	samples   int  // 默认采样点数
	result    *types.Result
	renderers []render.Renderer
}

// NewInverter 初始化
// grid 为空时使用 [-T,2T] 的默认采样时间, 并随周期修改重新生成.
func NewInverter(params types.Params, grid []float64, renderers ...render.Renderer) (*Inverter, error) {
	inv := &Inverter{grid: grid, autoGrid: len(grid) == 0, samples: types.DefaultSamples, renderers: renderers}
	if err := inv.update(params); err != nil {
		return nil, err
	}
	return inv, nil
}

// NewInverterSamples 使用 [-T,2T] 上 samples 个采样点, 随周期修改重新生成
func NewInverterSamples(params types.Params, samples int, renderers ...render.Renderer) (*Inverter, error) {
	inv := &Inverter{autoGrid: true, samples: samples, renderers: renderers}
	if err := inv.update(params); err != nil {
		return nil, err
	}
	return inv, nil
}

// Params 当前参数
func (inv *Inverter) Params() types.Params {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.params
}

// Result 当前波形
func (inv *Inverter) Result() *types.Result {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.result
}

// Apply 应用参数修改并重新计算
func (inv *Inverter) Apply(edits ...utils.Edit) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	params := inv.params
	for _, edit := range edits {
		var err error
		if params, err = edit.Apply(params); err != nil {
			return err
		}
	}
	return inv.update(params)
}

// update 重新计算波形, 调用方持有锁
func (inv *Inverter) update(params types.Params) error {
	grid := inv.grid
	if inv.autoGrid && (len(grid) == 0 || params.Period != inv.params.Period) {
		var err error
		if grid, err = maths.DefaultGrid(params.Period, inv.samples); err != nil {
			return err
		}
	}
	res, err := maths.Generate(grid, params)
	if err != nil {
		return err
	}
	for i, r := range inv.renderers {
		if err := r.Update(res); err != nil {
			// 已更新的输出恢复到原结果
			if inv.result != nil {
				for _, prev := range inv.renderers[:i] {
					prev.Update(inv.result)
				}
			}
			return fmt.Errorf("更新输出失败: %w", err)
		}
	}
	inv.params, inv.grid, inv.result = params, grid, res
	return nil
}

// Handler 网页查询参数作为修改, 随后输出曲线
func (inv *Inverter) Handler(charts *render.Charts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		edits, err := utils.FromQuery(r.URL.Query())
		if err == nil && len(edits) > 0 {
			err = inv.Apply(edits...)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		inv.mu.Lock()
		defer inv.mu.Unlock()
		charts.Handler(w, r)
	}
}

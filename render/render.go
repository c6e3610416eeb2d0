package render

import (
	"io"

	"inverter/types"
)

// Renderer 波形输出接口
// 会话在每次重新计算后调用 Update, 需要输出时调用 Render.
type Renderer interface {
	Update(res *types.Result) error
	Render(w io.Writer) error
}

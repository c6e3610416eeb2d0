package utils

import (
	"fmt"
	"strconv"
	"strings"

	"inverter/types"
)

// EventType 参数修改事件类型标记
type EventType uint16

// 参数修改事件类型
const (
	EventUnknown    EventType = iota // 未知事件
	EventDutyCycle                   // 占空比
	EventShape                       // 计数器波形
	EventInvert                      // 计数器2反向
	EventOffset                      // 计数器2偏移
	EventComparator                  // 桥臂2比较方式
	EventPeriod                      // 参考周期
	EventDCAmplitude                 // 母线电压
)

// eventKey 事件键名映射
var eventKey = map[string]EventType{
	"duty":       EventDutyCycle,
	"shape":      EventShape,
	"invert":     EventInvert,
	"offset":     EventOffset,
	"comparator": EventComparator,
	"period":     EventPeriod,
	"vdc":        EventDCAmplitude,
}

// String 返回事件键名
func (t EventType) String() string {
	for key, v := range eventKey {
		if v == t {
			return key
		}
	}
	return "unknown"
}

// Keys 可修改的参数键名
func Keys() []string {
	return []string{"duty", "shape", "invert", "offset", "comparator", "period", "vdc"}
}

// Edit 一次参数修改
// @ 界面层观察到参数修改后构造 Edit,再交给会话重新计算波形.
type Edit struct {
	Type  EventType // 事件类型
	Value any       // 修改值: float64 / bool / types.CounterShape / types.Comparator
}

// Apply 将修改应用到参数副本上
func (e Edit) Apply(params types.Params) (types.Params, error) {
	var ok bool
	switch e.Type {
	case EventDutyCycle:
		params.DutyCycle, ok = e.Value.(float64)
	case EventOffset:
		params.Counter2Offset, ok = e.Value.(float64)
	case EventPeriod:
		params.Period, ok = e.Value.(float64)
	case EventDCAmplitude:
		params.DCAmplitude, ok = e.Value.(float64)
	case EventInvert:
		params.InvertCounter2, ok = e.Value.(bool)
	case EventShape:
		params.Shape, ok = e.Value.(types.CounterShape)
	case EventComparator:
		params.Comparator, ok = e.Value.(types.Comparator)
	default:
		return params, fmt.Errorf("%w: 未知参数事件 %d", types.ErrInvalidParameter, e.Type)
	}
	if !ok {
		return params, fmt.Errorf("%w: 参数 %s 值类型错误 %T", types.ErrInvalidParameter, e.Type, e.Value)
	}
	return params, nil
}

// ParseEdit 从文本键值解析参数修改
func ParseEdit(key, value string) (Edit, error) {
	key, value = strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
	t, ok := eventKey[key]
	if !ok {
		return Edit{}, fmt.Errorf("%w: 未知参数 %q", types.ErrInvalidParameter, key)
	}
	edit := Edit{Type: t}
	var err error
	switch t {
	case EventShape:
		edit.Value, err = types.ParseShape(strings.ToLower(value))
	case EventComparator:
		edit.Value, err = types.ParseComparator(strings.ToLower(value))
	case EventInvert:
		edit.Value, err = strconv.ParseBool(value)
	default:
		edit.Value, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return Edit{}, fmt.Errorf("%w: 参数 %s 解析失败: %s", types.ErrInvalidParameter, key, err)
	}
	return edit, nil
}

// ParseAssignment 解析 key=value 形式的参数修改
func ParseAssignment(s string) (Edit, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Edit{}, fmt.Errorf("%w: 参数格式应为 key=value, 实际 %q", types.ErrInvalidParameter, s)
	}
	return ParseEdit(key, value)
}

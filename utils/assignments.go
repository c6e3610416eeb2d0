package utils

import (
	"net/url"
	"strings"
)

// Assignments 参数修改列表, 每项为 key=value
// 实现 flag.Value, 命令行可重复指定.
type Assignments []string

// String 格式化
func (a *Assignments) String() string { return strings.Join(*a, ",") }

// Set 追加一项
func (a *Assignments) Set(value string) error {
	if _, err := ParseAssignment(value); err != nil {
		return err
	}
	*a = append(*a, value)
	return nil
}

// Edits 解析全部修改
func (a Assignments) Edits() ([]Edit, error) {
	edits := make([]Edit, 0, len(a))
	for _, s := range a {
		edit, err := ParseAssignment(s)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

// FromQuery 从网页查询参数解析修改, 忽略无关键名
func FromQuery(query url.Values) ([]Edit, error) {
	edits := make([]Edit, 0, len(query))
	for _, key := range Keys() {
		if !query.Has(key) {
			continue
		}
		edit, err := ParseEdit(key, query.Get(key))
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

package types

import "fmt"

// CounterShape 计数器波形类型
type CounterShape int

// 计数器波形常量定义
const (
	ShapeUnknown CounterShape = iota // 未知波形
	Sawtooth                         // 锯齿波
	Triangle                         // 三角波
)

// shapeString 波形映射
var shapeString = map[CounterShape]string{
	Sawtooth: "sawtooth",
	Triangle: "triangle",
}

// String 返回波形的字符串表示
func (s CounterShape) String() string {
	if name, ok := shapeString[s]; ok {
		return name
	}
	return "unknown"
}

// Valid 是否为已知波形
func (s CounterShape) Valid() bool {
	_, ok := shapeString[s]
	return ok
}

// ParseShape 通过名称获取波形
func ParseShape(name string) (CounterShape, error) {
	for s, n := range shapeString {
		if n == name {
			return s, nil
		}
	}
	return ShapeUnknown, fmt.Errorf("%w: 未知计数器波形 %q", ErrInvalidParameter, name)
}

// Comparator 桥臂2比较方式
type Comparator int

// 桥臂2比较方式常量定义
const (
	ComparatorUnknown    Comparator = iota // 未知方式
	ComparatorComplement                   // counter2 < 1-duty
	ComparatorDirect                       // counter2 >= duty
)

// comparatorString 比较方式映射
var comparatorString = map[Comparator]string{
	ComparatorComplement: "complement",
	ComparatorDirect:     "direct",
}

// String 返回比较方式的字符串表示
func (c Comparator) String() string {
	if name, ok := comparatorString[c]; ok {
		return name
	}
	return "unknown"
}

// Valid 是否为已知比较方式
func (c Comparator) Valid() bool {
	_, ok := comparatorString[c]
	return ok
}

// ParseComparator 通过名称获取比较方式
func ParseComparator(name string) (Comparator, error) {
	for c, n := range comparatorString {
		if n == name {
			return c, nil
		}
	}
	return ComparatorUnknown, fmt.Errorf("%w: 未知比较方式 %q", ErrInvalidParameter, name)
}

// MarshalText 文本编码
func (s CounterShape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText 文本解码
func (s *CounterShape) UnmarshalText(text []byte) (err error) {
	*s, err = ParseShape(string(text))
	return err
}

// MarshalText 文本编码
func (c Comparator) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText 文本解码
func (c *Comparator) UnmarshalText(text []byte) (err error) {
	*c, err = ParseComparator(string(text))
	return err
}

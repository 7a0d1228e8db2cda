package lexer

import (
	"fmt"
	"strconv"
)

// ValueType represents the kind of a decoded literal
type ValueType uint8

// Literal kinds
const (
	ValueTypeInt ValueType = iota + 1
	ValueTypeFloat
	ValueTypeString
	ValueTypeBool
)

var valueTypeNames = map[ValueType]string{
	ValueTypeInt:    "int",
	ValueTypeFloat:  "float",
	ValueTypeString: "string",
	ValueTypeBool:   "bool",
}

func (vt ValueType) String() string {
	return valueTypeNames[vt]
}

// Valuer represents a decoded literal
type Valuer interface {
	Type() ValueType
	Value() interface{}
	Encode() string
}

type literal struct {
	t ValueType
	v interface{}
}

func newLiteral(t ValueType, v interface{}) *literal {
	return &literal{
		t: t,
		v: v,
	}
}

func (l *literal) Type() ValueType {
	return l.t
}

func (l *literal) Value() interface{} {
	return l.v
}

func (l *literal) Encode() string {
	switch l.t {
	case ValueTypeInt:
		return fmt.Sprintf("%d", l.v)
	case ValueTypeFloat:
		return strconv.FormatFloat(l.v.(float64), 'g', -1, 64)
	case ValueTypeString:
		return `"` + l.v.(string) + `"`
	case ValueTypeBool:
		if l.v.(bool) {
			return "#t"
		}
		return "#f"
	}

	panic("unreachable")
}

func (l *literal) String() string {
	return fmt.Sprintf("%v(%s)", l.t, l.Encode())
}

// NewIntValue creates a literal of type int
func NewIntValue(v int64) Valuer {
	return newLiteral(ValueTypeInt, v)
}

// NewFloatValue creates a literal of type float
func NewFloatValue(v float64) Valuer {
	return newLiteral(ValueTypeFloat, v)
}

// NewStringValue creates a literal of type string. String constants hold
// the text between the quotes as written; identifiers hold their name.
func NewStringValue(v string) Valuer {
	return newLiteral(ValueTypeString, v)
}

// NewBoolValue creates a literal of type bool
func NewBoolValue(v bool) Valuer {
	return newLiteral(ValueTypeBool, v)
}

var _ = Valuer(&literal{})

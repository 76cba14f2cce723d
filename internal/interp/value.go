package interp

import (
	"strconv"

	"minilang/internal/types"
)

// Value is one runtime value. Which field is live follows Kind;
// результат сравнения хранится как int 0/1.
type Value struct {
	Kind types.Kind
	I    int32
	F    float64
}

func IntValue(v int32) Value { return Value{Kind: types.Int32, I: v} }

func FloatValue(v float64) Value { return Value{Kind: types.Float64, F: v} }

// Text renders the value the way 'print' shows it.
func (v Value) Text() string {
	if v.Kind == types.Float64 {
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v.I), 10)
}

// slot holds the runtime state of one named local.
// IsInit ловит чтение переменной, объявленной в невыполненной ветке.
type slot struct {
	V      Value
	IsInit bool
}

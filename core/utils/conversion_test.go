package utils_test

import (
	"math"
	"testing"

	"collection-sync/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Nil", nil, 0},
		{"Int", 7, 7},
		{"Int64", int64(-3), -3},
		{"Float", 12.9, 12},
		{"True", true, 1},
		{"String", " 42 ", 42},
		{"FloatString", "12.0", 12},
		{"Bytes", []byte("5"), 5},
		{"Garbage", "abc", 0},
		{"HugeFloat", 1e300, 0},
		{"HugeNegativeFloat", -1e300, 0},
		{"NaN", math.NaN(), 0},
		{"Infinity", math.Inf(1), 0},
		{"HugeFloatString", "1e40", 0},
		{"HugeUint", uint64(math.MaxUint64), 0},
		{"NegativeFloat", -7.9, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "a-1", "a-1"},
		{"Bytes", []byte("b"), "b"},
		{"IntegralFloat", float64(1000000), "1000000"},
		{"Fraction", 1.5, "1.5"},
		{"Int", 3, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Bool", true, true},
		{"One", 1, true},
		{"JSONOne", float64(1), true},
		{"Zero", 0, false},
		{"TrueString", "TRUE", true},
		{"OneString", "1", true},
		{"Other", "yes", false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToBool(tt.in))
		})
	}
}

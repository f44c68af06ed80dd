package util_test

import (
	"testing"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
)

func TestMustParseUint(t *testing.T) {
	cases := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-1", 0},
	}
	for _, c := range cases {
		if got := util.MustParseUint(c.in); got != c.want {
			t.Errorf("MustParseUint(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseFloatOr(t *testing.T) {
	if got := util.ParseFloatOr("0.65", 0.5); got != 0.65 {
		t.Errorf("got %v, want 0.65", got)
	}
	if got := util.ParseFloatOr("", 0.5); got != 0.5 {
		t.Errorf("空串应取默认值, got %v", got)
	}
	if got := util.ParseFloatOr("x", 0.5); got != 0.5 {
		t.Errorf("非法输入应取默认值, got %v", got)
	}
	// 0 是合法输入，不落回默认值
	if got := util.ParseFloatOr("0", 0.5); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestParseIntOr(t *testing.T) {
	if got := util.ParseIntOr("10", 5); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	if got := util.ParseIntOr("", 5); got != 5 {
		t.Errorf("空串应取默认值, got %d", got)
	}
	if got := util.ParseIntOr("3.5", 5); got != 5 {
		t.Errorf("非法输入应取默认值, got %d", got)
	}
}

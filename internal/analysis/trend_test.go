package analysis

import (
	"testing"

	"github.com/user/seo-monitor/internal/entity"
)

func TestCalcPercentChange(t *testing.T) {
	tests := []struct {
		current, previous float64
		want              float64
		ok                bool
	}{
		{0, 0, 0, false},
		{5, 0, 100, true},
		{150, 100, 50, true},
		{50, 100, -50, true},
		{100, 100, 0, true},
	}

	for _, tt := range tests {
		got, ok := CalcPercentChange(tt.current, tt.previous)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CalcPercentChange(%v, %v) = %v, %v; want %v, %v", tt.current, tt.previous, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatPercentChange(t *testing.T) {
	tests := []struct {
		change float64
		ok     bool
		want   string
	}{
		{12.345, true, "+12.3%"},
		{-3, true, "-3.0%"},
		{0, true, "0.0%"},
		{0, false, "n/a"},
	}

	for _, tt := range tests {
		if got := FormatPercentChange(tt.change, tt.ok); got != tt.want {
			t.Errorf("FormatPercentChange(%v, %v) = %q, want %q", tt.change, tt.ok, got, tt.want)
		}
	}
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		change float64
		ok     bool
		want   entity.Trend
	}{
		{0, false, entity.TrendNeutral},
		{0.99, true, entity.TrendNeutral},
		{-0.5, true, entity.TrendNeutral},
		{1, true, entity.TrendUp},
		{-1, true, entity.TrendDown},
		{250, true, entity.TrendUp},
	}

	for _, tt := range tests {
		if got := TrendOf(tt.change, tt.ok); got != tt.want {
			t.Errorf("TrendOf(%v, %v) = %q, want %q", tt.change, tt.ok, got, tt.want)
		}
	}
}

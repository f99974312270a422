package analysis

import (
	"fmt"
	"math"

	"github.com/user/seo-monitor/internal/entity"
)

// CalcPercentChange returns the change from previous to current in percent.
// ok is false when both values are zero and there is no change to report.
func CalcPercentChange(current, previous float64) (change float64, ok bool) {
	if previous == 0 {
		if current == 0 {
			return 0, false
		}
		if current > 0 {
			return 100, true
		}
	}
	return (current - previous) / previous * 100, true
}

// FormatPercentChange renders a change like "+12.5%".
func FormatPercentChange(change float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	if change > 0 {
		return fmt.Sprintf("+%.1f%%", change)
	}
	return fmt.Sprintf("%.1f%%", change)
}

// TrendOf reports changes below one percent as neutral.
func TrendOf(change float64, ok bool) entity.Trend {
	switch {
	case !ok || math.Abs(change) < 1:
		return entity.TrendNeutral
	case change > 0:
		return entity.TrendUp
	default:
		return entity.TrendDown
	}
}

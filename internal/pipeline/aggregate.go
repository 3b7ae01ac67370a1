package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"spendlive/internal/core"
)

// SummarizeByCategory groups the view by category and sums amounts per group.
// Order is summed amount descending; equal totals fall back to category text
// ascending so the table is deterministic.
func SummarizeByCategory(v View) []core.CategoryTotal {
	if v.Empty() {
		return nil
	}

	sums := make(map[string]decimal.Decimal)
	for _, t := range v.Transactions {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	out := make([]core.CategoryTotal, 0, len(sums))
	for category, total := range sums {
		out = append(out, core.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// DailySeries groups the view by calendar day and sums amounts per day,
// oldest first. A time series must be chronological; there is exactly one
// entry per day present in the view.
func DailySeries(v View) []core.DailyTotal {
	if v.Empty() {
		return nil
	}

	sums := make(map[core.Date]decimal.Decimal)
	for _, t := range v.Transactions {
		if t.Date == nil {
			continue
		}
		sums[*t.Date] = sums[*t.Date].Add(t.Amount)
	}

	out := make([]core.DailyTotal, 0, len(sums))
	for day, total := range sums {
		out = append(out, core.DailyTotal{Day: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

package domain

import "time"

type Statistics struct {
	TotalGoals        int
	ActiveCount       int
	PausedCount       int
	CompletedCount    int
	OverdueCount      int
	CompletionRate    float64
	CategoryBreakdown map[Category]int
}

func ComputeStatistics(goals []Goal, now time.Time) Statistics {
	stats := Statistics{TotalGoals: len(goals), CategoryBreakdown: map[Category]int{}}
	for _, g := range goals {
		switch g.State() {
		case StateActive:
			stats.ActiveCount++
		case StatePaused:
			stats.PausedCount++
		case StateCompleted:
			stats.CompletedCount++
		}
		if g.IsOverdue(now) {
			stats.OverdueCount++
		}
		stats.CategoryBreakdown[g.Category]++
	}
	if stats.TotalGoals > 0 {
		stats.CompletionRate = float64(stats.CompletedCount) / float64(stats.TotalGoals)
	}
	return stats
}

// Active and Completed are derived on every read; nothing caches them.
func Active(goals []Goal) []Goal {
	return filter(goals, func(g Goal) bool { return g.IsActive && !g.IsCompleted })
}

func Completed(goals []Goal) []Goal {
	return filter(goals, func(g Goal) bool { return g.IsCompleted })
}

func filter(goals []Goal, keep func(Goal) bool) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

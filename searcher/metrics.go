package searcher

import (
	"time"

	"advisor/game"
)

// ActionStat is the per-child breakdown for one root action.
type ActionStat struct {
	Action  game.Action
	Visits  int
	Value   float64
	WinRate float64
}

// Statistics is a read-only snapshot of the last search.
type Statistics struct {
	Iterations int
	RootVisits int
	RootValue  float64
	Children   int
	TableSize  int
	Elapsed    time.Duration
	PerAction  []ActionStat
}

// Statistics reports the outcome of the most recent Search call. In the
// root-parallel mode it describes the first worker tree.
func (o *Optimizer) Statistics() Statistics {
	stats := Statistics{
		Iterations: o.iterations,
		Elapsed:    o.elapsed,
	}
	if o.table != nil {
		stats.TableSize = o.table.Len()
	}
	if o.root == nil {
		return stats
	}

	stats.RootVisits = o.root.visits
	stats.RootValue = o.root.totalValue
	stats.Children = len(o.root.children)
	for _, child := range o.root.children {
		stat := ActionStat{
			Action: child.action,
			Visits: child.visits,
			Value:  child.totalValue,
		}
		if child.visits > 0 {
			stat.WinRate = child.totalValue / float64(child.visits)
		}
		stats.PerAction = append(stats.PerAction, stat)
	}
	return stats
}

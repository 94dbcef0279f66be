package searcher

import (
	"math"
	"time"

	"advisor/game"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Option overrides an Optimizer collaborator.
type Option func(o *Optimizer)

// WithLogger attaches a logger; the default optimizer is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Optimizer) {
		o.logger = logger
	}
}

// WithClock swaps the wall clock used by the time-limit stopping policy.
func WithClock(clock quartz.Clock) Option {
	return func(o *Optimizer) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithEvaluator replaces the default pot-odds heuristic.
func WithEvaluator(evaluate game.Evaluate) Option {
	return func(o *Optimizer) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

// WithShuffledExpansion randomizes which untried action expands next. The
// default expands actions in derivation order, which is deterministic but
// biased toward earlier-listed actions; shuffling trades that determinism
// for unbiased exploration.
func WithShuffledExpansion(seed uint64) Option {
	return func(o *Optimizer) {
		o.shuffle = true
		o.seed = seed
	}
}

// Optimizer recommends a single action for a decision-point snapshot by
// searching the abstracted betting tree. It does no I/O; a search is a pure
// function of (state, config) up to the optional wall-clock budget.
//
// One Optimizer is not safe for concurrent Search calls. Parallelism inside
// a single call is configured via Config.ParallelSimulations.
type Optimizer struct {
	config   Config
	table    *Table
	evaluate game.Evaluate
	clock    quartz.Clock
	logger   zerolog.Logger
	shuffle  bool
	seed     uint64

	root       *node
	iterations int
	elapsed    time.Duration
}

func NewOptimizer(config Config, options ...Option) (*Optimizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	o := &Optimizer{
		config:   config,
		evaluate: game.EvaluatePotOdds,
		clock:    quartz.NewReal(),
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(o)
	}
	if config.UseTranspositionTable {
		o.table = NewTable(config.TranspositionTableSize)
	}
	return o, nil
}

// Search runs the select/expand/simulate/backpropagate loop from state and
// returns the most-visited root action. A terminal or budget-less root has
// no children and yields fold.
func (o *Optimizer) Search(state game.State) game.Action {
	start := o.clock.Now()

	if o.config.ParallelSimulations > 1 {
		return o.searchParallel(state, start)
	}

	root := newNode(nil, "", state)
	iterations := 0
	if !root.terminal() {
		iterations = o.grow(root, o.rng(0), start)
	}
	o.root = root
	o.iterations = iterations
	o.elapsed = o.clock.Since(start)

	action := recommend(root)
	o.logger.Debug().
		Int("iterations", iterations).
		Dur("elapsed", o.elapsed).
		Stringer("action", action).
		Msg("search complete")
	return action
}

// searchParallel builds ParallelSimulations independent trees concurrently
// and merges their root visit counts into a vote. Workers share only the
// transposition table.
func (o *Optimizer) searchParallel(state game.State, start time.Time) game.Action {
	workers := o.config.ParallelSimulations
	roots := make([]*node, workers)
	counts := make([]int, workers)

	var group errgroup.Group
	for i := 0; i < workers; i++ {
		group.Go(func() error {
			root := newNode(nil, "", state)
			if !root.terminal() {
				counts[i] = o.grow(root, o.rng(uint64(i)), start)
			}
			roots[i] = root
			return nil
		})
	}
	_ = group.Wait() // workers do not fail

	o.root = roots[0]
	o.iterations = counts[0]
	o.elapsed = o.clock.Since(start)

	action := vote(roots, state)
	o.logger.Debug().
		Int("workers", workers).
		Int("iterations", counts[0]).
		Dur("elapsed", o.elapsed).
		Stringer("action", action).
		Msg("parallel search complete")
	return action
}

// grow runs complete iterations until the iteration budget or the optional
// time limit is exhausted. The limit is polled between iterations only; an
// iteration never aborts mid-flight.
func (o *Optimizer) grow(root *node, rng *rand.Rand, start time.Time) int {
	iterations := 0
	for iterations < o.config.Iterations {
		if o.config.TimeLimit > 0 && o.clock.Since(start) >= o.config.TimeLimit {
			break
		}
		leaf := selectNode(root, o.config.ExplorationConstant)
		leaf = o.expand(leaf, rng)
		value := o.simulate(leaf.state)
		backpropagate(leaf, value)
		iterations++
	}
	return iterations
}

// selectNode descends through fully expanded nodes via UCT, stopping at the
// first node that is terminal or still has untried actions.
func selectNode(root *node, exploration float64) *node {
	current := root
	for !current.terminal() && current.fullyExpanded() && len(current.children) > 0 {
		current = current.bestChild(exploration)
	}
	return current
}

// expand adds at most one child. Unvisited and terminal nodes are simulated
// in place, and progressive widening keeps the child count under
// floor(constant * visits^exponent) once that cap is positive.
func (o *Optimizer) expand(n *node, rng *rand.Rand) *node {
	if n.terminal() || n.visits == 0 || n.fullyExpanded() {
		return n
	}

	maxChildren := int(math.Floor(o.config.ProgressiveWideningConstant *
		math.Pow(float64(n.visits), o.config.ProgressiveWideningExponent)))
	if maxChildren > 0 && len(n.children) >= maxChildren {
		return n
	}

	index := 0
	if rng != nil && len(n.untried) > 1 {
		index = rng.Intn(len(n.untried))
	}
	action := n.untried[index]
	return n.addChild(action, n.state.Apply(action))
}

// simulate evaluates a state, short-circuited by the transposition table.
// The table caches the base heuristic as a 1-visit entry, not aggregated
// tree statistics.
func (o *Optimizer) simulate(state game.State) float64 {
	if o.table == nil {
		return o.evaluate(state)
	}

	hash := state.Hash()
	if visits, value, ok := o.table.Lookup(hash); ok && visits > 0 {
		return value / float64(visits)
	}
	value := o.evaluate(state)
	o.table.Store(hash, 1, value)
	return value
}

func backpropagate(n *node, value float64) {
	for current := n; current != nil; current = current.parent {
		current.visits++
		current.totalValue += value
	}
}

// recommend extracts the robust child: most visits, first-expanded on ties.
// A childless root falls back to fold.
func recommend(root *node) game.Action {
	best := root.mostVisited()
	if best == nil {
		return game.Fold
	}
	return best.action
}

// vote sums per-action root visits across worker trees; the root's legal
// action order breaks ties.
func vote(roots []*node, state game.State) game.Action {
	totals := make(map[game.Action]int)
	for _, root := range roots {
		for _, child := range root.children {
			totals[child.action] += child.visits
		}
	}

	best := game.Fold
	maxVisits := -1
	for _, action := range state.LegalActions() {
		if visits, ok := totals[action]; ok && visits > maxVisits {
			best = action
			maxVisits = visits
		}
	}
	return best
}

// rng returns the expansion-order source for one worker, nil unless shuffled
// expansion was requested.
func (o *Optimizer) rng(worker uint64) *rand.Rand {
	if !o.shuffle {
		return nil
	}
	return rand.New(rand.NewSource(o.seed + worker))
}

package main

import (
	"fmt"
	"os"
	"time"

	"advisor/config"
	"advisor/game"
	"advisor/searcher"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

type CLI struct {
	Config string `help:"HCL file with search and hand blocks" type:"path"`

	Street   string   `default:"preflop" help:"Street: preflop, flop, turn, river"`
	Pot      float64  `default:"0" help:"Current pot size"`
	Stack    float64  `default:"0" help:"Hero's remaining stack"`
	Board    []string `help:"Board cards, e.g. Kh,Qd,9c"`
	Hole     []string `help:"Hole cards, e.g. As,Kd"`
	Position string   `default:"button" help:"Hero's position"`
	Players  int      `default:"2" help:"Number of players in the hand"`
	History  []string `help:"Betting history tags, e.g. check,bet"`

	Iterations int           `default:"10000" help:"Search iteration cap"`
	TimeLimit  time.Duration `help:"Wall-clock budget (0 for none)"`
	Parallel   int           `default:"1" help:"Independent root-parallel trees"`
	Stats      bool          `short:"s" help:"Print per-action statistics"`
	Verbose    bool          `short:"v" help:"Debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("advisor"),
		kong.Description("Recommend a poker action for a table snapshot using Monte Carlo tree search."))
	ctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, state, err := loadRun(cli)
	if err != nil {
		return err
	}

	optimizer, err := searcher.NewOptimizer(cfg, searcher.WithLogger(logger))
	if err != nil {
		return err
	}

	action := optimizer.Search(state)
	fmt.Println(action)

	if cli.Stats {
		printStats(optimizer.Statistics())
	}
	return nil
}

// loadRun builds the search config and hand snapshot from the HCL file when
// given, otherwise from flags. Flag-provided search settings apply on top of
// the file's search block.
func loadRun(cli CLI) (searcher.Config, game.State, error) {
	if cli.Config != "" {
		cfg, state, err := config.Load(cli.Config)
		if err != nil {
			return searcher.Config{}, game.State{}, err
		}
		if state == nil {
			return searcher.Config{}, game.State{}, fmt.Errorf("%s has no hand block", cli.Config)
		}
		return cfg, *state, nil
	}

	cfg := searcher.DefaultConfig()
	cfg.Iterations = cli.Iterations
	cfg.TimeLimit = cli.TimeLimit
	cfg.ParallelSimulations = cli.Parallel

	history := make([]game.Action, len(cli.History))
	for i, tag := range cli.History {
		history[i] = game.ActionFromString(tag)
	}
	state := game.NewState(cli.Street, cli.Pot, cli.Stack, cli.Board, cli.Hole,
		cli.Position, cli.Players, history)
	return cfg, state, nil
}

func printStats(stats searcher.Statistics) {
	fmt.Printf("iterations=%d root_visits=%d children=%d table=%d elapsed=%s\n",
		stats.Iterations, stats.RootVisits, stats.Children, stats.TableSize, stats.Elapsed)
	for _, stat := range stats.PerAction {
		fmt.Printf("  %-13s visits=%-6d value=%-8.2f win_rate=%.3f\n",
			stat.Action, stat.Visits, stat.Value, stat.WinRate)
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/config"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/simulator"
	"github.com/rocketscienceinc/tictactoe-sim/internal/strategy"
	"github.com/rocketscienceinc/tictactoe-sim/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-sim/transport/console"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	policy, err := simulator.ParseIllegalMovePolicy(conf.Batch.IllegalMovePolicy)
	if err != nil {
		return err
	}

	options := []simulator.Option{
		simulator.WithSeed(conf.Seed),
		simulator.WithWorkers(conf.Batch.Workers),
		simulator.WithIllegalMovePolicy(policy),
		simulator.WithMaxIllegalMoves(conf.Batch.MaxIllegalMoves),
	}
	if conf.Batch.ShowMoves && conf.Mode != config.ModePlay {
		options = append(options, simulator.WithMoveObserver(echoMoves(out)))
	}

	sim := simulator.New(logger, options...)

	log.Info("Starting", "mode", conf.Mode, "seed", conf.Seed)

	switch conf.Mode {
	case config.ModeBatch:
		publisher, closePublisher, err := connectPublisher(ctx, log, conf)
		if err != nil {
			return err
		}
		defer closePublisher()

		return runBatch(ctx, log, conf, sim, publisher, out)
	case config.ModeTournament:
		return runTournament(ctx, conf, sim, out)
	case config.ModePlay:
		return runPlay(ctx, conf, sim, in, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func newStrategy(conf *config.Config, name string) (strategy.Strategy, error) {
	return strategy.New(name,
		strategy.WithPlayouts(conf.MonteCarlo.Playouts),
		strategy.WithWorkers(conf.MonteCarlo.Workers),
		strategy.WithDeadline(conf.MonteCarlo.Deadline),
	)
}

// echoMoves prints each computer move and the board after it.
func echoMoves(out io.Writer) simulator.MoveObserver {
	var mu sync.Mutex

	return func(player string, move int, board entity.Board) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "%s plays %d\n", player, move+1)
		_ = console.Render(out, board)
	}
}

// connectPublisher returns a nil publisher when Redis is disabled.
func connectPublisher(ctx context.Context, log *slog.Logger, conf *config.Config) (redis.Publisher, func(), error) {
	if !conf.Redis.Enabled {
		return nil, func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := redis.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}, nil
}

func runBatch(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
	sim *simulator.Simulator,
	publisher redis.Publisher,
	out io.Writer,
) error {
	a, err := newStrategy(conf, conf.Batch.StrategyA)
	if err != nil {
		return err
	}

	b, err := newStrategy(conf, conf.Batch.StrategyB)
	if err != nil {
		return err
	}

	tally, err := sim.RunBatch(ctx, a, b, conf.Batch.Games)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	console.PrintTally(out, a.Name(), b.Name(), tally)

	if publisher == nil {
		return nil
	}

	summary := tally.Summary(a.Name(), b.Name(), sim.Seed())
	if err = publisher.Publish(ctx, summary); err != nil {
		return err
	}

	log.Info("Batch summary published", "run_id", summary.RunID)

	return nil
}

func runTournament(ctx context.Context, conf *config.Config, sim *simulator.Simulator, out io.Writer) error {
	strategies := make([]strategy.Strategy, 0, len(conf.Tournament.Strategies))
	for _, name := range conf.Tournament.Strategies {
		s, err := newStrategy(conf, name)
		if err != nil {
			return err
		}

		strategies = append(strategies, s)
	}

	standings, err := sim.RunTournament(ctx, strategies, conf.Tournament.Games)
	if err != nil {
		return fmt.Errorf("tournament failed: %w", err)
	}

	console.PrintStandings(out, standings)

	return nil
}

func runPlay(ctx context.Context, conf *config.Config, sim *simulator.Simulator, in io.Reader, out io.Writer) error {
	opponent, err := newStrategy(conf, conf.Play.Opponent)
	if err != nil {
		return err
	}

	var x, o strategy.Strategy = console.NewHuman(in, out), opponent
	if conf.Play.ComputerFirst {
		x, o = o, x
	}

	game := entity.NewGame()
	if _, err = sim.RunMatch(ctx, game, x, o, rand.New(rand.NewSource(conf.Seed))); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	console.PrintResult(out, game)

	return nil
}

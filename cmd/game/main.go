package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/boardgame/internal/config"
	"github.com/mitchelldurbincs/boardgame/internal/game"
	"github.com/mitchelldurbincs/boardgame/internal/game/core"
	"github.com/mitchelldurbincs/boardgame/internal/game/events"
	"github.com/mitchelldurbincs/boardgame/internal/game/mapgen"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in board output")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	setupLogging(*logLevel, cfg.Log.Format)

	if err := run(cfg, !*noColor); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(cfg *config.Config, color bool) error {
	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("Generating board")

	mapCfg := mapgen.DefaultMapConfig(cfg.Board.Width, cfg.Board.Height)
	mapCfg.Terrain = cfg.Board.Terrain
	mapCfg.BaseElevation = cfg.Board.Elevation
	mapCfg.Hills = cfg.Map.Hills
	mapCfg.MaxElevation = cfg.Map.MaxElevation
	mapCfg.Ramp = cfg.Map.Ramp

	board, err := mapgen.NewGenerator(mapCfg, rand.New(rand.NewSource(seed))).GenerateBoard()
	if err != nil {
		return fmt.Errorf("generate board: %w", err)
	}

	start := core.NewVector(cfg.Piece.StartX, cfg.Piece.StartY)
	dest := core.NewVector(cfg.Demo.DestX, cfg.Demo.DestY)
	piece, err := core.NewPiece(core.PieceSpec{
		Name:        cfg.Piece.Name,
		HP:          cfg.Piece.HP,
		AP:          cfg.Piece.AP,
		AttackRange: cfg.Piece.AttackRange,
		Pos:         &start,
	})
	if err != nil {
		return fmt.Errorf("create piece: %w", err)
	}

	bus := events.NewEventBus(log.Logger)
	bus.SubscribeFunc(events.TypePieceMoved, func(e events.Event) {
		moved := e.(*events.PieceMovedEvent)
		log.Info().
			Int("pid", moved.PieceID).
			Stringer("from", moved.From).
			Stringer("to", moved.To).
			Msg("Piece moved")
	})

	g, err := game.NewGame(game.GameConfig{
		Board:    board,
		Pieces:   []*core.Piece{piece},
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	fmt.Printf("Initial board:\n%s\n", g.Render(nil, color))

	for _, planner := range []struct {
		name string
		plan func(p1, p2 core.Vector) ([]core.Direction, error)
	}{
		{"straight", board.PathStraight},
		{"cost", board.PathCost},
	} {
		path, err := planner.plan(start, dest)
		if err != nil {
			log.Warn().Err(err).Str("planner", planner.name).Msg("No path")
			continue
		}
		total, err := board.PathCostTotal(start, path)
		if err != nil {
			return fmt.Errorf("cost of %s path: %w", planner.name, err)
		}
		fmt.Printf("Path %s (%d steps, cost %d): %v\n%s\n", planner.name, len(path), total, path, g.Render(game.PathCells(start, path), color))
	}

	steps := g.StepToward(piece, dest, cfg.Demo.MaxSteps)
	if piece.Pos.Equal(dest) {
		fmt.Printf("%s reached %s in %d steps\n", piece.Name, dest, steps)
	} else {
		fmt.Printf("%s stopped at %s after %d steps\n", piece.Name, piece.Pos, steps)
	}
	fmt.Printf("\nFinal board:\n%s", g.Render(nil, color))
	return nil
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/theoremus-urban-solutions/transit-directions/config"
	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/handler"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
	"github.com/theoremus-urban-solutions/transit-directions/recents"
	"github.com/theoremus-urban-solutions/transit-directions/response"
)

func main() {
	mode := flag.String("mode", "request", "request|parse|serve")
	coords := flag.String("coords", "", `waypoints as "lon,lat;lon,lat"`)
	payload := flag.String("payload", "", "directions reply JSON file, - for stdin (parse mode)")
	configPath := flag.String("config", "", "config file (defaults to $DIRECTIONS_CONFIG, then config.yml)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using default environment variables")
	}

	if err := config.LoadAppConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Config

	log, err := internal.NewLogger(cfg.Logging.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	switch *mode {
	case "request":
		o, err := buildOptions(*coords, cfg.Directions)
		if err != nil {
			log.Fatal("invalid waypoints", zap.Error(err))
		}
		printJSON(map[string]any{
			"path":   o.Path(),
			"params": o.Params(),
			"query":  o.Query().Encode(),
		})
	case "parse":
		o, err := buildOptions(*coords, cfg.Directions)
		if err != nil {
			log.Fatal("invalid waypoints", zap.Error(err))
		}
		data, err := newFetcher().fetch(*payload)
		if err != nil {
			log.Fatal("failed to read payload", zap.Error(err))
		}
		res, err := response.NewParser(log).ParseJSON(o, data)
		if err != nil {
			log.Fatal("failed to parse payload", zap.Error(err))
		}
		printJSON(res)
	case "serve":
		if err := serve(cfg, log); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	default:
		log.Fatal("unknown mode", zap.String("mode", *mode))
	}
}

func buildOptions(coords string, defaults config.DirectionsConfig) (*directions.RouteOptions, error) {
	points, err := parseCoordinates(coords)
	if err != nil {
		return nil, err
	}
	return directions.NewFromCoordinates(points, defaults.Options()...), nil
}

func serve(cfg config.AppConfig, log *zap.Logger) error {
	repo, err := newRepository(cfg.Database, log)
	if err != nil {
		return err
	}
	service := recents.NewService(repo, cfg.Recents.Limit, log)

	router := handler.NewRouter(
		handler.NewDirectionsHandler(response.NewParser(log), log),
		handler.NewRecentsHandler(service, log),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return handler.NewServer(cfg.Server.Port, router, log).Run(ctx)
}

func newRepository(cfg config.DatabaseConfig, log *zap.Logger) (recents.Repository, error) {
	if cfg.DSN == "" {
		log.Info("keeping recent searches in memory")
		return recents.NewMemoryRepository(), nil
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	repo := recents.NewGormRepository(db, log)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}
	log.Info("database migration completed")
	return repo, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/solitonlab/faux/pkg/faux"
	"github.com/solitonlab/faux/pkg/wordstore"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	var (
		configPath = flag.String("config", "./faux.json", "path to the JSON config file")
		genName    = flag.String("gen", "", "generator name (overrides config)")
		count      = flag.Int("n", 0, "number of values to generate (overrides config)")
		seed       = flag.Int64("seed", -1, "seed for the random source; negative means non-deterministic")
		dbPath     = flag.String("db", "", "wordstore database path (overrides config)")
		list       = flag.Bool("list", false, "list available generator names and exit")
		version    = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("faux %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(config.LogLevel),
	}))
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	if err := run(config, logger, *genName, *count, *seed, *dbPath, *list); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(config *Config, logger *slog.Logger, genName string, count int, seed int64, dbPath string, list bool) error {
	reg := builtins()
	reg.SetLogger(logger)

	if dbPath == "" {
		dbPath = config.DatabasePath
	}
	if dbPath != "" {
		if err := registerStoredCorpora(reg, logger, dbPath); err != nil {
			return err
		}
	}

	if len(config.Definitions) > 0 {
		if err := reg.Apply(&faux.RegistryConfig{Definitions: config.Definitions}); err != nil {
			return fmt.Errorf("invalid generator definitions: %w", err)
		}
	}

	if list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	}

	if genName == "" {
		genName = config.Generator
	}
	gen, ok := reg.Lookup(genName)
	if !ok {
		return fmt.Errorf("unknown generator %q (use -list to see available names)", genName)
	}

	if count <= 0 {
		count = config.Count
	}
	if count <= 0 {
		count = 1
	}

	var r *rand.Rand
	if seed >= 0 {
		r = rand.New(rand.NewPCG(uint64(seed), 0))
	} else {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	logger.Debug("generating values",
		slog.String("generator", genName),
		slog.Int("count", count),
		slog.Int64("seed", seed),
	)

	for i := 0; i < count; i++ {
		fmt.Println(gen.Sample(r))
	}
	return nil
}

// registerStoredCorpora opens the wordstore database and registers every
// stored corpus under "db.<name>", so config definitions can use them as
// template parts.
func registerStoredCorpora(reg *faux.Registry, logger *slog.Logger, dbPath string) error {
	db, err := initDB(dbPath)
	if err != nil {
		return fmt.Errorf("error opening wordstore database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err = wordstore.SetupSchema(db); err != nil {
		return fmt.Errorf("error setting up wordstore schema: %w", err)
	}

	store, err := wordstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("error creating wordstore: %w", err)
	}
	defer store.Close()
	store.SetLogger(logger)

	ctx := context.Background()
	infos, err := store.ListCorpora(ctx)
	if err != nil {
		return fmt.Errorf("error listing stored corpora: %w", err)
	}

	for _, info := range infos {
		c, err := store.Corpus(ctx, info.Name)
		if err != nil {
			return fmt.Errorf("error loading stored corpus %q: %w", info.Name, err)
		}
		if err = reg.Register("db."+info.Name, c); err != nil {
			return err
		}
	}

	logger.Info("Registered stored corpora",
		slog.String("database", dbPath),
		slog.Int("count", len(infos)),
	)
	return nil
}

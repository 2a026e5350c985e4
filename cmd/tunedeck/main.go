// Package main provides the interactive player entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/app/command"
	"github.com/osa030/tunedeck/internal/app/filter"
	"github.com/osa030/tunedeck/internal/app/notification"
	"github.com/osa030/tunedeck/internal/app/session"
	"github.com/osa030/tunedeck/internal/infra/config"
	"github.com/osa030/tunedeck/internal/infra/logger"
	"github.com/osa030/tunedeck/internal/shell"
)

var (
	app        = kingpin.New("tunedeck", "tunedeck console playlist manager")
	configPath = app.Flag("config", "Path to config file (default: built-in settings)").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stderr)").String()
	seed       = app.Flag("seed", "Random seed for Play Random (0 seeds from the clock)").Uint64()

	listCommandsCmd = app.Command("list-commands", "List available commands and exit")
	listFiltersCmd  = app.Command("list-filters", "List available filters and exit")
)

func init() {
	app.Command("start", "Start the player (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch cmd {
	case listCommandsCmd.FullCommand():
		printCommands()
		return
	case listFiltersCmd.FullCommand():
		printFilters()
		return
	}

	loggerConfig := logger.Config{
		Output: "stderr",
		Level:  "warn",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	logCloser, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logCloser.Close()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zlog.Error().Msgf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Player.RandomSeed = *seed
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Player error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		zlog.Info().Msg("Using built-in config")
		return config.Default()
	}
	zlog.Info().Msgf("Loading config from %s", path)
	return config.Load(path)
}

// run executes the player. Deferred cleanup runs on every return path.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionMgr, err := session.NewManager(cfg, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create session manager")
	}
	defer sessionMgr.Close()

	sessionMgr.GetNotificationManager().Subscribe(notification.NewLogSubscriber())

	if err := sessionMgr.LoadLibrary(ctx); err != nil {
		return errors.Wrap(err, "failed to load library")
	}

	dispatcher := command.NewDispatcher(sessionMgr, cfg)
	sh := shell.New(dispatcher, os.Stdin, os.Stdout, cfg.ShowMenu())

	zlog.Info().Msg("Player started")
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "shell stopped")
	}
	zlog.Info().Msg("Player stopped")
	return nil
}

// printCommands prints the commands understood by the dispatcher.
func printCommands() {
	fmt.Println("Available Commands:")
	for _, spec := range command.Specs() {
		args := "-"
		if len(spec.Args) > 0 {
			args = strings.Join(spec.Args, ", ")
		}
		fmt.Printf("  %-15s - %s [args: %s]\n", spec.Name, spec.Description, args)
	}
}

// printFilters prints available filters.
func printFilters() {
	registered := filter.GetRegistered()
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available Filters:")
	for _, name := range names {
		f := registered[name]()
		codes := strings.Join(f.ReturnCodes(), ", ")
		fmt.Printf("  %-30s - %s [codes: %s]\n", f.Name(), f.Description(), codes)
	}
}

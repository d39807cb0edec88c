package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"aquamanager/internal/migration"
	"aquamanager/pkg/config"
	"aquamanager/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log := logger.New(logLevel, "console")
	defer func() { _ = log.Sync() }()

	cfg := config.Read()
	if cfg.DatabaseURL == "" {
		log.Fatal("invalid configuration", zap.Error(config.ErrMissingDatabaseURL))
	}

	m, err := migration.Open(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()

	case "down":
		err = m.Down()

	case "step":
		if len(args) < 2 {
			log.Fatal("step count required. Usage: migrate step <n>")
		}
		n, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			log.Fatal("invalid step count", zap.String("value", args[1]))
		}
		err = m.Steps(n)

	case "force":
		if len(args) < 2 {
			log.Fatal("version required. Usage: migrate force <version>")
		}
		v, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			log.Fatal("invalid version number", zap.String("value", args[1]))
		}
		err = m.Force(v)

	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatal("failed to get version", zap.Error(verr))
		}
		if version == 0 {
			log.Info("no migrations applied")
		} else {
			log.Info("current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}

	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal("migration failed", zap.String("command", command), zap.Error(err))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [flags] <command> [args]

Commands:
  up               Apply all pending migrations
  down             Roll back all migrations
  step <n>         Apply n migrations (negative rolls back)
  force <version>  Mark version as applied and clear the dirty flag
  version          Print the applied version

Reads AQUA_DATABASE_URL from the environment or .env.`)
	flag.PrintDefaults()
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
)

// main - is the entry point of the application. It parses the command line and runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cliApp := &cli.App{
		Name:  "tictactoe-api",
		Usage: "Tic-Tac-Toe game server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
				Usage:   "path to the configuration `FILE`",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP and WebSocket server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   app.MigrateUp,
						Usage:  "apply all pending migrations",
						Action: migrate(app.MigrateUp),
					},
					{
						Name:   app.MigrateDown,
						Usage:  "roll back the latest migration",
						Action: migrate(app.MigrateDown),
					},
					{
						Name:   app.MigrateCurrent,
						Usage:  "print the current schema version",
						Action: migrate(app.MigrateCurrent),
					},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func serve(ctx *cli.Context) error {
	conf, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}

	if err = app.RunApp(initLogger(conf), conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

func migrate(command string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		conf, err := config.Load(ctx.String("config"))
		if err != nil {
			return err
		}

		if err = app.RunMigrations(ctx.Context, initLogger(conf), conf, command); err != nil {
			return fmt.Errorf("migrate %s failed: %w", command, err)
		}

		return nil
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

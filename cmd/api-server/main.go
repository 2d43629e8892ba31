package main

import (
	"BrainRotBGone/config"
	"BrainRotBGone/pkg/database"
	"BrainRotBGone/pkg/log"
	"BrainRotBGone/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "BrainRotBGone HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   path,
				Usage:   "path of the yaml config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "migrate, seed and start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					if _, err := database.Seed(ctx.Context, appProvider.DB); err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create the schema and seed demo data, then exit",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					db, err := InitDB(cfg)
					if err != nil {
						return err
					}
					seeded, err := database.Seed(ctx.Context, db)
					if err != nil {
						return err
					}
					log.L.Info("migrate done", zap.Bool("seeded", seeded))
					return nil
				},
			},
		},
		DefaultCommand: "serve",
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

package main

import (
	"cboard/internal/utils"
	"cboard/logger"
	"cboard/settings"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cboard",
		Usage: "community board server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "./config/config.json",
				Usage:   "config file path, optional",
			},
		},
		Before: func(c *cli.Context) error {
			return setup(c.String("config"))
		},
		After: func(*cli.Context) error {
			logger.Sync()
			return nil
		},
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrateAction,
			},
			{
				Name:  "category",
				Usage: "manage board categories",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "create a board category",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "title", Required: true},
							&cli.StringFlag{Name: "slug", Required: true, Usage: "lowercase letters, digits and '-'"},
							&cli.StringFlag{Name: "desc", Required: true},
						},
						Action: createCategoryAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("cboard: %v", err)
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(confPath string) error {
	if err := settings.InitSettings(confPath); err != nil {
		return err
	}

	logger.InitLogger()

	if err := utils.InitSnowflake(viper.GetString("server.start_time"), viper.GetInt64("server.machine_id")); err != nil {
		return err
	}
	return utils.InitTrans(viper.GetString("server.lang"))
}

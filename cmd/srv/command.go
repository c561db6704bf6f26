package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	s.ctx = context.Background()

	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "rutamapas"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Flags:       []cli.Flag{},
			Category:    "Worker",
			Description: `Used to start background jobs, including the competition sweeper.`,
		},
		{
			Action: s.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "run the Go migrator of this version instead of the SQL migrations",
				},
			},
			Category:    "Database",
			Description: `Used to apply database migrations before starting any service.`,
		},
	}

	s.app = app
}

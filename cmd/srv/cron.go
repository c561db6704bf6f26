package main

import (
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/domain/cron"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRepos()
	s.lifecycle = competition.NewLifecycle(s.competitionRepo, s.pointRepo)

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewSweepCompetitionsCronJob(s.lifecycle))
	cronJobManager.Start(s.ctx)

	return nil
}

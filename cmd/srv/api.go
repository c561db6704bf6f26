package main

import (
	"fmt"
	"net/http"

	"github.com/rutamapas/backend/internal/middleware"
	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/pkg/authenticator"
	"github.com/rs/cors"
	"github.com/rutamapas/backend/pkg/router"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRedisClient()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: cors.AllowAll().Handler(s.router.Handler()),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port %s", cfg.Port)
	if cfg.Cert != "" && cfg.Key != "" {
		if err := s.server.ListenAndServeTLS(cfg.Cert, cfg.Key); err != nil {
			panic(err)
		}
	} else {
		if err := s.server.ListenAndServe(); err != nil {
			panic(err)
		}
	}

	xcontext.Logger(s.ctx).Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)

	cfg := xcontext.Configs(s.ctx).Auth
	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](
		cfg.TokenSecret, cfg.AccessToken.Expiration)

	// These following APIs need authentication with only Access Token.
	authRouter := s.router.Group("/")
	authRouter.Use(middleware.Authenticate(tokenEngine))
	{
		// Competition API
		router.POST(authRouter, "/configureCompetition", s.competitionDomain.Configure)
		router.POST(authRouter, "/updateCompetition", s.competitionDomain.Update)

		// Point API
		router.POST(authRouter, "/changePoints", s.pointDomain.Change)
		router.POST(authRouter, "/changeGlobalPoints", s.pointDomain.ChangeGlobal)
		router.POST(authRouter, "/changeStreak", s.pointDomain.ChangeStreak)
		router.GET(authRouter, "/getUserStatistics", s.pointDomain.GetStatistics)

		// Statistic API
		router.GET(authRouter, "/getRanking", s.statisticDomain.GetRanking)
		router.GET(authRouter, "/getCompetitionHistory", s.statisticDomain.GetHistory)
	}
}

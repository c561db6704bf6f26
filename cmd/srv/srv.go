package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rutamapas/backend/config"
	"github.com/rutamapas/backend/internal/common"
	"github.com/rutamapas/backend/internal/domain"
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/domain/statistic"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/logger"
	"github.com/rutamapas/backend/pkg/router"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/rutamapas/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo        repository.UserRepository
	communityRepo   repository.CommunityRepository
	memberRepo      repository.MemberRepository
	rankTierRepo    repository.RankTierRepository
	competitionRepo repository.CompetitionRepository
	pointRepo       repository.CompetitionPointRepository

	redisClient xredis.Client
	lifecycle   competition.Lifecycle
	reporter    statistic.Reporter

	competitionDomain domain.CompetitionDomain
	pointDomain       domain.PointDomain
	statisticDomain   domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	s.ctx = xcontext.WithConfigs(s.ctx, config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "rutamapas"),
			User:     getEnv("MYSQL_USER", "rutamapas"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			Cert:         getEnv("SERVER_CERT", ""),
			Key:          getEnv("SERVER_KEY", ""),
			DefaultLimit: getEnvInt("API_DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvInt("API_MAX_LIMIT", 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", 24*time.Hour),
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Competition: config.CompetitionConfigs{
			DefaultDurationDays: getEnvInt("COMPETITION_DEFAULT_DURATION_DAYS", 7),
			RankingCacheTTL:     getEnvDuration("RANKING_CACHE_TTL", time.Minute),
		},
	})
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(gormmysql.Open(cfg.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.communityRepo = repository.NewCommunityRepository()
	s.memberRepo = repository.NewMemberRepository()
	s.rankTierRepo = repository.NewRankTierRepository()
	s.competitionRepo = repository.NewCompetitionRepository()
	s.pointRepo = repository.NewCompetitionPointRepository()
}

func (s *srv) loadDomains() {
	s.lifecycle = competition.NewLifecycle(s.competitionRepo, s.pointRepo)
	s.reporter = statistic.NewReporter(s.pointRepo, s.redisClient)
	adminVerifier := common.NewCommunityAdminVerifier(s.userRepo)

	s.competitionDomain = domain.NewCompetitionDomain(s.communityRepo, s.lifecycle, adminVerifier)
	s.pointDomain = domain.NewPointDomain(
		s.communityRepo, s.memberRepo, s.userRepo, s.pointRepo, s.rankTierRepo,
		s.lifecycle, s.reporter)
	s.statisticDomain = domain.NewStatisticDomain(
		s.communityRepo, s.memberRepo, s.userRepo, s.competitionRepo, s.pointRepo,
		s.lifecycle, s.reporter)
}

func getEnv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return def
}

func getEnvInt(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}

	return d
}

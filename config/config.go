package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database    DatabaseConfigs
	ApiServer   ServerConfigs
	Auth        AuthConfigs
	Redis       RedisConfigs
	Competition CompetitionConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// ConnectionString builds the MySQL DSN. clientFoundRows makes UPDATE report
// matched rows instead of changed rows, so a clamped delta that leaves a total
// at its current value still counts as one affected row.
func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	DefaultLimit int
	MaxLimit     int
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

type CompetitionConfigs struct {
	// DefaultDurationDays is used when a competition is lazily created and the
	// caller did not specify a duration.
	DefaultDurationDays int

	// RankingCacheTTL bounds how long a ranking snapshot may be served from
	// cache after the last write.
	RankingCacheTTL time.Duration
}

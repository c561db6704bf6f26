package xcontext

import (
	"context"

	"github.com/rutamapas/backend/config"
	"github.com/rutamapas/backend/pkg/clock"
	"github.com/rutamapas/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey            struct{}
	dbTransactionKey struct{}
	loggerKey        struct{}
	configsKey       struct{}
	clockKey         struct{}
	userIDKey        struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the transaction opened by WithDBTransaction if one is in flight,
// otherwise the root database handle.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(dbTransactionKey{}).(*transactionHolder); ok && tx.tx != nil {
		return tx.tx
	}

	return ctx.Value(dbKey{}).(*gorm.DB)
}

type transactionHolder struct {
	tx   *gorm.DB
	done bool
}

// WithDBTransaction begins a database transaction and stores it in the
// returned context. Every DB call through the returned context runs inside
// that transaction until WithCommitDBTransaction or WithRollbackDBTransaction
// is called.
func WithDBTransaction(ctx context.Context) context.Context {
	db := DB(ctx)
	return context.WithValue(ctx, dbTransactionKey{}, &transactionHolder{tx: db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(dbTransactionKey{}).(*transactionHolder)
	if !ok || holder.done {
		return
	}

	holder.tx.Commit()
	holder.done = true
}

// WithRollbackDBTransaction is a no-op if the transaction has already been
// committed, so it is safe to defer right after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(dbTransactionKey{}).(*transactionHolder)
	if !ok || holder.done {
		return
	}

	holder.tx.Rollback()
	holder.done = true
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithClock(ctx context.Context, c clock.Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, c)
}

// Clock falls back to the wall clock when none was injected.
func Clock(ctx context.Context) clock.Clock {
	if c, ok := ctx.Value(clockKey{}).(clock.Clock); ok {
		return c
	}

	return clock.New()
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated user of the current request, or an
// empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(userIDKey{}).(string)
	if !ok {
		return ""
	}

	return id
}

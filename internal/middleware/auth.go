package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/pkg/authenticator"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/router"
	"github.com/rutamapas/backend/pkg/xcontext"
)

// Authenticate requires a valid access token and stores the caller's user id
// in the context. Tokens are accepted from the Authorization header or from
// the configured cookie.
func Authenticate(engine authenticator.TokenEngine[model.AccessToken]) router.MiddlewareFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		token := getAccessToken(ctx, r)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := engine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func getAccessToken(ctx context.Context, r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

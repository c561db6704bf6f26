package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerFunc is a typed endpoint handler. The request is already bound from
// the query string or JSON body when the handler runs.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler and may enrich the context, for
// example with the authenticated user. Returning an error aborts the request.
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

// Router wraps gin with typed handlers and a uniform response envelope. The
// base context carries the database handle, logger, configs, and clock; every
// request context derives from it.
type Router struct {
	Inner gin.IRouter

	ctx     context.Context
	befores []MiddlewareFunc
}

func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{Inner: gin.New(), ctx: ctx}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{
		Inner:   r.Inner.Group(pattern),
		ctx:     r.ctx,
		befores: append([]MiddlewareFunc{}, r.befores...),
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rutamapas/backend/pkg/errorx"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		req := new(Request)
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(req)
		case http.MethodPost:
			err = gctx.ShouldBindJSON(req)
		}

		if err != nil {
			gctx.JSON(http.StatusOK, newErrorResponse(
				errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		ctx := router.ctx
		for _, before := range router.befores {
			ctx, err = before(ctx, gctx.Request)
			if err != nil {
				gctx.JSON(http.StatusOK, newErrorResponse(err))
				return
			}
		}

		resp, err := handler(ctx, req)
		if err != nil {
			gctx.JSON(http.StatusOK, newErrorResponse(err))
			return
		}

		gctx.JSON(http.StatusOK, newResponse(resp))
	}
}

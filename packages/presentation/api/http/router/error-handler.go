package router

import (
	"net/http"

	Error "registry/packages/common/errors"
	controller "registry/packages/presentation/api/http/controllers"
	"registry/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

func handleHttpError(err error, ctx echo.Context) {
    if ctx.Response().Committed {
        return
    }

    code := http.StatusInternalServerError
    message := "Internal Server Error"

    if e, is := err.(*echo.HTTPError); is {
        code = e.Code
        if m, is := e.Message.(string); is {
            message = m
        }
    }

    status := Error.StatusText(code)

	reqMeta := request.GetMetadata(ctx)

    controller.Logger.Error(message, status, reqMeta)

    ctx.JSON(code, map[string]string{
        "error": status,
        "message": message,
    })
}

package utils

import (
	"github.com/kataras/iris/v12"
)

// CreateError writes the uniform error payload. Internal detail is logged
// by callers, never included here.
func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StatusCode(statusCode)
	ctx.JSON(iris.Map{
		"status": statusCode,
		"title":  title,
		"detail": detail,
	})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

func CreateUnauthorized(ctx iris.Context) {
	CreateError(iris.StatusUnauthorized, "Unauthorized", "Not allowed", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusBadRequest, "Conflict", "Email already registered", ctx)
}

// CreateInternalServerError returns a generic 500. The underlying error is
// for server-side logs only, never the response body.
func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", ctx)
}

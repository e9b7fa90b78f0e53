package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/viet-college/department-cms/internal/observability"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// RegisterMiddlewares attaches global middlewares. Order matters: the request
// logger wraps the error handler so it records the final status code.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts any returned error into the flat JSON
// error body: {"message": ..., "code": ..., "details": ...}. Internal errors
// are logged with their cause but surfaced without it.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				// Unmatched routes and other fiber-internal errors carry
				// their own status; don't mistake them for server faults.
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					metrics.RecordError(c.Path(), c.Method(), "HTTP_"+strconv.Itoa(fiberErr.Code))
					c.Status(fiberErr.Code)
					_ = c.JSON(fiber.Map{"message": fiberErr.Message})
					err = nil
					return
				}

				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

				response := fiber.Map{
					"message": domainErr.Message,
					"code":    domainErr.Code,
				}
				if len(domainErr.Details) > 0 {
					response["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/i474232898/home-dashboard/internal/common"
)

// errorResponse is the JSON envelope of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewApp builds the fiber app with the shared middleware and error handler.
// In production mode error details are never sent to the caller.
func NewApp(production bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "home-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          ErrorHandler(production),
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: log.StandardLogger().Writer(),
	}))
	app.Use(recover.New())

	return app
}

// ErrorHandler renders errors as {error, details?}.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		fields := log.Fields{
			"requestID": c.Locals("requestid"),
			"path":      c.Path(),
			"error":     err,
		}

		var appErr *common.Error
		if errors.As(err, &appErr) {
			fields["kind"] = appErr.Kind.String()
			log.WithFields(fields).Error("request failed")

			resp := errorResponse{Error: appErr.Message}
			if !production {
				resp.Details = appErr.Detail
			}
			return c.Status(appErr.StatusCode()).JSON(resp)
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		log.WithFields(fields).Warn("request failed")
		return c.Status(code).JSON(errorResponse{Error: err.Error()})
	}
}

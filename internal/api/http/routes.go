package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/home-dashboard/internal/dashboard"
	"github.com/i474232898/home-dashboard/internal/transit"
	"github.com/i474232898/home-dashboard/internal/weather"
)

// Services are the backends behind the routes. Dashboard may be nil, in
// which case the page and snapshot routes are not registered.
type Services struct {
	Transit   *transit.Service
	Weather   *weather.Service
	Dashboard *dashboard.Dashboard
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "home-dashboard",
		})
	})

	api := app.Group("/api")

	api.Get("/tube", func(c *fiber.Ctx) error {
		lines, err := svc.Transit.LineStatuses(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(lines)
	})

	api.Get("/weather", func(c *fiber.Ctx) error {
		snapshot, err := svc.Weather.Snapshot(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(snapshot)
	})

	api.Get("/weather/rain", func(c *fiber.Ctx) error {
		points, err := svc.Weather.RainOutlook(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(points)
	})

	if svc.Dashboard == nil {
		return
	}

	api.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(svc.Dashboard.Snapshot())
	})

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return svc.Dashboard.RenderPage(c, time.Now())
	})
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/core/repository"
)

// UnitOfWork attaches a fresh repository.Tracker to every request context so
// that tracked reads within one request share entity instances.
func UnitOfWork() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(repository.WithTracker(req.Context())))
			return next(c)
		}
	}
}

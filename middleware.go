package roofcms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/uproof/roofcms/store"
)

func (app *App) setupMiddleware() {
	e := app.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = app.httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.BodyLimit("12M"))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(cacheControlMiddleware)
}

// Admin API responses are never cacheable; uploaded images are immutable
// since they are named after the owning record's id.
func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/api/admin"):
			c.Response().Header().Set("Cache-Control", "no-store")
		case strings.HasPrefix(path, "/uploads/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		return next(c)
	}
}

func (app *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}

// storeError translates store-layer failures into the API's error
// contract: missing fields are 400, unknown identifiers are 404, and
// anything touching the filesystem is a logged 500.
func storeError(c echo.Context, err error) error {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Reason})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	default:
		c.Logger().Errorf("storage error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Storage failure"})
	}
}

package roofcms

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (app *App) handleSettingsGet(c echo.Context) error {
	settings, err := app.Settings.Load()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"settings": settings})
}

func (app *App) handleSettingsUpdate(c echo.Context) error {
	var body SiteSettings
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.CompanyName == "" || body.CompanyEmail == "" || body.CompanyPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Company name, email, and phone are required"})
	}

	if err := app.Settings.Save(body); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"settings": body})
}

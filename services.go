package roofcms

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (app *App) handleServiceList(c echo.Context) error {
	services, err := app.Services.Load()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"services": services})
}

func (app *App) handleServiceUpdate(c echo.Context) error {
	key := c.Param("key")

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.Title == "" || body.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and description are required"})
	}

	services, err := app.Services.Load()
	if err != nil {
		return storeError(c, err)
	}
	if _, ok := services[key]; !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("Service key %q not found", key)})
	}

	updated := Service{Title: body.Title, Description: body.Description}
	if _, err := app.Services.Update(func(m *map[string]Service) {
		(*m)[key] = updated
	}); err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"service": echo.Map{"key": key, "title": updated.Title, "description": updated.Description},
	})
}

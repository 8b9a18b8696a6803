package roofcms

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (app *App) handlePageList(c echo.Context) error {
	pages, err := app.Pages.All()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"pages": pages})
}

func (app *App) handlePageUpdate(c echo.Context) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if body.Title == "" || body.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and content are required"})
	}

	updated, err := app.Pages.Update(c.Param("slug"), func(p *Page) {
		p.Title = body.Title
		p.Content = body.Content
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": updated})
}

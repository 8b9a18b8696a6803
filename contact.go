package roofcms

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (app *App) handleContactList(c echo.Context) error {
	messages, err := app.Messages.All()
	if err != nil {
		return storeError(c, err)
	}
	// Newest first for the admin inbox.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})
	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}

func (app *App) handleContactCreate(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	// Public input: strip markup and validate before anything touches disk.
	msg := ContactMessage{
		ID:        uuid.NewString(),
		Name:      SanitizeInput(body.Name),
		Email:     SanitizeEmail(body.Email),
		Phone:     SanitizePhone(body.Phone),
		Subject:   SanitizeInput(body.Subject),
		Message:   SanitizeInput(body.Message),
		Read:      false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	created, err := app.Messages.Append(msg)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": created})
}

func (app *App) handleContactUpdate(c echo.Context) error {
	var body struct {
		Read bool `json:"read"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	updated, err := app.Messages.Update(c.Param("id"), func(m *ContactMessage) {
		m.Read = body.Read
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": updated})
}

func (app *App) handleContactDelete(c echo.Context) error {
	if _, err := app.Messages.Delete(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

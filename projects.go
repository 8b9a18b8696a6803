package roofcms

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/uproof/roofcms/store"
)

func (app *App) handleProjectList(c echo.Context) error {
	projects, err := app.Projects.All()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"projects": projects})
}

func (app *App) handleProjectCreate(c echo.Context) error {
	title := c.FormValue("title")
	location := c.FormValue("location")
	description := c.FormValue("description")
	if title == "" || location == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	id := uuid.NewString()

	imagePath, err := app.saveProjectImage(c, id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image: " + err.Error()})
	}

	project := Project{
		ID:          id,
		Title:       title,
		Location:    location,
		Description: description,
		Image:       imagePath,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	created, err := app.Projects.Append(project)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"project": created})
}

func (app *App) handleProjectUpdate(c echo.Context) error {
	id := c.Param("id")

	title := c.FormValue("title")
	location := c.FormValue("location")
	description := c.FormValue("description")
	if title == "" || location == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	existing, err := app.Projects.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
		}
		return storeError(c, err)
	}

	imagePath, err := app.saveProjectImage(c, id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image: " + err.Error()})
	}
	if imagePath != "" && existing.Image != "" && existing.Image != imagePath {
		app.removeUpload(existing.Image)
	}

	updated, err := app.Projects.Update(id, func(p *Project) {
		p.Title = title
		p.Location = location
		p.Description = description
		if imagePath != "" {
			p.Image = imagePath
		}
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"project": updated})
}

func (app *App) handleProjectDelete(c echo.Context) error {
	removed, err := app.Projects.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
		}
		return storeError(c, err)
	}
	if removed.Image != "" {
		app.removeUpload(removed.Image)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// saveProjectImage processes an optional multipart "image" field and
// writes it to the uploads directory named after the project id. Returns
// the site-relative image path, or "" when no file was sent.
func (app *App) saveProjectImage(c echo.Context, id string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file field in the form is not an error.
		return "", nil
	}
	if file.Size > maxUploadSize {
		return "", errors.New("file too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := processImage(src)
	if err != nil {
		return "", err
	}

	name := id + ".jpg"
	if err := store.WriteFileAtomic(filepath.Join(app.Config.UploadsDir, name), data); err != nil {
		return "", err
	}
	return "/uploads/projects/" + name, nil
}

// removeUpload deletes an uploaded asset by its site-relative path.
// Best effort: the owning record is already gone or rewritten, so a
// missing file is not an error worth surfacing.
func (app *App) removeUpload(imagePath string) {
	name := filepath.Base(imagePath)
	if name == "." || name == "/" {
		return
	}
	_ = os.Remove(filepath.Join(app.Config.UploadsDir, name))
}

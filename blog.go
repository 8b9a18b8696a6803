package roofcms

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const statusPublished = "published"

// blogInput carries the client-supplied fields of a blog post. The id is
// always assigned server-side.
type blogInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Status   string `json:"status"`
}

// blogPatch is the allow-list of fields an update may touch. Absent
// fields keep their stored values.
type blogPatch struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	Date     *string `json:"date"`
	ReadTime *string `json:"readTime"`
	Author   *string `json:"author"`
	Content  *string `json:"content"`
	Status   *string `json:"status"`
}

func (app *App) handleBlogList(c echo.Context) error {
	posts, err := app.Blog.All()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "posts": posts})
}

func (app *App) handleBlogCreate(c echo.Context) error {
	var in blogInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	posts, err := app.Blog.All()
	if err != nil {
		return storeError(c, err)
	}
	maxID := 0
	for _, p := range posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	post := BlogPost{
		ID:       maxID + 1,
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Category: in.Category,
		Date:     in.Date,
		ReadTime: in.ReadTime,
		Author:   in.Author,
		Content:  in.Content,
		Status:   in.Status,
	}
	if post.Status == "" {
		post.Status = statusPublished
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}

	created, err := app.Blog.Prepend(post)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "post": created})
}

func (app *App) handleBlogUpdate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"ok": false, "error": "Not found"})
	}

	var patch blogPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	updated, err := app.Blog.Update(strconv.Itoa(id), func(p *BlogPost) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Excerpt != nil {
			p.Excerpt = *patch.Excerpt
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Date != nil {
			p.Date = *patch.Date
		}
		if patch.ReadTime != nil {
			p.ReadTime = *patch.ReadTime
		}
		if patch.Author != nil {
			p.Author = *patch.Author
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "post": updated})
}

func (app *App) handleBlogDelete(c echo.Context) error {
	if _, err := app.Blog.Delete(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

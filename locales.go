package roofcms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/uproof/roofcms/store"
)

// localeRe matches BCP-47-ish locale tags like "lv", "en", "nl-BE".
// Anything else is rejected before it can become a file path.
var localeRe = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)

// localeStore persists localized UI copy as one JSON document per locale
// under the messages directory. Documents are free-form nested objects
// owned by the frontend, so they are handled as raw JSON rather than a
// Go schema.
type localeStore struct {
	dir string
	mu  sync.Mutex
}

func (s *localeStore) path(locale string) (string, error) {
	if !localeRe.MatchString(locale) {
		return "", store.ErrNotFound
	}
	return filepath.Join(s.dir, locale+".json"), nil
}

// Get returns the raw document for a locale.
func (s *localeStore) Get(locale string) ([]byte, error) {
	path, err := s.path(locale)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Put replaces a locale document wholesale. The body must be a JSON object.
func (s *localeStore) Put(locale string, body []byte) error {
	path, err := s.path(locale)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return store.Validationf("locale document must be a JSON object")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.WriteFileAtomic(path, body)
}

// SetKey updates a single dotted key path (e.g. "hero.title") inside a
// locale document, leaving every other key untouched. Returns the updated
// document.
func (s *localeStore) SetKey(locale, keyPath string, value json.RawMessage) ([]byte, error) {
	path, err := s.path(locale)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(value) {
		return nil, store.Validationf("value must be valid JSON")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	updated, err := sjson.SetRawBytes(data, keyPath, value)
	if err != nil {
		return nil, store.Validationf("invalid key path %q", keyPath)
	}
	if err := store.WriteFileAtomic(path, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (app *App) handleLocaleGet(c echo.Context) error {
	data, err := app.locales.Get(c.Param("locale"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"ok": false, "error": "Locale not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "messages": json.RawMessage(data)})
}

func (app *App) handleLocalePut(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": "Invalid payload"})
	}
	if err := app.locales.Put(c.Param("locale"), body); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"ok": false, "error": "Locale not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (app *App) handleLocalePatch(c echo.Context) error {
	var body struct {
		Path  string          `json:"path"`
		Value json.RawMessage `json:"value"`
	}
	if err := c.Bind(&body); err != nil || body.Path == "" || len(body.Value) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": "path and value are required"})
	}
	updated, err := app.locales.SetKey(c.Param("locale"), body.Path, body.Value)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"ok": false, "error": "Locale not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "messages": json.RawMessage(updated)})
}

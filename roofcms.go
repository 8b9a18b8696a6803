// Package roofcms is the content-management backend for the UpRoof
// marketing site. It serves the admin JSON API: session login, blog
// posts, portfolio projects, static pages, service descriptions, site
// settings, localized UI copy, and contact-form submissions. All content
// persists as flat JSON files through the store package; page rendering
// is owned by the site frontend, which consumes this API.
package roofcms

import (
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uproof/roofcms/store"
)

// App wires together the authenticator, the per-entity stores, and the
// Echo instance serving the admin API.
type App struct {
	Config Config
	Echo   *echo.Echo
	Auth   *Authenticator

	Blog     *store.Collection[BlogPost]
	Projects *store.Collection[Project]
	Pages    *store.Collection[Page]
	Messages *store.Collection[ContactMessage]
	Services *store.Document[map[string]Service]
	Settings *store.Document[SiteSettings]

	locales      *localeStore
	loginLimiter *loginLimiter
}

// New builds an App from cfg. It fails on deployment misconfiguration
// (missing secrets in production) rather than starting in a state that
// would accept any login.
func New(cfg Config) (*App, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TokenSecret == "" {
		log.Println("roofcms: ADMIN_TOKEN_SECRET not set, using insecure development secret")
		cfg.TokenSecret = devTokenSecret
	}

	app := &App{
		Config: cfg,
		Echo:   echo.New(),
		Auth:   NewAuthenticator(cfg.TokenSecret, cfg.SessionTTL),

		Blog: &store.Collection[BlogPost]{
			Path: filepath.Join(cfg.DataDir, "blog.json"),
			Key:  func(p BlogPost) string { return strconv.Itoa(p.ID) },
			Validate: func(p BlogPost) error {
				if p.Title == "" || p.Excerpt == "" {
					return store.Validationf("title and excerpt are required")
				}
				return nil
			},
		},
		Projects: &store.Collection[Project]{
			Path: filepath.Join(cfg.DataDir, "projects-admin.json"),
			Key:  func(p Project) string { return p.ID },
			Validate: func(p Project) error {
				if p.Title == "" || p.Location == "" || p.Description == "" {
					return store.Validationf("title, location and description are required")
				}
				return nil
			},
		},
		Pages: &store.Collection[Page]{
			Path: filepath.Join(cfg.DataDir, "pages.json"),
			Key:  func(p Page) string { return p.Slug },
			Seed: defaultPages,
		},
		Messages: &store.Collection[ContactMessage]{
			Path: filepath.Join(cfg.DataDir, "contact-messages.json"),
			Key:  func(m ContactMessage) string { return m.ID },
			Validate: func(m ContactMessage) error {
				if m.Name == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
					return store.Validationf("name, email, subject and message are required")
				}
				return nil
			},
		},
		Services: &store.Document[map[string]Service]{
			Path: filepath.Join(cfg.DataDir, "services.json"),
			Seed: defaultServices,
		},
		Settings: &store.Document[SiteSettings]{
			Path: filepath.Join(cfg.DataDir, "settings.json"),
			Seed: defaultSettings,
		},

		locales:      &localeStore{dir: cfg.MessagesDir},
		loginLimiter: newLoginLimiter(5, time.Minute),
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// Start runs the HTTP server on the configured address.
func (app *App) Start() error {
	if err := app.Echo.Start(app.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (app *App) setupRoutes() {
	e := app.Echo

	// Uploaded project images are public site assets.
	e.Static("/uploads/projects", app.Config.UploadsDir)

	api := e.Group("/api/admin")

	api.POST("/login", app.handleLogin)
	api.POST("/logout", app.handleLogout)
	api.GET("/me", app.handleMe)

	api.GET("/blog", app.handleBlogList)
	api.POST("/blog", app.handleBlogCreate, app.requireAdmin)
	api.PUT("/blog/:id", app.handleBlogUpdate, app.requireAdmin)
	api.DELETE("/blog/:id", app.handleBlogDelete, app.requireAdmin)

	api.GET("/projects", app.handleProjectList)
	api.POST("/projects", app.handleProjectCreate, app.requireAdmin)
	api.PATCH("/projects/:id", app.handleProjectUpdate, app.requireAdmin)
	api.DELETE("/projects/:id", app.handleProjectDelete, app.requireAdmin)

	api.GET("/pages", app.handlePageList)
	api.PATCH("/pages/:slug", app.handlePageUpdate, app.requireAdmin)

	api.GET("/services", app.handleServiceList)
	api.PATCH("/services/:key", app.handleServiceUpdate, app.requireAdmin)

	api.GET("/settings", app.handleSettingsGet)
	api.PATCH("/settings", app.handleSettingsUpdate, app.requireAdmin)

	// Contact form submissions come from the public site; everything else
	// on the inbox is admin-only.
	api.GET("/contact-messages", app.handleContactList, app.requireAdmin)
	api.POST("/contact-messages", app.handleContactCreate)
	api.PATCH("/contact-messages/:id", app.handleContactUpdate, app.requireAdmin)
	api.DELETE("/contact-messages/:id", app.handleContactDelete, app.requireAdmin)

	api.GET("/messages/:locale", app.handleLocaleGet)
	api.PUT("/messages/:locale", app.handleLocalePut, app.requireAdmin)
	api.PATCH("/messages/:locale", app.handleLocalePatch, app.requireAdmin)
}

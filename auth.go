package roofcms

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookie = "admin_session"
	tokenSubject  = "admin"
)

// tokenPayload is the signed portion of a session token. Timestamps are
// Unix milliseconds.
type tokenPayload struct {
	Sub string `json:"sub"`
	Iat int64  `json:"iat"`
	Exp int64  `json:"exp"`
}

// Authenticator issues and verifies stateless admin session tokens. A
// token is base64url(JSON payload) + "." + base64url(HMAC-SHA256 over the
// encoded payload). There is no server-side session state; expiry is the
// only invalidation mechanism.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator builds an Authenticator with the given HMAC secret and
// token lifetime.
func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (a *Authenticator) sign(payloadB64 string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(payloadB64))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SignToken issues a fresh admin session token.
func (a *Authenticator) SignToken() string {
	now := a.now()
	payload, _ := json.Marshal(tokenPayload{
		Sub: tokenSubject,
		Iat: now.UnixMilli(),
		Exp: now.Add(a.ttl).UnixMilli(),
	})
	payloadB64 := base64.RawURLEncoding.EncodeToString(payload)
	return payloadB64 + "." + a.sign(payloadB64)
}

// VerifyToken reports whether token is a well-formed, unexpired admin
// token carrying a valid signature. It fails closed: any malformed input
// is simply not authenticated, with no distinction between expired and
// forged surfaced to the caller.
func (a *Authenticator) VerifyToken(token string) bool {
	if token == "" {
		return false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}
	payloadB64, sig := parts[0], parts[1]
	expected := a.sign(payloadB64)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(payloadB64)
	if err != nil {
		return false
	}
	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}
	return payload.Sub == tokenSubject && a.now().UnixMilli() < payload.Exp
}

// isAdmin reports whether the current request carries a valid session cookie.
func (app *App) isAdmin(c echo.Context) bool {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return false
	}
	return app.Auth.VerifyToken(cookie.Value)
}

func (app *App) setAdminCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(app.Config.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   app.Config.CookieSecure,
	})
}

func (app *App) clearAdminCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   app.Config.CookieSecure,
	})
}

// requireAdmin guards mutating admin endpoints. Expired and forged tokens
// get the same answer.
func (app *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !app.isAdmin(c) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
		return next(c)
	}
}

func (app *App) handleLogin(c echo.Context) error {
	if !app.loginLimiter.Check(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"ok": false, "error": "Too many login attempts. Try again later."})
	}

	var body struct {
		Password string `json:"password"`
	}
	_ = c.Bind(&body)

	if app.Config.AdminPassword == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": "Server not configured: ADMIN_PASSWORD missing"})
	}

	if body.Password == "" || subtle.ConstantTimeCompare([]byte(body.Password), []byte(app.Config.AdminPassword)) != 1 {
		app.loginLimiter.Record(c.RealIP())
		return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "error": "Invalid credentials"})
	}

	app.setAdminCookie(c, app.Auth.SignToken())
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (app *App) handleLogout(c echo.Context) error {
	app.clearAdminCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (app *App) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": app.isAdmin(c)})
}

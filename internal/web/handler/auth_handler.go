package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/notify"
)

// AuthHandler serves the login, register and logout flows. It only ever talks
// to the session service; the session object itself stays out of reach.
type AuthHandler struct {
	sessions ports.SessionService
	bulletin *notify.Bulletin
	logger   zerolog.Logger
}

func NewAuthHandler(sessions ports.SessionService, bulletin *notify.Bulletin, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, bulletin: bulletin, logger: logger}
}

type authPage struct {
	page
	Email string
	Error string
}

func (h *AuthHandler) page(title string) page {
	return page{
		Title:   title,
		Session: h.sessions.Snapshot(),
		Flash:   h.bulletin.Current(),
	}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", authPage{page: h.page("Log in")})
}

// Login handles POST /login. Rejected credentials re-render the form with an
// inline error; only a transport-level failure is reported differently.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "login.html", authPage{
			page:  h.page("Log in"),
			Email: form.Email,
			Error: err.Error(),
		})
	}

	ok, err := h.sessions.Login(c.Request().Context(), domain.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("login failed")
		return c.Render(http.StatusOK, "login.html", authPage{
			page:  h.page("Log in"),
			Email: form.Email,
			Error: "Login is temporarily unavailable, please try again",
		})
	}
	if !ok {
		return c.Render(http.StatusOK, "login.html", authPage{
			page:  h.page("Log in"),
			Email: form.Email,
			Error: "Invalid email or password",
		})
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", authPage{page: h.page("Create account")})
}

// Register handles POST /register. Success does not sign the user in; they
// are sent to the login page instead.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "register.html", authPage{
			page:  h.page("Create account"),
			Email: form.Email,
			Error: err.Error(),
		})
	}

	ok, err := h.sessions.Register(c.Request().Context(), domain.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("register failed")
		return c.Render(http.StatusOK, "register.html", authPage{
			page:  h.page("Create account"),
			Email: form.Email,
			Error: "Registration is temporarily unavailable, please try again",
		})
	}
	if !ok {
		return c.Render(http.StatusOK, "register.html", authPage{
			page:  h.page("Create account"),
			Email: form.Email,
			Error: "Could not create the account",
		})
	}

	h.bulletin.Post("Account created, you can now log in", domain.SeverityInfo)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, "/")
}

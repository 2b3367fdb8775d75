package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/notify"
	"github.com/nordblog/console/internal/web/handler"
	"github.com/nordblog/console/internal/web/middleware"
	"github.com/nordblog/console/internal/web/view"
)

// Dependencies carries everything the router wires into handlers. Missing
// pieces are a wiring bug and fail fast in the constructors.
type Dependencies struct {
	Sessions ports.SessionService
	Posts    ports.PostService
	AuthAPI  ports.AuthAPI
	PostAPI  ports.PostAPI
	Bulletin *notify.Bulletin
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Handlers ---
	pages := handler.NewPagesHandler(deps.PostAPI, deps.Sessions, deps.Bulletin, deps.Logger)
	auth := handler.NewAuthHandler(deps.Sessions, deps.Bulletin, deps.Logger)
	admin := handler.NewAdminHandler(deps.Posts, deps.Sessions, deps.Bulletin)

	// --- Public pages ---
	e.GET("/", pages.Home)
	e.GET("/posts", pages.Posts)
	e.GET("/posts/:id", pages.PostDetail)
	e.GET("/login", auth.LoginPage)
	e.POST("/login", auth.Login)
	e.GET("/register", auth.RegisterPage)
	e.POST("/register", auth.Register)
	e.POST("/logout", auth.Logout)

	// --- Gated admin area ---
	g := e.Group("/admin", middleware.Gate(deps.Sessions))
	g.GET("", admin.Dashboard)
	g.POST("/posts", admin.Submit)
	g.POST("/posts/:id/edit", admin.Edit)
	g.POST("/edit/cancel", admin.CancelEdit)
	g.POST("/posts/:id/delete", admin.RequestDelete)
	g.POST("/delete/cancel", admin.CancelDelete)
	g.POST("/delete/confirm", admin.ConfirmDelete)

	// --- Probes and metrics (no gate) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.AuthAPI).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nordblog/console/internal/core/ports"
	"github.com/nordblog/console/internal/metrics"
)

// Gate guards privileged routes. It is a pure function of the current session
// snapshot, re-evaluated on every request:
//
//   - checking: render a non-interactive placeholder. Redirecting here would
//     flash the login page at users whose probe is still in flight.
//   - anonymous: redirect to the login page. 303 leaves no history entry for
//     the gated URL, so back-navigation does not return here.
//   - authenticated: pass through untouched.
func Gate(sessions ports.SessionService) echo.MiddlewareFunc {
	if sessions == nil {
		panic("middleware: Gate requires a session service")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := sessions.Snapshot()
			switch {
			case !snap.Settled():
				metrics.GateDecisionsTotal.WithLabelValues("checking").Inc()
				return c.Render(http.StatusOK, "checking.html", nil)
			case snap.Authenticated():
				metrics.GateDecisionsTotal.WithLabelValues("granted").Inc()
				return next(c)
			default:
				metrics.GateDecisionsTotal.WithLabelValues("redirected").Inc()
				return c.Redirect(http.StatusSeeOther, "/login")
			}
		}
	}
}

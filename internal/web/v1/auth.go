package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dramon11/boat-rental/config"
	"github.com/dramon11/boat-rental/internal/core/domain"
	logicv1 "github.com/dramon11/boat-rental/internal/logic/v1"
	"github.com/dramon11/boat-rental/middleware"
)

// LoginPage renders the login form. A previous failed attempt redirects back
// here with ?error=invalid_credentials.
func (h *Handler) LoginPage(c *gin.Context) {
	var msg string
	if c.Query("error") == "invalid_credentials" {
		msg = "Invalid username or password"
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": msg})
}

// Login handles a credential submission, from the HTML form or a JSON client.
//
// On success the session token travels over the configured transport: cookie
// deployments set the session cookie and redirect to the dashboard, header
// deployments return the token as JSON for the client to present as a Bearer
// header.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		h.loginFailure(c, http.StatusBadRequest, "username and password are required")
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	response, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")

		if errors.Is(err, logicv1.ErrInvalidCredentials) {
			h.loginFailure(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.loginFailure(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info().Int("user_id", response.User.ID).Msg("Login successful")

	if h.authCfg.Transport == config.TransportCookie {
		maxAge := int(h.authCfg.TokenTTL.Seconds())
		middleware.SetSessionCookie(c, h.authCfg.CookieName, response.Token, maxAge, h.authCfg.CookieSecure)
		if wantsJSON(c) {
			c.Status(http.StatusNoContent)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.JSON(http.StatusOK, response)
}

// loginFailure reports a failed login in the caller's dialect: JSON clients
// get the status code, form posts a redirect back to the login page.
func (h *Handler) loginFailure(c *gin.Context, status int, msg string) {
	if wantsJSON(c) {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if status == http.StatusUnauthorized {
		c.Redirect(http.StatusSeeOther, "/login?error=invalid_credentials")
		return
	}
	c.HTML(status, "login.html", gin.H{"Error": msg})
}

// Logout ends the session: the cookie is discarded (or, in header mode, the
// client simply drops the token) and, under strict logout, the server-side
// session row is revoked so the token stops validating immediately.
func (h *Handler) Logout(c *gin.Context) {
	token := ""
	if h.authCfg.Transport == config.TransportCookie {
		token, _ = c.Cookie(h.authCfg.CookieName)
	} else {
		const bearerPrefix = "Bearer "
		if header := c.GetHeader("Authorization"); len(header) > len(bearerPrefix) {
			token = header[len(bearerPrefix):]
		}
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Session revocation failed")
	}

	if h.authCfg.Transport == config.TransportCookie {
		middleware.ClearSessionCookie(c, h.authCfg.CookieName, h.authCfg.CookieSecure)
		if !wantsJSON(c) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user behind the current session.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		writeLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	})
}

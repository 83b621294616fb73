package middleware

import (
	"github.com/nirajdighe005/alj-java-challenge/internal/auth"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/apperror"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/contextutil"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BasicAuthorizer checks every request against the ordered rule table and,
// where the matched rule demands it, verifies HTTP basic credentials against
// the in-memory principal store. Credentials are re-verified on every
// request; no session state is kept. Denials render 403 with the common
// failure envelope.
func BasicAuthorizer(store *auth.Store, rules auth.Rules, logger *zap.Logger) gin.HandlerFunc {
	l := logger.Named("authorizer")

	deny := func(c *gin.Context, reason string) {
		l.Warn("access denied",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("reason", reason),
			zap.String("request_id", c.GetString("request_id")),
		)
		response.Exception(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Message)
		c.Abort()
	}

	return func(c *gin.Context) {
		req := rules.Evaluate(c.Request.Method, c.Request.URL.Path)
		if req.Kind == auth.Public {
			c.Next()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			deny(c, "missing basic credentials")
			return
		}

		principal, err := store.Authenticate(username, password)
		if err != nil {
			deny(c, "invalid credentials")
			return
		}

		if !req.Satisfied(principal.Role) {
			deny(c, "role not permitted")
			return
		}

		c.Set("username", principal.Username)
		c.Set("role", principal.Role)

		ctx := contextutil.WithUsername(c.Request.Context(), principal.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens and resolves the authenticated user. A valid token whose user no
// longer exists aborts with 404, same as any other missing resource.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authorization header required"))
			return
		}

		// The scheme is the literal "Bearer", exact case.
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authorization header format must be Bearer {token}"))
			return
		}

		userID, err := tokenSvc.ValidateAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid or expired token"))
			return
		}

		if _, err := userSvc.GetUserByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", "user_id", userID)
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse("user not found"))
				return
			}
			logger.Error("Failed to resolve token subject", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
			return
		}

		// Store the user ID in the request context
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/infrastructure/auth"
	"github.com/baletrack/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	PrincipalKey  = "principal"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// JWTAuthMiddleware creates JWT authentication middleware with custom
// config. It validates the bearer token, checks revocation, and places a
// verified access.Principal in the context for handlers.
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil && claims.ID != "" {
			blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open for availability; revocation is best-effort
				if cfg.Logger != nil {
					cfg.Logger.Error("Failed to check token blacklist",
						zap.String("jti", claims.ID),
						zap.Error(err))
				}
			} else if blacklisted {
				abortUnauthorized(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
				return
			}
		}

		principal, err := principalFromClaims(claims)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token carries invalid identity")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(PrincipalKey, principal)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		ctx, _ = logger.WithCompanyID(ctx, log, claims.CompanyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// principalFromClaims converts validated claims into a Principal. A token
// with a malformed ID or a role this build does not know is rejected
// outright rather than defaulted.
func principalFromClaims(claims *auth.Claims) (access.Principal, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return access.Principal{}, auth.ErrInvalidClaims
	}
	companyID, err := claims.GetCompanyUUID()
	if err != nil {
		return access.Principal{}, auth.ErrInvalidClaims
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return access.Principal{}, auth.ErrInvalidClaims
	}
	return access.Principal{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}, nil
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case auth.ErrInvalidToken:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token"
	case auth.ErrInvalidTokenType:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token type"
	case auth.ErrInvalidClaims:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token claims"
	case auth.ErrTokenNotYetValid:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Token is not yet valid"
	case auth.ErrTokenBlacklisted:
		errorCode = "TOKEN_REVOKED"
		errorMessage = "Token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetPrincipal retrieves the verified principal from gin.Context. The
// second return is false on routes that skipped authentication.
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	if value, exists := c.Get(PrincipalKey); exists {
		if principal, ok := value.(access.Principal); ok {
			return principal, true
		}
	}
	return access.Principal{}, false
}

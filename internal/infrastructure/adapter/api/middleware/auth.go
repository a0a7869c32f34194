package middleware

import (
	"errors"
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Gin context keys set by Auth
const (
	SubjectKey = "auth_subject"
	RoleKey    = "auth_role"
)

// roleClaim names the JWT claim carrying the caller's role
const roleClaim = "role"

// AuthConfig configures bearer token checks. Tokens whose role claim equals
// ServiceRole belong to backend services and may act on any account.
type AuthConfig struct {
	Secret      string
	Issuer      string
	ServiceRole string
}

// Auth middleware requires an HS256 bearer token whose subject owns the :userId
// path parameter, unless the token carries the service role
func Auth(config AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	secret := []byte(config.Secret)
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if config.Issuer != "" {
		options = append(options, jwt.WithIssuer(config.Issuer))
	}
	parser := jwt.NewParser(options...)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c, logger, http.StatusUnauthorized, domainerr.ErrUnauthorized, "missing bearer token")
			return
		}

		token, err := parser.Parse(raw, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			reason := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				reason = "token expired"
			}
			reject(c, logger, http.StatusUnauthorized, domainerr.ErrUnauthorized, reason)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			reject(c, logger, http.StatusUnauthorized, domainerr.ErrUnauthorized, "token has no subject")
			return
		}
		role := tokenRole(token)
		isService := config.ServiceRole != "" && role == config.ServiceRole
		if userID := c.Param("userId"); userID != "" && userID != subject && !isService {
			reject(c, logger, http.StatusForbidden, domainerr.ErrForbidden, "token subject does not own this account")
			return
		}

		c.Set(SubjectKey, subject)
		c.Set(RoleKey, role)
		c.Next()
	}
}

// RequireRole lets through only requests that Auth admitted with the given role
func RequireRole(role string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role == "" || c.GetString(RoleKey) != role {
			reject(c, logger, http.StatusForbidden, domainerr.ErrForbidden, "route requires the "+role+" role")
			return
		}
		c.Next()
	}
}

func tokenRole(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims[roleClaim].(string)
	return role
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func reject(c *gin.Context, logger coreport.Logger, status int, err error, reason string) {
	logger.Warn("Request rejected by auth", map[string]any{
		"path":       c.FullPath(),
		"user_id":    c.Param("userId"),
		"reason":     reason,
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
	})
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: reason,
	})
}

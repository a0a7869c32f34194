package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newAuthRouter(config AuthConfig) *gin.Engine {
	router := gin.New()
	router.GET("/user/:userId/balance", Auth(config, logger.NewNoopLogger()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SubjectKey))
	})
	return router
}

func callWithToken(router *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	router := newAuthRouter(AuthConfig{Secret: testSecret, Issuer: "docqa"})
	valid := jwt.MapClaims{
		"sub": "user-1",
		"iss": "docqa",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	t.Run("should pass the owner through", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid)

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("should answer 401 without a token", func(t *testing.T) {
		w := callWithToken(router, "/user/user-1/balance", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4010`)
	})

	t.Run("should answer 401 for a non-bearer scheme", func(t *testing.T) {
		w := callWithToken(router, "/user/user-1/balance", "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should answer 401 for a wrong signature", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), valid)

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should answer 401 for an expired token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1",
			"iss": "docqa",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("should answer 401 for another issuer", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "user-1", "iss": "elsewhere"})

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should answer 401 for another algorithm", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid)

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should answer 401 without a subject", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"iss": "docqa"})

		w := callWithToken(router, "/user/user-1/balance", "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should answer 403 for another user's account", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid)

		w := callWithToken(router, "/user/user-2/balance", "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4030`)
		assert.Equal(t, domainerr.CodeForbidden, domainerr.ErrorCode(domainerr.ErrForbidden))
	})
}

func TestServiceRole(t *testing.T) {
	config := AuthConfig{Secret: testSecret, Issuer: "docqa", ServiceRole: "service"}
	router := gin.New()
	log := logger.NewNoopLogger()
	router.GET("/user/:userId/credits/credit", Auth(config, log), RequireRole(config.ServiceRole, log), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RoleKey))
	})
	router.GET("/user/:userId/balance", Auth(config, log), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SubjectKey))
	})
	claims := func(sub, role string) jwt.MapClaims {
		c := jwt.MapClaims{"sub": sub, "iss": "docqa", "exp": time.Now().Add(time.Hour).Unix()}
		if role != "" {
			c["role"] = role
		}
		return c
	}

	t.Run("should refuse a credit grant to the account owner without the role", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims("user-1", ""))

		w := callWithToken(router, "/user/user-1/credits/credit", "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4030`)
	})

	t.Run("should refuse a token with another role", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims("user-1", "admin"))

		w := callWithToken(router, "/user/user-1/credits/credit", "Bearer "+token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("should let a service token grant credits on any account", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims("billing", "service"))

		w := callWithToken(router, "/user/user-1/credits/credit", "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "service", w.Body.String())
	})

	t.Run("should let a service token read any account", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims("billing", "service"))

		w := callWithToken(router, "/user/user-2/balance", "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "billing", w.Body.String())
	})

	t.Run("should refuse everything when no role is configured", func(t *testing.T) {
		open := gin.New()
		open.GET("/user/:userId/credits/credit", RequireRole("", log), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := callWithToken(open, "/user/user-1/credits/credit", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)

	_, ok = bearerToken("abc.def")
	assert.False(t, ok)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })
	return service.NewAuthService()
}

func issueToken(t *testing.T, authService *service.AuthService, role string) string {
	t.Helper()
	token, err := authService.IssueToken(&model.User{
		Id:          "account-1",
		CompanyName: "Acme Metals",
		Email:       "admin@acme.com",
		Role:        role,
	})
	assert.NoError(t, err)
	return token
}

func serve(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := testAuthService(t)

	engine := gin.New()
	engine.GET("/", JWTAuth(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		c.String(http.StatusOK, claims.Id)
	})

	w := serve(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(engine, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(engine, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := issueToken(t, authService, model.RoleUser)
	w = serve(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "account-1", w.Body.String())
}

func TestOptionalJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := testAuthService(t)

	engine := gin.New()
	engine.GET("/", OptionalJWTAuth(authService), func(c *gin.Context) {
		if claims := GetClaims(c); claims != nil {
			c.String(http.StatusOK, claims.Id)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	// Missing and invalid tokens both pass through without identity.
	w := serve(engine, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = serve(engine, "Bearer not-a-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	token := issueToken(t, authService, model.RoleUser)
	w = serve(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "account-1", w.Body.String())
}

func TestRoleRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := testAuthService(t)

	engine := gin.New()
	engine.GET("/", OptionalJWTAuth(authService), RoleRequired(model.RoleAdmin, model.RoleSuperAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// No identity attached.
	w := serve(engine, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Role outside the set.
	token := issueToken(t, authService, model.RoleUser)
	w = serve(engine, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	token = issueToken(t, authService, model.RoleAdmin)
	w = serve(engine, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

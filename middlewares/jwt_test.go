package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET(
		"/private",
		JWTMiddleware(),
		RolesMiddleware(models.ADMIN, models.EDITOR),
		func(ctx *gin.Context) {
			claims, _ := services.NewClaimsFromContext(ctx)
			ctx.String(http.StatusOK, claims.Email)
		},
	)
	return router
}

func signedToken(t *testing.T, userType string) string {
	t.Helper()
	token, err := services.NewSignedToken(&models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		UserType: userType,
	})
	if err != nil {
		t.Fatalf("NewSignedToken returned error: %v", err)
	}
	return token
}

func TestJWTMiddlewareNoToken(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareCookie(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{
		Name:  "token",
		Value: signedToken(t, models.EDITOR),
	})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "jane@example.com" {
		t.Fatalf("claims not set in context: %q", w.Body.String())
	}
}

func TestJWTMiddlewareAuthorizationHeader(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, models.ADMIN))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRolesMiddlewareRejectsUnknownRole(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{
		Name:  "token",
		Value: signedToken(t, "viewer"),
	})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

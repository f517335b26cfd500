package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"budgetbook/internal/models"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := setupAuthRouter()
	user := &models.User{ID: 42, Username: "alice"}

	t.Run("valid_token", func(t *testing.T) {
		token, err := GenerateToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		w := doProtected(router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		w := doProtected(router, "")
		assertUnauthorized(t, w)
	})

	t.Run("malformed_header", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
			w := doProtected(router, header)
			assertUnauthorized(t, w)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		w := doProtected(router, "Bearer not.a.token")
		assertUnauthorized(t, w)
	})

	t.Run("expired_token", func(t *testing.T) {
		claims := &JWTClaims{
			UserID:   user.ID,
			Username: user.Username,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTKey())
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		w := doProtected(router, "Bearer "+token)
		assertUnauthorized(t, w)
	})

	t.Run("wrong_signing_key", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-elses-key"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		w := doProtected(router, "Bearer "+token)
		assertUnauthorized(t, w)
	})
}

func assertUnauthorized(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	want := `{"message":"You must be authenticated to use this route."}`
	if w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "0123456789abcdef-test"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signed(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func setupRouter(t *testing.T) *ginext.Engine {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))
	r.GET("/me", Auth(testSecret), func(c *ginext.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, p)
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupRouter(t)
	token := signed(t, jwt.SigningMethodHS256, testSecret, Claims{
		Email: "Guest@IITRPR.ac.in",
		Name:  "Guest",
		Role:  "hod  computer science",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Email":"guest@iitrpr.ac.in"`)
	assert.Contains(t, w.Body.String(), `"Role":"HOD COMPUTER SCIENCE"`)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuth_Rejects(t *testing.T) {
	valid := Claims{Email: "guest@iitrpr.ac.in", Role: "USER"}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signed(t, jwt.SigningMethodHS256, "another-secret-value", valid)},
		{"wrong algorithm", "Bearer " + signed(t, jwt.SigningMethodHS512, testSecret, valid)},
		{"expired", "Bearer " + signed(t, jwt.SigningMethodHS256, testSecret, expired)},
		{"no role", "Bearer " + signed(t, jwt.SigningMethodHS256, testSecret, Claims{Email: "guest@iitrpr.ac.in"})},
	}

	r := setupRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestID_KeepsInbound(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), "req-7")
}

func TestPrincipalFrom_WithoutAuth(t *testing.T) {
	r := setupRouter(t)
	r.GET("/anon", func(c *ginext.Context) {
		if _, ok := PrincipalFrom(c); ok {
			c.Status(http.StatusOK)
			return
		}
		c.Set(PrincipalKey, "not a principal")
		if _, ok := PrincipalFrom(c); ok {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusUnauthorized)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

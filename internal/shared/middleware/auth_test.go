package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/pkg/jwt"
)

const (
	testSecret   = "test-secret"
	testAuthorID = "64b7f0c2a1b2c3d4e5f60718"
	testHeader   = "x-api-key"
)

type verifierFunc func(string) (*jwt.Claims, error)

func (f verifierFunc) ValidateToken(token string) (*jwt.Claims, error) { return f(token) }

func claimsAuthorID(c *gin.Context) string {
	claims, ok := GetClaims(c)
	if !ok {
		return ""
	}
	return claims.AuthorID
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/private", Auth(verifier, testHeader), func(c *gin.Context) {
		id, _ := GetAuthorID(c)
		c.JSON(http.StatusOK, gin.H{
			"authorId": id,
			"fromCtx":  AuthorIDFromContext(c.Request.Context()),
			"claims":   claimsAuthorID(c),
		})
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set(testHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuth_MissingToken(t *testing.T) {
	r := newAuthRouter(jwt.NewManager(testSecret, time.Hour))

	w := doGet(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

func TestAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager(testSecret, time.Hour)
	token, err := manager.GenerateToken(testAuthorID)
	require.NoError(t, err)

	r := newAuthRouter(manager)

	for _, header := range []string{token, "Bearer " + token} {
		w := doGet(r, header)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, testAuthorID, body["authorId"])
		assert.Equal(t, testAuthorID, body["fromCtx"])
		assert.Equal(t, testAuthorID, body["claims"])
	}
}

func TestAuth_InvalidAndExpiredToken(t *testing.T) {
	manager := jwt.NewManager(testSecret, time.Hour)
	foreign, err := jwt.NewManager("other-secret", time.Hour).GenerateToken(testAuthorID)
	require.NoError(t, err)
	expired, err := jwt.NewManager(testSecret, -time.Minute).GenerateToken(testAuthorID)
	require.NoError(t, err)

	r := newAuthRouter(manager)

	for name, token := range map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			w := doGet(r, token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "INVALID_TOKEN", decode(t, w)["code"])
		})
	}
}

func TestAuth_VerifierFailureIsServerFault(t *testing.T) {
	failing := verifierFunc(func(string) (*jwt.Claims, error) {
		return nil, errors.New("key store unavailable")
	})
	panicking := verifierFunc(func(string) (*jwt.Claims, error) {
		panic("boom")
	})

	for name, v := range map[string]TokenVerifier{"error": failing, "panic": panicking} {
		t.Run(name, func(t *testing.T) {
			w := doGet(newAuthRouter(v), "some-token")
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "INTERNAL_SERVER_ERROR", decode(t, w)["code"])
		})
	}
}

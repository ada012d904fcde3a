package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.Issuer = "test"
	Init()

	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken(7, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "test", claims.Issuer)

	expired, err := GenerateToken(7, "alice", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := setupJWT(t)
	token, err := GenerateToken(3, "bob", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{"bearer header", "Bearer " + token, "", http.StatusOK},
		{"cookie", "", token, http.StatusOK},
		{"malformed header", "Token " + token, "", http.StatusUnauthorized},
		{"missing", "", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

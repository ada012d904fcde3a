package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/pkg/response"
	"github.com/linskybing/litreview-go/pkg/utils"
	"gorm.io/gorm"
)

// Auth holds checks that need the user store.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// ActiveUser rejects tokens whose user no longer exists.
func (a *Auth) ActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := a.repos.User.GetUserByID(uid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "user no longer exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		c.Next()
	}
}

// LoggingMiddleware prints one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		uid, _ := utils.GetUserIDFromContext(c)
		log.Printf("%s %s %d %s uid=%d", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), uid)
	}
}

var allowedOriginPrefixes = []string{
	"http://localhost:",
	"http://127.0.0.1:",
}

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, prefix := range allowedOriginPrefixes {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/pkg/response"
	"github.com/linskybing/projecthub-go/pkg/types"
	"gorm.io/gorm"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// ActiveUser rejects tokens whose user no longer exists or has been deactivated.
func (a *Auth) ActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		u, err := a.repos.WithContext(c.Request.Context()).User.GetUserByID(claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort(c, http.StatusUnauthorized, "unknown user")
			return
		}
		if err != nil {
			log.Printf("[Auth] user lookup %d failed: %v", claims.UserID, err)
			response.Abort(c, http.StatusInternalServerError, "internal error")
			return
		}
		if !u.IsActive {
			response.Abort(c, http.StatusForbidden, "account is inactive")
			return
		}
		c.Next()
	}
}

// RequireRole lets the request through when the caller holds one of roles. Admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		if !claims.HasRole(roles...) {
			response.Abort(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows origins starting with one of the configured prefixes.
func CORSMiddleware(allowedPrefixes []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, p := range allowedPrefixes {
				if strings.HasPrefix(origin, p) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/linskybing/portal-go/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// requireRole re-reads the caller's row so role changes apply without a new token.
func (a *Auth) requireRole(msg string, allowed func(user.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Error: "Invalid token claims",
				Code:  string(i18n.KeyErrUnauthorized),
			})
			return
		}

		u, err := a.repos.User.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Error: "account not found",
				Code:  string(i18n.KeyErrUnauthorized),
			})
			return
		}
		if !allowed(u.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{
				Error: msg,
				Code:  string(i18n.KeyErrForbidden),
			})
			return
		}

		claims.Role = string(u.Role)
		c.Next()
	}
}

// Resolve refreshes the role in the claims from the stored user, for routes without a role gate.
func (a *Auth) Resolve() gin.HandlerFunc {
	return a.requireRole("", func(user.Role) bool { return true })
}

// Admin lets staff (admin or super_admin) through.
func (a *Auth) Admin() gin.HandlerFunc {
	return a.requireRole("admin only", user.Role.IsStaff)
}

// SuperAdmin guards role management.
func (a *Auth) SuperAdmin() gin.HandlerFunc {
	return a.requireRole("super admin only", func(r user.Role) bool {
		return r == user.RoleSuperAdmin
	})
}

// CORSMiddleware allows the configured front-end origins with credentials.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	corsHandler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

// SecurityHeaders sets conservative browser hardening headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/internal/repository/mock"
	"github.com/linskybing/portal-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAuth(t *testing.T) (*Auth, *mock.MockUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepo(ctrl)
	return NewAuth(&repository.Repos{User: users}), users
}

func gatedRouter(gate gin.HandlerFunc, claims *types.Claims) *gin.Engine {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		c.Next()
	}, gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.MustGet("claims").(*types.Claims).Role})
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	return w
}

func TestAdmin_AllowsStaffRoles(t *testing.T) {
	for _, role := range []user.Role{user.RoleAdmin, user.RoleSuperAdmin} {
		auth, users := setupAuth(t)
		users.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3, Role: role}, nil)

		w := serve(gatedRouter(auth.Admin(), &types.Claims{UserID: 3, Role: "customer"}))
		assert.Equal(t, http.StatusOK, w.Code)
		// the stored role wins over the one in the token
		assert.Contains(t, w.Body.String(), string(role))
	}
}

func TestAdmin_RejectsCustomer(t *testing.T) {
	auth, users := setupAuth(t)
	users.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3, Role: user.RoleCustomer}, nil)

	w := serve(gatedRouter(auth.Admin(), &types.Claims{UserID: 3, Role: "admin"}))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin only")
}

func TestAdmin_UnknownUser(t *testing.T) {
	auth, users := setupAuth(t)
	users.EXPECT().GetByID(uint(3)).Return(user.User{}, gorm.ErrRecordNotFound)

	w := serve(gatedRouter(auth.Admin(), &types.Claims{UserID: 3}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_NoClaims(t *testing.T) {
	auth, _ := setupAuth(t)
	w := serve(gatedRouter(auth.Admin(), nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperAdmin_RejectsAdmin(t *testing.T) {
	auth, users := setupAuth(t)
	users.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3, Role: user.RoleAdmin}, nil)

	w := serve(gatedRouter(auth.SuperAdmin(), &types.Claims{UserID: 3}))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "super admin only")
}

func TestResolve_RefreshesRole(t *testing.T) {
	auth, users := setupAuth(t)
	users.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3, Role: user.RoleCustomer}, nil)

	w := serve(gatedRouter(auth.Resolve(), &types.Claims{UserID: 3, Role: "admin"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestResolve_DeletedUser(t *testing.T) {
	auth, users := setupAuth(t)
	users.EXPECT().GetByID(uint(3)).Return(user.User{}, gorm.ErrRecordNotFound)

	w := serve(gatedRouter(auth.Resolve(), &types.Claims{UserID: 3, Role: "admin"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://portal.example/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://portal.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://portal.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

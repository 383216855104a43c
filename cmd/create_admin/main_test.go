package main

import (
	"testing"

	"github.com/linskybing/portal-go/internal/config/db"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureSuperAdmin(t *testing.T) {
	gormDB, err := db.Open("sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	repos := repository.NewRepositories(gormDB)

	u, err := ensureSuperAdmin(repos, "root@example.com", "password123", "Root")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))

	customer := user.User{Email: "awa@example.com", Password: "x", Name: "Awa", Role: user.RoleCustomer}
	require.NoError(t, repos.User.Create(&customer))

	promoted, err := ensureSuperAdmin(repos, "awa@example.com", "ignored-pass", "Awa")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, promoted.ID)

	stored, err := repos.User.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, stored.Role)
	assert.Equal(t, "x", stored.Password)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleValid(t *testing.T) {
	assert.True(t, UserRoleUser.Valid())
	assert.True(t, UserRoleAdmin.Valid())
	assert.True(t, UserRoleSuperAdmin.Valid())
	assert.False(t, UserRole("owner").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUserRoleIsAdmin(t *testing.T) {
	assert.False(t, UserRoleUser.IsAdmin())
	assert.True(t, UserRoleAdmin.IsAdmin())
	assert.True(t, UserRoleSuperAdmin.IsAdmin())
}

func TestUserUpdateEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.Empty())

	name := "Jane"
	assert.False(t, UserUpdate{FirstName: &name}.Empty())
	assert.False(t, UserUpdate{PasswordHash: []byte("hash")}.Empty())
}

func TestProductUpdateEmpty(t *testing.T) {
	assert.True(t, ProductUpdate{}.Empty())

	active := false
	assert.False(t, ProductUpdate{IsActive: &active}.Empty())
	assert.False(t, ProductUpdate{Images: []string{"a.jpg"}}.Empty())
}

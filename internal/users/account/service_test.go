// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/yomira-cms/internal/platform/apperr"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/internal/users/account"
	"github.com/taibuivan/yomira-cms/pkg/pointer"
)

func newService() *account.Service {
	return account.NewService(account.NewMemoryRepository(), sec.PlainPasswords{})
}

var alice = account.RegisterInput{Username: "alice", Password: "pw", Email: "a@x.io", Fullname: "Alice A"}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name string
		role sec.Role
	}{
		{"user", sec.RoleUser},
		{"admin", sec.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			service := newService()

			registration, err := service.Register(ctx, alice, tt.role)
			require.NoError(t, err)
			assert.False(t, registration.Exists)
			require.NotNil(t, registration.SavedUser)
			assert.NotEmpty(t, registration.SavedUser.ID)
			assert.Equal(t, tt.role, registration.SavedUser.Role)
		})
	}
}

func TestService_RegisterTakenUsername(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Register(ctx, alice, sec.RoleUser)
	require.NoError(t, err)

	again := alice
	again.Email = "other@x.io"
	registration, err := service.Register(ctx, again, sec.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, registration.Exists)
	assert.Nil(t, registration.SavedUser)

	users, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, sec.RoleUser, users[0].Role)
}

func TestService_RegisterDuplicateEmailIsStoreError(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Register(ctx, alice, sec.RoleUser)
	require.NoError(t, err)

	other := alice
	other.Username = "bob"
	_, err = service.Register(ctx, other, sec.RoleUser)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusInternalServerError, appError.HTTPStatus)
	assert.Equal(t, "Failed to create user", appError.Message)
}

func TestService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Register(ctx, account.RegisterInput{Username: "alice"}, sec.RoleUser)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 3)

	users, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	service := newService()

	registration, err := service.Register(ctx, alice, sec.RoleAdmin)
	require.NoError(t, err)

	t.Run("unknown_account", func(t *testing.T) {
		result, err := service.Login(ctx, account.LoginInput{Username: "nobody", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, &account.LoginResult{
			Exists:  false,
			Message: "account not found",
			Error:   "account not found",
		}, result)
	})

	t.Run("wrong_password", func(t *testing.T) {
		result, err := service.Login(ctx, account.LoginInput{Username: "alice", Password: "nope"})
		require.NoError(t, err)
		assert.Equal(t, &account.LoginResult{
			Exists:  true,
			Message: "login failed",
			Error:   "wrong password",
		}, result)
	})

	t.Run("success", func(t *testing.T) {
		result, err := service.Login(ctx, account.LoginInput{Username: "alice", Password: "pw"})
		require.NoError(t, err)
		assert.True(t, result.Exists)
		require.NotNil(t, result.Role)
		assert.Equal(t, sec.RoleAdmin, *result.Role)
		assert.Equal(t, registration.SavedUser.ID, result.ID)
		assert.Equal(t, "Alice A", result.Fullname)
		assert.Equal(t, "a@x.io", result.Email)
		assert.Equal(t, "login succeeded", result.Message)
		assert.Empty(t, result.Error)
	})
}

func TestService_LoginWithBcrypt(t *testing.T) {
	ctx := context.Background()
	service := account.NewService(account.NewMemoryRepository(), sec.BcryptPasswords{Cost: bcrypt.MinCost})

	registration, err := service.Register(ctx, alice, sec.RoleUser)
	require.NoError(t, err)

	user, err := service.Get(ctx, registration.SavedUser.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", user.Password)

	result, err := service.Login(ctx, account.LoginInput{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "login succeeded", result.Message)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	service := newService()

	registration, err := service.Register(ctx, alice, sec.RoleUser)
	require.NoError(t, err)
	id := registration.SavedUser.ID

	updated, err := service.Update(ctx, id, account.UpdateInput{
		Username: "alice2",
		Password: "pw2",
		Email:    "a2@x.io",
		Fullname: "Alice B",
		Role:     pointer.To(2),
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, sec.RoleAdmin, updated.Role)

	role, found, err := service.RoleOf(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sec.RoleAdmin, role)
}

func TestService_UpdateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input account.UpdateInput
	}{
		{"missing_role", account.UpdateInput{Username: "a", Password: "p", Email: "e", Fullname: "f"}},
		{"invalid_role", account.UpdateInput{Username: "a", Password: "p", Email: "e", Fullname: "f", Role: pointer.To(3)}},
		{"missing_email", account.UpdateInput{Username: "a", Password: "p", Fullname: "f", Role: pointer.To(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			service := newService()

			registration, err := service.Register(ctx, alice, sec.RoleUser)
			require.NoError(t, err)

			_, err = service.Update(ctx, registration.SavedUser.ID, tt.input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)

			user, err := service.Get(ctx, registration.SavedUser.ID)
			require.NoError(t, err)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

func TestService_NotFound(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Get(ctx, "missing")
	assert.ErrorIs(t, err, account.ErrNotFound)
	assert.Equal(t, "User not found", err.Error())

	_, err = service.Update(ctx, "missing", account.UpdateInput{
		Username: "a", Password: "p", Email: "e", Fullname: "f", Role: pointer.To(1),
	})
	assert.ErrorIs(t, err, account.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "missing"), account.ErrNotFound)

	exists, err := service.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	service := newService()

	registration, err := service.Register(ctx, alice, sec.RoleUser)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, registration.SavedUser.ID))

	_, err = service.Get(ctx, registration.SavedUser.ID)
	assert.True(t, apperr.IsNotFound(err))
}

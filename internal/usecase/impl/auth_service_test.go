package impl

import (
	"context"
	"net/http"
	"testing"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	auth    usecase.AuthUsecase
	session usecase.SessionUsecase
	store   *memoryStore
	api     *fakeAPI
}

func createTestAuth(t *testing.T) authFixtures {
	t.Helper()

	store := newMemoryStore()
	api := newFakeAPI()
	session := NewSessionService(store, neverExpireTokens{}, deniedLocation{}, newDiscardLogger())
	auth := NewAuthService(api, session, newDiscardLogger())

	return authFixtures{auth: auth, session: session, store: store, api: api}
}

func TestAuthService_LoginStoresSessionUser(t *testing.T) {
	fx := createTestAuth(t)

	fx.api.respond(http.MethodPost, "/auth/login", map[string]any{
		"message": "Login successful",
		"user": map[string]any{
			"id":       "u1",
			"username": "ada",
			"email":    "ada@example.com",
			"token":    "jwt-token",
		},
	})

	user, err := fx.auth.Login(context.Background(), usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "jwt-token", user.Token)
	assert.True(t, user.IsLoggedIn)

	// The session carries the identity and it is persisted.
	assert.Equal(t, "jwt-token", fx.session.User().Token)
	assert.True(t, fx.store.has(repository.KeyUser))
}

func TestAuthService_LoginValidatesInput(t *testing.T) {
	fx := createTestAuth(t)

	_, err := fx.auth.Login(context.Background(), usecase.LoginInput{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Zero(t, fx.api.callCount(), "invalid input never reaches the network")
}

func TestAuthService_LoginFailurePropagates(t *testing.T) {
	fx := createTestAuth(t)

	apiErr := domainerrors.NewAPIError(http.StatusUnauthorized, []byte(`{"message":"Invalid credentials"}`))
	fx.api.fail(http.MethodPost, "/auth/login", apiErr)

	_, err := fx.auth.Login(context.Background(), usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var got *domainerrors.APIError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Invalid credentials", got.Message())
	assert.False(t, fx.session.User().IsLoggedIn, "session untouched on failure")
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuth(t)

	err := fx.auth.Register(context.Background(), usecase.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Phone:    "+2348000000000",
		Password: "secret123",
	})
	require.NoError(t, err)

	call := fx.api.lastCall()
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/auth/registeration", call.path)
	assert.False(t, fx.session.User().IsLoggedIn, "registering does not sign in")
}

func TestAuthService_RegisterShortPasswordRejected(t *testing.T) {
	fx := createTestAuth(t)

	err := fx.auth.Register(context.Background(), usecase.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Phone:    "+2348000000000",
		Password: "short",
	})
	require.Error(t, err)
	assert.Zero(t, fx.api.callCount())
}

func TestAuthService_ChangePasswordRequiresLogin(t *testing.T) {
	fx := createTestAuth(t)

	err := fx.auth.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		OldPassword: "old-secret",
		NewPassword: "new-secret-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotLoggedIn))
	assert.Zero(t, fx.api.callCount())
}

func TestAuthService_ChangePasswordTargetsSignedInEmail(t *testing.T) {
	fx := createTestAuth(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetUser(ctx, entity.User{
		ID:    "u1",
		Email: "ada@example.com",
	}.WithToken("jwt-token")))

	err := fx.auth.ChangePassword(ctx, usecase.ChangePasswordInput{
		OldPassword: "old-secret",
		NewPassword: "new-secret-1",
	})
	require.NoError(t, err)

	call := fx.api.lastCall()
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/auth/change_password/ada@example.com", call.path)
}

func TestAuthService_ChangeNumberTargetsSignedInEmail(t *testing.T) {
	fx := createTestAuth(t)
	ctx := context.Background()

	require.NoError(t, fx.session.SetUser(ctx, entity.User{
		ID:    "u1",
		Email: "ada@example.com",
	}.WithToken("jwt-token")))

	err := fx.auth.ChangeNumber(ctx, usecase.ChangeNumberInput{Phone: "+2348111111111"})
	require.NoError(t, err)

	call := fx.api.lastCall()
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/auth/change_number/ada@example.com", call.path)
}
